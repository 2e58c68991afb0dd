package domain

import (
	"strings"
	"time"
)

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusArchived  ProjectStatus = "archived"
	ProjectStatusCompleted ProjectStatus = "completed"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusArchived, ProjectStatusCompleted:
		return true
	}
	return false
}

type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityOrg     Visibility = "org"
	VisibilityPublic  Visibility = "public"
)

func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPrivate, VisibilityOrg, VisibilityPublic:
		return true
	}
	return false
}

type Project struct {
	ID             string
	Name           string
	Slug           string
	OrganizationID string
	DepartmentID   *string
	Description    string
	Status         ProjectStatus
	Priority       Priority
	Visibility     Visibility
	MemberIDs      []string
	StartDate      *time.Time
	EndDate        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CreateProjectInput struct {
	Name           string
	Slug           string
	OrganizationID string
	DepartmentID   *string
	Description    string
	Status         ProjectStatus
	Priority       Priority
	Visibility     Visibility
	MemberIDs      []string
	StartDate      *time.Time
	EndDate        *time.Time
}

func NewProject(in CreateProjectInput) (Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Project{}, invalid("project name", "required")
	}
	if strings.TrimSpace(in.OrganizationID) == "" {
		return Project{}, invalid("organization", "required")
	}

	slug, err := ResolveSlug(strings.TrimSpace(in.Slug), name)
	if err != nil {
		return Project{}, err
	}

	p := Project{
		Name:           name,
		Slug:           slug,
		OrganizationID: in.OrganizationID,
		DepartmentID:   in.DepartmentID,
		Description:    strings.TrimSpace(in.Description),
		Status:         in.Status,
		Priority:       in.Priority,
		Visibility:     in.Visibility,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
	}
	if p.Status == "" {
		p.Status = ProjectStatusActive
	}
	if p.Priority == "" {
		p.Priority = PriorityMedium
	}
	if p.Visibility == "" {
		p.Visibility = VisibilityOrg
	}
	if !p.Status.Valid() {
		return Project{}, invalid("status", "must be one of active, archived, completed")
	}
	if !p.Priority.Valid() {
		return Project{}, invalid("priority", "must be one of low, medium, high")
	}
	if !p.Visibility.Valid() {
		return Project{}, invalid("visibility", "must be one of private, org, public")
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return Project{}, invalid("end date", "before start date")
	}

	seen := make(map[string]struct{}, len(in.MemberIDs))
	for _, id := range in.MemberIDs {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		p.MemberIDs = append(p.MemberIDs, id)
	}

	return p, nil
}
