package validation

import (
	"errors"
	"strings"
	"time"

	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/dto"
	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/mapper"
	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
)

var ErrInvalidPayload = errors.New("invalid payload")

const (
	ModeCreateOrganization = "create-organization"
	ModeJoinOrganization   = "join-organization"
)

// BuildRegisterInput maps the flat registration form onto the membership
// variant selected by mode. An unknown mode leaves Membership nil, which the
// domain rejects.
func BuildRegisterInput(req dto.RegisterRequest, avatar *domain.AvatarFile) domain.RegisterInput {
	in := domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Avatar:   avatar,
	}

	switch req.Mode {
	case ModeCreateOrganization:
		plan := domain.Plan(strings.TrimSpace(req.Plan))
		if plan == "" {
			plan = domain.PlanFree
		}
		in.Membership = domain.CreateOrganization{
			Name:         req.OrganizationName,
			Slug:         req.OrganizationSlug,
			BillingEmail: req.BillingEmail,
			Plan:         plan,
		}
	case ModeJoinOrganization:
		role := domain.Role(strings.TrimSpace(req.Role))
		if role == "" {
			role = domain.RoleEmployee
		}
		in.Membership = domain.JoinOrganization{
			OrganizationID: req.OrganizationID,
			DepartmentID:   req.DepartmentID,
			Role:           role,
		}
	}

	return in
}

func BuildCreateProjectInput(req dto.CreateProjectRequest, organizationID string) (domain.CreateProjectInput, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return domain.CreateProjectInput{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return domain.CreateProjectInput{}, err
	}

	in := domain.CreateProjectInput{
		Name:           req.Name,
		Slug:           req.Slug,
		OrganizationID: organizationID,
		DepartmentID:   trimmedOrNil(req.DepartmentID),
		Description:    req.Description,
		MemberIDs:      req.MemberIDs,
		StartDate:      startDate,
		EndDate:        endDate,
	}
	if req.Status != nil {
		in.Status = domain.ProjectStatus(*req.Status)
	}
	if req.Priority != nil {
		in.Priority = domain.Priority(*req.Priority)
	}
	if req.Visibility != nil {
		in.Visibility = domain.Visibility(*req.Visibility)
	}
	return in, nil
}

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	in := domain.CreateTaskInput{
		Title:                req.Title,
		Description:          req.Description,
		ProjectID:            strings.TrimSpace(req.ProjectID),
		DepartmentID:         trimmedOrNil(req.DepartmentID),
		AssigneeID:           trimmedOrNil(req.AssigneeID),
		DueDate:              dueDate,
		Attachments:          mapper.ToDomainAttachments(req.Attachments),
		Tags:                 req.Tags,
		TimeEstimatedMinutes: req.TimeEstimatedMinutes,
		TimeSpentMinutes:     req.TimeSpentMinutes,
	}
	if req.Status != nil {
		in.Status = domain.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		in.Priority = domain.Priority(*req.Priority)
	}
	return in, nil
}

func BuildCreateCommentInput(req dto.CreateCommentRequest, taskID, authorID string) domain.CreateCommentInput {
	return domain.CreateCommentInput{
		TaskID:               taskID,
		AuthorID:             authorID,
		Body:                 req.Body,
		Attachments:          mapper.ToDomainAttachments(req.Attachments),
		ReplyToID:            trimmedOrNil(req.ReplyToID),
		TimeEstimatedMinutes: req.TimeEstimatedMinutes,
		TimeSpentMinutes:     req.TimeSpentMinutes,
	}
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, ErrInvalidPayload
	}
	return &parsed, nil
}

func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
