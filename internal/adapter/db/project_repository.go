package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

const (
	insertProjectQuery = `
INSERT INTO projects (id, name, slug, org_id, department_id, description, status, priority, visibility, start_date, end_date, created_at, updated_at)
VALUES (:id, :name, :slug, :org_id, :department_id, :description, :status, :priority, :visibility, :start_date, :end_date, :created_at, :updated_at)`

	insertProjectMemberQuery = `
INSERT INTO project_members (project_id, user_id, created_at)
VALUES (?, ?, ?)`

	getProjectQuery = `
SELECT id, name, slug, org_id, department_id, description, status, priority, visibility, start_date, end_date, created_at, updated_at
FROM projects
WHERE id = ?`

	listProjectMembersQuery = `
SELECT user_id
FROM project_members
WHERE project_id = ?
ORDER BY created_at, user_id`
)

type ProjectRepository struct {
	q sqlx.ExtContext
}

type projectRow struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Slug         string         `db:"slug"`
	OrgID        string         `db:"org_id"`
	DepartmentID sql.NullString `db:"department_id"`
	Description  sql.NullString `db:"description"`
	Status       string         `db:"status"`
	Priority     string         `db:"priority"`
	Visibility   string         `db:"visibility"`
	StartDate    sql.NullTime   `db:"start_date"`
	EndDate      sql.NullTime   `db:"end_date"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(q sqlx.ExtContext) *ProjectRepository {
	return &ProjectRepository{q: q}
}

// Create inserts the project and its member rows. Callers wanting the two to
// be atomic must run it inside a transaction.
func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if project.ID == "" {
		project.ID = newID()
	}
	now := nowFunc()
	project.CreatedAt, project.UpdatedAt = now, now

	_, err := sqlx.NamedExecContext(ctx, r.q, insertProjectQuery, projectRow{
		ID:           project.ID,
		Name:         project.Name,
		Slug:         project.Slug,
		OrgID:        project.OrganizationID,
		DepartmentID: nullString(project.DepartmentID),
		Description:  sql.NullString{String: project.Description, Valid: project.Description != ""},
		Status:       string(project.Status),
		Priority:     string(project.Priority),
		Visibility:   string(project.Visibility),
		StartDate:    nullTime(project.StartDate),
		EndDate:      nullTime(project.EndDate),
		CreatedAt:    project.CreatedAt,
		UpdatedAt:    project.UpdatedAt,
	})
	if err != nil {
		return mapWriteError(err)
	}

	for _, memberID := range project.MemberIDs {
		if _, err := r.q.ExecContext(ctx, insertProjectMemberQuery, project.ID, memberID, now); err != nil {
			return mapWriteError(err)
		}
	}
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (domain.Project, error) {
	var row projectRow
	if err := sqlx.GetContext(ctx, r.q, &row, getProjectQuery, id); err != nil {
		return domain.Project{}, mapReadError(err, domain.ErrProjectNotFound)
	}

	var members []string
	if err := sqlx.SelectContext(ctx, r.q, &members, listProjectMembersQuery, id); err != nil {
		return domain.Project{}, err
	}

	return domain.Project{
		ID:             row.ID,
		Name:           row.Name,
		Slug:           row.Slug,
		OrganizationID: row.OrgID,
		DepartmentID:   stringPtr(row.DepartmentID),
		Description:    row.Description.String,
		Status:         domain.ProjectStatus(row.Status),
		Priority:       domain.Priority(row.Priority),
		Visibility:     domain.Visibility(row.Visibility),
		MemberIDs:      members,
		StartDate:      timePtr(row.StartDate),
		EndDate:        timePtr(row.EndDate),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}
