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
	insertDepartmentQuery = `
INSERT INTO departments (id, name, org_id, manager_id, created_at, updated_at)
VALUES (:id, :name, :org_id, :manager_id, :created_at, :updated_at)`

	getDepartmentQuery = `
SELECT id, name, org_id, manager_id, created_at, updated_at
FROM departments
WHERE id = ?`

	listDepartmentsByOrganizationQuery = `
SELECT id, name
FROM departments
WHERE org_id = ?
ORDER BY name`
)

type DepartmentRepository struct {
	q sqlx.ExtContext
}

type departmentRow struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	OrgID     string         `db:"org_id"`
	ManagerID sql.NullString `db:"manager_id"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

var _ ports.DepartmentRepository = (*DepartmentRepository)(nil)

func NewDepartmentRepository(q sqlx.ExtContext) *DepartmentRepository {
	return &DepartmentRepository{q: q}
}

func (r *DepartmentRepository) Create(ctx context.Context, department *domain.Department) error {
	if department.ID == "" {
		department.ID = newID()
	}
	now := nowFunc()
	department.CreatedAt, department.UpdatedAt = now, now

	_, err := sqlx.NamedExecContext(ctx, r.q, insertDepartmentQuery, departmentRow{
		ID:        department.ID,
		Name:      department.Name,
		OrgID:     department.OrganizationID,
		ManagerID: nullString(department.ManagerID),
		CreatedAt: department.CreatedAt,
		UpdatedAt: department.UpdatedAt,
	})
	return mapWriteError(err)
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id string) (domain.Department, error) {
	var row departmentRow
	if err := sqlx.GetContext(ctx, r.q, &row, getDepartmentQuery, id); err != nil {
		return domain.Department{}, mapReadError(err, domain.ErrDepartmentNotFound)
	}
	return domain.Department{
		ID:             row.ID,
		Name:           row.Name,
		OrganizationID: row.OrgID,
		ManagerID:      stringPtr(row.ManagerID),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}

func (r *DepartmentRepository) ListByOrganization(ctx context.Context, organizationID string) ([]domain.DepartmentSummary, error) {
	var rows []struct {
		ID   string `db:"id"`
		Name string `db:"name"`
	}
	if err := sqlx.SelectContext(ctx, r.q, &rows, listDepartmentsByOrganizationQuery, organizationID); err != nil {
		return nil, err
	}

	departments := make([]domain.DepartmentSummary, 0, len(rows))
	for _, row := range rows {
		departments = append(departments, domain.DepartmentSummary{ID: row.ID, Name: row.Name})
	}
	return departments, nil
}
