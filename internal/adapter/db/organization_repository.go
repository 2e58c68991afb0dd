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
	insertOrganizationQuery = `
INSERT INTO organizations (id, name, slug, plan, billing_email, timezone, language, created_at, updated_at)
VALUES (:id, :name, :slug, :plan, :billing_email, :timezone, :language, :created_at, :updated_at)`

	getOrganizationQuery = `
SELECT id, name, slug, plan, billing_email, timezone, language, created_at, updated_at
FROM organizations
WHERE id = ?`

	listOrganizationSummariesQuery = `
SELECT id, name, slug, plan
FROM organizations
ORDER BY name, id`
)

type OrganizationRepository struct {
	q sqlx.ExtContext
}

type organizationRow struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Slug         string         `db:"slug"`
	Plan         string         `db:"plan"`
	BillingEmail sql.NullString `db:"billing_email"`
	Timezone     string         `db:"timezone"`
	Language     string         `db:"language"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type organizationSummaryRow struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	Slug string `db:"slug"`
	Plan string `db:"plan"`
}

var _ ports.OrganizationRepository = (*OrganizationRepository)(nil)

func NewOrganizationRepository(q sqlx.ExtContext) *OrganizationRepository {
	return &OrganizationRepository{q: q}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	if org.ID == "" {
		org.ID = newID()
	}
	now := nowFunc()
	org.CreatedAt, org.UpdatedAt = now, now

	row := organizationRow{
		ID:           org.ID,
		Name:         org.Name,
		Slug:         org.Slug,
		Plan:         string(org.Plan),
		BillingEmail: nullString(org.BillingEmail),
		Timezone:     org.Settings.Timezone,
		Language:     org.Settings.Language,
		CreatedAt:    org.CreatedAt,
		UpdatedAt:    org.UpdatedAt,
	}
	_, err := sqlx.NamedExecContext(ctx, r.q, insertOrganizationQuery, row)
	return mapWriteError(err)
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id string) (domain.Organization, error) {
	var row organizationRow
	if err := sqlx.GetContext(ctx, r.q, &row, getOrganizationQuery, id); err != nil {
		return domain.Organization{}, mapReadError(err, domain.ErrOrganizationNotFound)
	}
	return mapOrganizationRow(row), nil
}

func (r *OrganizationRepository) ListSummaries(ctx context.Context) ([]domain.OrganizationSummary, error) {
	var rows []organizationSummaryRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, listOrganizationSummariesQuery); err != nil {
		return nil, err
	}

	summaries := make([]domain.OrganizationSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, domain.OrganizationSummary{
			ID:   row.ID,
			Name: row.Name,
			Slug: row.Slug,
			Plan: domain.Plan(row.Plan),
		})
	}
	return summaries, nil
}

func mapOrganizationRow(row organizationRow) domain.Organization {
	return domain.Organization{
		ID:           row.ID,
		Name:         row.Name,
		Slug:         row.Slug,
		Plan:         domain.Plan(row.Plan),
		BillingEmail: stringPtr(row.BillingEmail),
		Settings: domain.OrganizationSettings{
			Timezone: row.Timezone,
			Language: row.Language,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
