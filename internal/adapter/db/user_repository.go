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
	userColumns = `id, name, email, org_id, department_id, role, avatar_url, is_active, last_login_at, created_at, updated_at`

	insertUserQuery = `
INSERT INTO users (id, name, email, password_hash, org_id, department_id, role, avatar_url, is_active, last_login_at, created_at, updated_at)
VALUES (:id, :name, :email, :password_hash, :org_id, :department_id, :role, :avatar_url, :is_active, :last_login_at, :created_at, :updated_at)`

	getUserQuery = `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	getUserWithPasswordByEmailQuery = `SELECT ` + userColumns + `, password_hash FROM users WHERE email = ?`

	userEmailExistsQuery = `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`

	countUsersInOrganizationQuery = `SELECT COUNT(*) FROM users WHERE org_id = ? AND id IN (?)`

	touchLastLoginQuery = `UPDATE users SET last_login_at = ?, updated_at = ? WHERE id = ?`
)

type UserRepository struct {
	q sqlx.ExtContext
}

type userRow struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	OrgID        string         `db:"org_id"`
	DepartmentID sql.NullString `db:"department_id"`
	Role         string         `db:"role"`
	AvatarURL    sql.NullString `db:"avatar_url"`
	IsActive     bool           `db:"is_active"`
	LastLoginAt  sql.NullTime   `db:"last_login_at"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(q sqlx.ExtContext) *UserRepository {
	return &UserRepository{q: q}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = newID()
	}
	now := nowFunc()
	user.CreatedAt, user.UpdatedAt = now, now

	_, err := sqlx.NamedExecContext(ctx, r.q, insertUserQuery, userRow{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		OrgID:        user.OrganizationID,
		DepartmentID: nullString(user.DepartmentID),
		Role:         string(user.Role),
		AvatarURL:    nullString(user.AvatarURL),
		IsActive:     user.IsActive,
		LastLoginAt:  nullTime(user.LastLoginAt),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	})
	return mapWriteError(err)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	var row userRow
	if err := sqlx.GetContext(ctx, r.q, &row, getUserQuery, id); err != nil {
		return domain.User{}, mapReadError(err, domain.ErrUserNotFound)
	}
	return mapUserRow(row), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var row userRow
	if err := sqlx.GetContext(ctx, r.q, &row, getUserWithPasswordByEmailQuery, email); err != nil {
		return domain.User{}, mapReadError(err, domain.ErrUserNotFound)
	}
	return mapUserRow(row), nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := sqlx.GetContext(ctx, r.q, &exists, userEmailExistsQuery, email); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) CountInOrganization(ctx context.Context, organizationID string, userIDs []string) (int, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In(countUsersInOrganizationQuery, organizationID, userIDs)
	if err != nil {
		return 0, err
	}

	var count int
	if err := sqlx.GetContext(ctx, r.q, &count, r.q.Rebind(query), args...); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.q.ExecContext(ctx, touchLastLoginQuery, at.UTC(), nowFunc(), id)
	return err
}

func mapUserRow(row userRow) domain.User {
	return domain.User{
		ID:             row.ID,
		Name:           row.Name,
		Email:          row.Email,
		PasswordHash:   row.PasswordHash,
		OrganizationID: row.OrgID,
		DepartmentID:   stringPtr(row.DepartmentID),
		Role:           domain.Role(row.Role),
		AvatarURL:      stringPtr(row.AvatarURL),
		IsActive:       row.IsActive,
		LastLoginAt:    timePtr(row.LastLoginAt),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
