package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

type repositories struct {
	organizations *OrganizationRepository
	departments   *DepartmentRepository
	users         *UserRepository
	projects      *ProjectRepository
	tasks         *TaskRepository
	comments      *CommentRepository
}

func newRepositories(q sqlx.ExtContext) repositories {
	return repositories{
		organizations: NewOrganizationRepository(q),
		departments:   NewDepartmentRepository(q),
		users:         NewUserRepository(q),
		projects:      NewProjectRepository(q),
		tasks:         NewTaskRepository(q),
		comments:      NewCommentRepository(q),
	}
}

func (r repositories) Organizations() ports.OrganizationRepository { return r.organizations }
func (r repositories) Departments() ports.DepartmentRepository     { return r.departments }
func (r repositories) Users() ports.UserRepository                 { return r.users }
func (r repositories) Projects() ports.ProjectRepository           { return r.projects }
func (r repositories) Tasks() ports.TaskRepository                 { return r.tasks }
func (r repositories) Comments() ports.CommentRepository           { return r.comments }

// Store is the MySQL-backed unit of work.
type Store struct {
	repositories
	db *sqlx.DB
}

var _ ports.UnitOfWork = (*Store)(nil)

func NewStore(db *sqlx.DB) *Store {
	return &Store{repositories: newRepositories(db), db: db}
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx ports.Repositories) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", domain.ErrInternal, err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		// Runs on error returns and while a panic unwinds.
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			zap.L().Warn("failed to roll back transaction", zap.Error(rbErr))
		}
	}()

	if err := fn(ctx, newRepositories(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit transaction: %v", domain.ErrInternal, err)
	}
	committed = true
	return nil
}
