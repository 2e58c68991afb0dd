package ports

import (
	"context"
	"time"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
)

// Repository lookups return the entity-specific domain.Err*NotFound error when
// nothing matches. Writes that violate a unique key return a domain.ErrConflict
// and writes referencing missing rows return domain.ErrInvalidReference.

type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	GetByID(ctx context.Context, id string) (domain.Organization, error)
	ListSummaries(ctx context.Context) ([]domain.OrganizationSummary, error)
}

type DepartmentRepository interface {
	Create(ctx context.Context, department *domain.Department) error
	GetByID(ctx context.Context, id string) (domain.Department, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]domain.DepartmentSummary, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (domain.User, error)
	// GetByEmail is the only lookup that loads the password hash.
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CountInOrganization(ctx context.Context, organizationID string, userIDs []string) (int, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id string) (domain.Project, error)
}

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id string) (domain.Task, error)
	// LockForUpdate takes the task row lock for the rest of the transaction.
	// Comment mutations lock the task before touching comment rows so that
	// concurrent writers always acquire locks in the same order.
	LockForUpdate(ctx context.Context, id string) error
	// AdjustCommentsCount applies delta to the stored counter in a single
	// statement. It never lets the counter go below zero.
	AdjustCommentsCount(ctx context.Context, id string, delta int) error
	ListCommentsCountDrift(ctx context.Context) ([]domain.CounterDrift, error)
	RecountComments(ctx context.Context, id string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id string) (domain.Comment, error)
	// GetForUpdate locks the comment row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id string) (domain.Comment, error)
	// MarkDeleted reports false when the comment was already deleted.
	MarkDeleted(ctx context.Context, id string, at time.Time) (bool, error)
	UpdateBody(ctx context.Context, id string, body string, at time.Time) error
	ListLiveByTask(ctx context.Context, taskID string) ([]domain.Comment, error)
}

type Repositories interface {
	Organizations() OrganizationRepository
	Departments() DepartmentRepository
	Users() UserRepository
	Projects() ProjectRepository
	Tasks() TaskRepository
	Comments() CommentRepository
}

// UnitOfWork hands out repositories bound to the database, and runs fn with
// repositories bound to a single transaction. The transaction commits only if
// fn returns nil; any error, panic or context cancellation rolls it back.
type UnitOfWork interface {
	Repositories
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Repositories) error) error
}
