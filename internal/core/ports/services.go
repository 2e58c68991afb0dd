package ports

import (
	"context"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
)

type RegistrationService interface {
	Register(ctx context.Context, in domain.RegisterInput) (domain.User, error)
}

type AuthService interface {
	VerifyCredentials(ctx context.Context, email, password string) (domain.User, error)
	IssueSession(user domain.User) (domain.Session, error)
	ResolveIdentity(ctx context.Context, token string) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, domain.Session, error)
}

type CommentService interface {
	Create(ctx context.Context, in domain.CreateCommentInput) (domain.Comment, error)
	SoftDelete(ctx context.Context, commentID string) (domain.Comment, error)
	Edit(ctx context.Context, commentID, body string) (domain.Comment, error)
	Get(ctx context.Context, commentID string) (domain.Comment, error)
	ListLive(ctx context.Context, taskID string) ([]domain.Comment, error)
}

type OrganizationService interface {
	Get(ctx context.Context, id string) (domain.Organization, error)
	List(ctx context.Context) ([]domain.OrganizationSummary, error)
}

type DepartmentService interface {
	Create(ctx context.Context, in domain.CreateDepartmentInput) (domain.Department, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]domain.DepartmentSummary, error)
}

type ProjectService interface {
	Create(ctx context.Context, in domain.CreateProjectInput) (domain.Project, error)
	Get(ctx context.Context, id string) (domain.Project, error)
}

type TaskService interface {
	Create(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error)
	Get(ctx context.Context, id string) (domain.Task, error)
}

type ContentService interface {
	Generate(ctx context.Context, topic string) (domain.ContentPlan, error)
}
