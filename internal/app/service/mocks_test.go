package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

type organizationRepositoryMock struct{ mock.Mock }

func (m *organizationRepositoryMock) Create(ctx context.Context, org *domain.Organization) error {
	args := m.Called(ctx, org)
	if args.Error(0) == nil && org.ID == "" {
		org.ID = "org-new"
	}
	return args.Error(0)
}

func (m *organizationRepositoryMock) GetByID(ctx context.Context, id string) (domain.Organization, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Organization), args.Error(1)
}

func (m *organizationRepositoryMock) ListSummaries(ctx context.Context) ([]domain.OrganizationSummary, error) {
	args := m.Called(ctx)
	var out []domain.OrganizationSummary
	if v := args.Get(0); v != nil {
		out = v.([]domain.OrganizationSummary)
	}
	return out, args.Error(1)
}

type departmentRepositoryMock struct{ mock.Mock }

func (m *departmentRepositoryMock) Create(ctx context.Context, department *domain.Department) error {
	args := m.Called(ctx, department)
	if args.Error(0) == nil && department.ID == "" {
		department.ID = "dep-new"
	}
	return args.Error(0)
}

func (m *departmentRepositoryMock) GetByID(ctx context.Context, id string) (domain.Department, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Department), args.Error(1)
}

func (m *departmentRepositoryMock) ListByOrganization(ctx context.Context, organizationID string) ([]domain.DepartmentSummary, error) {
	args := m.Called(ctx, organizationID)
	var out []domain.DepartmentSummary
	if v := args.Get(0); v != nil {
		out = v.([]domain.DepartmentSummary)
	}
	return out, args.Error(1)
}

type userRepositoryMock struct{ mock.Mock }

func (m *userRepositoryMock) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user.ID == "" {
		user.ID = "user-new"
	}
	return args.Error(0)
}

func (m *userRepositoryMock) GetByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *userRepositoryMock) CountInOrganization(ctx context.Context, organizationID string, userIDs []string) (int, error) {
	args := m.Called(ctx, organizationID, userIDs)
	return args.Int(0), args.Error(1)
}

func (m *userRepositoryMock) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type projectRepositoryMock struct{ mock.Mock }

func (m *projectRepositoryMock) Create(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	if args.Error(0) == nil && project.ID == "" {
		project.ID = "project-new"
	}
	return args.Error(0)
}

func (m *projectRepositoryMock) GetByID(ctx context.Context, id string) (domain.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Project), args.Error(1)
}

type taskRepositoryMock struct{ mock.Mock }

func (m *taskRepositoryMock) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	if args.Error(0) == nil && task.ID == "" {
		task.ID = "task-new"
	}
	return args.Error(0)
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) LockForUpdate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *taskRepositoryMock) AdjustCommentsCount(ctx context.Context, id string, delta int) error {
	return m.Called(ctx, id, delta).Error(0)
}

func (m *taskRepositoryMock) ListCommentsCountDrift(ctx context.Context) ([]domain.CounterDrift, error) {
	args := m.Called(ctx)
	var out []domain.CounterDrift
	if v := args.Get(0); v != nil {
		out = v.([]domain.CounterDrift)
	}
	return out, args.Error(1)
}

func (m *taskRepositoryMock) RecountComments(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type commentRepositoryMock struct{ mock.Mock }

func (m *commentRepositoryMock) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	if args.Error(0) == nil && comment.ID == "" {
		comment.ID = "comment-new"
	}
	return args.Error(0)
}

func (m *commentRepositoryMock) GetByID(ctx context.Context, id string) (domain.Comment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentRepositoryMock) GetForUpdate(ctx context.Context, id string) (domain.Comment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentRepositoryMock) MarkDeleted(ctx context.Context, id string, at time.Time) (bool, error) {
	args := m.Called(ctx, id, at)
	return args.Bool(0), args.Error(1)
}

func (m *commentRepositoryMock) UpdateBody(ctx context.Context, id string, body string, at time.Time) error {
	return m.Called(ctx, id, body, at).Error(0)
}

func (m *commentRepositoryMock) ListLiveByTask(ctx context.Context, taskID string) ([]domain.Comment, error) {
	args := m.Called(ctx, taskID)
	var out []domain.Comment
	if v := args.Get(0); v != nil {
		out = v.([]domain.Comment)
	}
	return out, args.Error(1)
}

type repositoriesMock struct {
	orgs        *organizationRepositoryMock
	departments *departmentRepositoryMock
	users       *userRepositoryMock
	projects    *projectRepositoryMock
	tasks       *taskRepositoryMock
	comments    *commentRepositoryMock
}

func newRepositoriesMock() *repositoriesMock {
	return &repositoriesMock{
		orgs:        new(organizationRepositoryMock),
		departments: new(departmentRepositoryMock),
		users:       new(userRepositoryMock),
		projects:    new(projectRepositoryMock),
		tasks:       new(taskRepositoryMock),
		comments:    new(commentRepositoryMock),
	}
}

func (r *repositoriesMock) Organizations() ports.OrganizationRepository { return r.orgs }
func (r *repositoriesMock) Departments() ports.DepartmentRepository     { return r.departments }
func (r *repositoriesMock) Users() ports.UserRepository                 { return r.users }
func (r *repositoriesMock) Projects() ports.ProjectRepository           { return r.projects }
func (r *repositoriesMock) Tasks() ports.TaskRepository                 { return r.tasks }
func (r *repositoriesMock) Comments() ports.CommentRepository           { return r.comments }

func (r *repositoriesMock) AssertExpectations(t mock.TestingT) {
	r.orgs.AssertExpectations(t)
	r.departments.AssertExpectations(t)
	r.users.AssertExpectations(t)
	r.projects.AssertExpectations(t)
	r.tasks.AssertExpectations(t)
	r.comments.AssertExpectations(t)
}

// fakeUnitOfWork runs fn against the same mocks it exposes outside a
// transaction and records how each transaction ended.
type fakeUnitOfWork struct {
	*repositoriesMock
	txCalls   int
	commits   int
	rollbacks int
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{repositoriesMock: newRepositoriesMock()}
}

func (u *fakeUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx ports.Repositories) error) error {
	u.txCalls++
	if err := fn(ctx, u.repositoriesMock); err != nil {
		u.rollbacks++
		return err
	}
	u.commits++
	return nil
}

type passwordHasherMock struct{ mock.Mock }

func (m *passwordHasherMock) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *passwordHasherMock) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}

type avatarStoreMock struct{ mock.Mock }

func (m *avatarStoreMock) Upload(ctx context.Context, file domain.AvatarFile) (domain.UploadedBlob, error) {
	args := m.Called(ctx, file)
	return args.Get(0).(domain.UploadedBlob), args.Error(1)
}

func (m *avatarStoreMock) Delete(ctx context.Context, blobID string) error {
	return m.Called(ctx, blobID).Error(0)
}

type tokenIssuerMock struct{ mock.Mock }

func (m *tokenIssuerMock) Issue(user domain.User, now time.Time) (domain.Session, error) {
	args := m.Called(user, now)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *tokenIssuerMock) Parse(token string) (domain.TokenClaims, error) {
	args := m.Called(token)
	return args.Get(0).(domain.TokenClaims), args.Error(1)
}

type contentGeneratorMock struct{ mock.Mock }

func (m *contentGeneratorMock) Generate(ctx context.Context, topic string) (domain.ContentPlan, error) {
	args := m.Called(ctx, topic)
	return args.Get(0).(domain.ContentPlan), args.Error(1)
}

type contentCacheMock struct{ mock.Mock }

func (m *contentCacheMock) Get(ctx context.Context, topic string) (domain.ContentPlan, bool, error) {
	args := m.Called(ctx, topic)
	return args.Get(0).(domain.ContentPlan), args.Bool(1), args.Error(2)
}

func (m *contentCacheMock) Set(ctx context.Context, topic string, plan domain.ContentPlan) error {
	return m.Called(ctx, topic, plan).Error(0)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
