package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/middleware"
	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/pkg/apierrors"
	"github.com/Abdullah-yafai/project-managment/pkg/translator"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) VerifyCredentials(ctx context.Context, email, password string) (domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) IssueSession(user domain.User) (domain.Session, error) {
	args := m.Called(user)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *authServiceMock) ResolveIdentity(ctx context.Context, token string) (domain.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (domain.User, domain.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Get(1).(domain.Session), args.Error(2)
}

type registrationServiceMock struct {
	mock.Mock
}

func (m *registrationServiceMock) Register(ctx context.Context, in domain.RegisterInput) (domain.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.User), args.Error(1)
}

type commentServiceMock struct {
	mock.Mock
}

func (m *commentServiceMock) Create(ctx context.Context, in domain.CreateCommentInput) (domain.Comment, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentServiceMock) SoftDelete(ctx context.Context, commentID string) (domain.Comment, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentServiceMock) Edit(ctx context.Context, commentID, body string) (domain.Comment, error) {
	args := m.Called(ctx, commentID, body)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentServiceMock) Get(ctx context.Context, commentID string) (domain.Comment, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentServiceMock) ListLive(ctx context.Context, taskID string) ([]domain.Comment, error) {
	args := m.Called(ctx, taskID)

	var comments []domain.Comment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.Comment)
	}
	return comments, args.Error(1)
}

type organizationServiceMock struct {
	mock.Mock
}

func (m *organizationServiceMock) Get(ctx context.Context, id string) (domain.Organization, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Organization), args.Error(1)
}

func (m *organizationServiceMock) List(ctx context.Context) ([]domain.OrganizationSummary, error) {
	args := m.Called(ctx)

	var orgs []domain.OrganizationSummary
	if value := args.Get(0); value != nil {
		orgs = value.([]domain.OrganizationSummary)
	}
	return orgs, args.Error(1)
}

type departmentServiceMock struct {
	mock.Mock
}

func (m *departmentServiceMock) Create(ctx context.Context, in domain.CreateDepartmentInput) (domain.Department, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Department), args.Error(1)
}

func (m *departmentServiceMock) ListByOrganization(ctx context.Context, organizationID string) ([]domain.DepartmentSummary, error) {
	args := m.Called(ctx, organizationID)

	var departments []domain.DepartmentSummary
	if value := args.Get(0); value != nil {
		departments = value.([]domain.DepartmentSummary)
	}
	return departments, args.Error(1)
}

type projectServiceMock struct {
	mock.Mock
}

func (m *projectServiceMock) Create(ctx context.Context, in domain.CreateProjectInput) (domain.Project, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) Get(ctx context.Context, id string) (domain.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Project), args.Error(1)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) Create(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Get(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

type contentServiceMock struct {
	mock.Mock
}

func (m *contentServiceMock) Generate(ctx context.Context, topic string) (domain.ContentPlan, error) {
	args := m.Called(ctx, topic)
	return args.Get(0).(domain.ContentPlan), args.Error(1)
}

const testToken = "test-token"

// newAuthedRouter returns a router whose auth middleware resolves testToken
// to identity.
func newAuthedRouter(t *testing.T, identity domain.User) (*gin.Engine, gin.HandlerFunc) {
	t.Helper()

	auth := new(authServiceMock)
	auth.On("ResolveIdentity", mock.Anything, testToken).Return(identity, nil)

	router := gin.New()
	router.Use(middleware.LanguageMiddleware())
	return router, middleware.AuthMiddleware(auth)
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", "Bearer "+testToken)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apierrors.JsonErr {
	t.Helper()

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}
