package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/pkg/translator"
)

type stubAuth struct {
	user domain.User
	err  error
}

func (s stubAuth) VerifyCredentials(context.Context, string, string) (domain.User, error) {
	return domain.User{}, errors.New("not used")
}

func (s stubAuth) IssueSession(domain.User) (domain.Session, error) {
	return domain.Session{}, errors.New("not used")
}

func (s stubAuth) ResolveIdentity(context.Context, string) (domain.User, error) {
	return s.user, s.err
}

func (s stubAuth) Login(context.Context, string, string) (domain.User, domain.Session, error) {
	return domain.User{}, domain.Session{}, errors.New("not used")
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := translator.InitTranslator(translator.Config{
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newAuthRouter(auth stubAuth) *gin.Engine {
	r := gin.New()
	r.GET("/me", LanguageMiddleware(), AuthMiddleware(auth), func(c *gin.Context) {
		user, ok := GetIdentity(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.String(http.StatusOK, user.ID)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		auth       stubAuth
		wantStatus int
		wantBody   string
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "valid", header: "Bearer tok", auth: stubAuth{user: domain.User{ID: "u1"}}, wantStatus: http.StatusOK, wantBody: "u1"},
		{name: "invalid token", header: "Bearer tok", auth: stubAuth{err: domain.ErrUnauthorized}, wantStatus: http.StatusUnauthorized},
		{name: "disabled", header: "Bearer tok", auth: stubAuth{err: domain.ErrAccountDisabled}, wantStatus: http.StatusForbidden},
		{name: "store down", header: "Bearer tok", auth: stubAuth{err: errors.New("db down")}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			newAuthRouter(tt.auth).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestLanguageMiddleware(t *testing.T) {
	tests := map[string]string{
		"":                      "en",
		"fr-FR,fr;q=0.9":        "fr",
		"de-DE":                 "en",
		"en-US,fr;q=0.5":        "en",
		"not a language header": "en",
	}

	for header, want := range tests {
		r := gin.New()
		r.GET("/", LanguageMiddleware(), func(c *gin.Context) { c.String(http.StatusOK, GetLang(c)) })

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Accept-Language", header)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, want, rec.Body.String(), "header %q", header)
	}
}

func TestGinZapMiddleware_LogsWithRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(GinZapMiddleware(zap.New(core)))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "http request", entry.Message)
	assert.Equal(t, "abc-123", entry.ContextMap()["request_id"])
	assert.Equal(t, int64(http.StatusNoContent), entry.ContextMap()["status"])
}
