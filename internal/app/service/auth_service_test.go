package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
)

var authNow = time.Date(2026, 10, 2, 8, 30, 0, 0, time.UTC)

type authFixture struct {
	users   *userRepositoryMock
	hasher  *passwordHasherMock
	tokens  *tokenIssuerMock
	service *AuthService
}

func newAuthFixture() authFixture {
	f := authFixture{
		users:  new(userRepositoryMock),
		hasher: new(passwordHasherMock),
		tokens: new(tokenIssuerMock),
	}
	f.service = NewAuthService(f.users, f.hasher, f.tokens)
	f.service.now = fixedClock(authNow)
	return f
}

func TestVerifyCredentials_Success_TouchesLastLogin(t *testing.T) {
	f := newAuthFixture()
	stored := domain.User{ID: "u1", Email: "a@b.co", PasswordHash: "hash", IsActive: true}

	f.users.On("GetByEmail", mock.Anything, "a@b.co").Return(stored, nil).Once()
	f.hasher.On("Compare", "hash", "pw").Return(nil).Once()
	f.users.On("TouchLastLogin", mock.Anything, "u1", authNow).Return(nil).Once()

	user, err := f.service.VerifyCredentials(context.Background(), "  A@B.co ", "pw")

	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
	require.NotNil(t, user.LastLoginAt)
	assert.Equal(t, authNow, *user.LastLoginAt)
	f.users.AssertExpectations(t)
}

func TestVerifyCredentials_UnknownEmail(t *testing.T) {
	f := newAuthFixture()
	f.users.On("GetByEmail", mock.Anything, "x@y.z").Return(domain.User{}, domain.ErrUserNotFound).Once()

	_, err := f.service.VerifyCredentials(context.Background(), "x@y.z", "pw")

	require.ErrorIs(t, err, domain.ErrAuthFailed)
}

func TestVerifyCredentials_WrongPassword(t *testing.T) {
	f := newAuthFixture()
	f.users.On("GetByEmail", mock.Anything, "a@b.co").Return(domain.User{ID: "u1", PasswordHash: "hash", IsActive: false}, nil).Once()
	f.hasher.On("Compare", "hash", "bad").Return(errors.New("mismatch")).Once()

	_, err := f.service.VerifyCredentials(context.Background(), "a@b.co", "bad")

	require.ErrorIs(t, err, domain.ErrAuthFailed)
	require.NotErrorIs(t, err, domain.ErrAccountDisabled)
	f.users.AssertNotCalled(t, "TouchLastLogin", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyCredentials_DisabledAccount(t *testing.T) {
	f := newAuthFixture()
	f.users.On("GetByEmail", mock.Anything, "a@b.co").Return(domain.User{ID: "u1", PasswordHash: "hash", IsActive: false}, nil).Once()
	f.hasher.On("Compare", "hash", "pw").Return(nil).Once()

	_, err := f.service.VerifyCredentials(context.Background(), "a@b.co", "pw")

	require.ErrorIs(t, err, domain.ErrAccountDisabled)
	f.users.AssertNotCalled(t, "TouchLastLogin", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyCredentials_LastLoginFailureDoesNotFailLogin(t *testing.T) {
	f := newAuthFixture()
	f.users.On("GetByEmail", mock.Anything, "a@b.co").Return(domain.User{ID: "u1", PasswordHash: "hash", IsActive: true}, nil).Once()
	f.hasher.On("Compare", "hash", "pw").Return(nil).Once()
	f.users.On("TouchLastLogin", mock.Anything, "u1", authNow).Return(errors.New("lock wait timeout")).Once()

	user, err := f.service.VerifyCredentials(context.Background(), "a@b.co", "pw")

	require.NoError(t, err)
	assert.Nil(t, user.LastLoginAt)
}

func TestLogin_IssuesSession(t *testing.T) {
	f := newAuthFixture()
	stored := domain.User{ID: "u1", Email: "a@b.co", PasswordHash: "hash", IsActive: true}
	session := domain.Session{AccessToken: "jwt", ExpiresAt: authNow.Add(domain.SessionTTL)}

	f.users.On("GetByEmail", mock.Anything, "a@b.co").Return(stored, nil).Once()
	f.hasher.On("Compare", "hash", "pw").Return(nil).Once()
	f.users.On("TouchLastLogin", mock.Anything, "u1", authNow).Return(nil).Once()
	f.tokens.On("Issue", mock.MatchedBy(func(u domain.User) bool { return u.ID == "u1" }), authNow).Return(session, nil).Once()

	user, got, err := f.service.Login(context.Background(), "a@b.co", "pw")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, session, got)
	f.tokens.AssertExpectations(t)
}

func TestResolveIdentity(t *testing.T) {
	tests := []struct {
		name      string
		parseErr  error
		user      domain.User
		lookupErr error
		wantErr   error
	}{
		{name: "valid", user: domain.User{ID: "u1", IsActive: true, PasswordHash: "hash"}},
		{name: "bad token", parseErr: errors.New("signature is invalid"), wantErr: domain.ErrUnauthorized},
		{name: "user gone", lookupErr: domain.ErrUserNotFound, wantErr: domain.ErrUnauthorized},
		{name: "disabled", user: domain.User{ID: "u1", IsActive: false}, wantErr: domain.ErrAccountDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			f.tokens.On("Parse", "token").Return(domain.TokenClaims{UserID: "u1"}, tt.parseErr).Once()
			if tt.parseErr == nil {
				f.users.On("GetByID", mock.Anything, "u1").Return(tt.user, tt.lookupErr).Once()
			}

			user, err := f.service.ResolveIdentity(context.Background(), "token")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", user.ID)
			assert.Empty(t, user.PasswordHash)
		})
	}
}
