package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	now    func() time.Time
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, now: utcNow}
}

// VerifyCredentials checks the password before the active flag, so a wrong
// password never reveals whether an account is disabled.
func (s *AuthService) VerifyCredentials(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.ErrAuthFailed
		}
		return domain.User{}, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return domain.User{}, domain.ErrAuthFailed
	}
	if !user.IsActive {
		return domain.User{}, domain.ErrAccountDisabled
	}

	loginAt := s.now()
	if err := s.users.TouchLastLogin(ctx, user.ID, loginAt); err != nil {
		zap.L().Warn("failed to record last login", zap.String("user_id", user.ID), zap.Error(err))
	} else {
		user.LastLoginAt = &loginAt
	}

	return user.Public(), nil
}

func (s *AuthService) IssueSession(user domain.User) (domain.Session, error) {
	session, err := s.tokens.Issue(user, s.now())
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: issue token: %v", domain.ErrInternal, err)
	}
	return session, nil
}

func (s *AuthService) ResolveIdentity(ctx context.Context, token string) (domain.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return domain.User{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.ErrUnauthorized
		}
		return domain.User{}, err
	}
	if !user.IsActive {
		return domain.User{}, domain.ErrAccountDisabled
	}

	return user.Public(), nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, domain.Session, error) {
	user, err := s.VerifyCredentials(ctx, email, password)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}

	session, err := s.IssueSession(user)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}
	return user, session, nil
}

var _ ports.AuthService = (*AuthService)(nil)
