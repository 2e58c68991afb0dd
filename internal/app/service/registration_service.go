package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

type RegistrationService struct {
	uow     ports.UnitOfWork
	hasher  ports.PasswordHasher
	avatars ports.AvatarStore
}

func NewRegistrationService(uow ports.UnitOfWork, hasher ports.PasswordHasher, avatars ports.AvatarStore) *RegistrationService {
	return &RegistrationService{uow: uow, hasher: hasher, avatars: avatars}
}

// Register creates a user, and in create-organization mode the organization it
// owns, in a single transaction. The avatar is uploaded before the transaction
// starts; nothing is persisted when the upload fails.
func (s *RegistrationService) Register(ctx context.Context, in domain.RegisterInput) (domain.User, error) {
	in, err := in.Normalize()
	if err != nil {
		return domain.User{}, err
	}

	var newOrg *domain.Organization
	if m, ok := in.Membership.(domain.CreateOrganization); ok {
		org, err := domain.NewOrganization(domain.CreateOrganizationInput{
			Name:         m.Name,
			Slug:         m.Slug,
			Plan:         m.Plan,
			BillingEmail: m.BillingEmail,
		})
		if err != nil {
			return domain.User{}, err
		}
		newOrg = &org
	}

	taken, err := s.uow.Users().EmailExists(ctx, in.Email)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: check email: %v", domain.ErrInternal, err)
	}
	if taken {
		return domain.User{}, domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: hash password: %v", domain.ErrInternal, err)
	}

	user := domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		IsActive:     true,
	}

	var blob *domain.UploadedBlob
	if in.Avatar != nil {
		if s.avatars == nil {
			return domain.User{}, fmt.Errorf("%w: avatar storage is not configured", domain.ErrUploadFailed)
		}
		uploaded, err := s.avatars.Upload(ctx, *in.Avatar)
		if err != nil {
			return domain.User{}, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
		}
		blob = &uploaded
		user.AvatarURL = &uploaded.URL
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx ports.Repositories) error {
		taken, err := tx.Users().EmailExists(ctx, user.Email)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrEmailTaken
		}

		switch m := in.Membership.(type) {
		case domain.CreateOrganization:
			if err := tx.Organizations().Create(ctx, newOrg); err != nil {
				return err
			}
			user.OrganizationID = newOrg.ID
			user.Role = domain.RoleOwner
		case domain.JoinOrganization:
			if err := verifyDepartmentInOrganization(ctx, tx, m.OrganizationID, m.DepartmentID); err != nil {
				return err
			}
			departmentID := m.DepartmentID
			user.OrganizationID = m.OrganizationID
			user.DepartmentID = &departmentID
			user.Role = m.Role
		}

		return tx.Users().Create(ctx, &user)
	})
	if err != nil {
		if blob != nil {
			s.discardAvatar(blob.ID)
		}
		return domain.User{}, err
	}

	return user.Public(), nil
}

// discardAvatar removes an avatar whose user row was never committed. It uses
// a fresh context so a cancelled request still cleans up.
func (s *RegistrationService) discardAvatar(blobID string) {
	ctx, cancel := context.WithTimeout(context.Background(), blobCleanupTimeout)
	defer cancel()

	if err := s.avatars.Delete(ctx, blobID); err != nil {
		zap.L().Warn("failed to delete orphaned avatar", zap.String("blob_id", blobID), zap.Error(err))
	}
}

func verifyDepartmentInOrganization(ctx context.Context, repos ports.Repositories, organizationID, departmentID string) error {
	if _, err := repos.Organizations().GetByID(ctx, organizationID); err != nil {
		return err
	}
	department, err := repos.Departments().GetByID(ctx, departmentID)
	if err != nil {
		return err
	}
	if department.OrganizationID != organizationID {
		return domain.ErrDepartmentNotInOrganization
	}
	return nil
}

var _ ports.RegistrationService = (*RegistrationService)(nil)
