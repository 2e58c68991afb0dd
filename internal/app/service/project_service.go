package service

import (
	"context"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

type ProjectService struct {
	uow ports.UnitOfWork
}

func NewProjectService(uow ports.UnitOfWork) *ProjectService {
	return &ProjectService{uow: uow}
}

// Create validates that the department and every member belong to the
// project's organization, then stores the project with its members.
func (s *ProjectService) Create(ctx context.Context, in domain.CreateProjectInput) (domain.Project, error) {
	project, err := domain.NewProject(in)
	if err != nil {
		return domain.Project{}, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx ports.Repositories) error {
		if project.DepartmentID != nil {
			if err := verifyDepartmentInOrganization(ctx, tx, project.OrganizationID, *project.DepartmentID); err != nil {
				return err
			}
		} else if _, err := tx.Organizations().GetByID(ctx, project.OrganizationID); err != nil {
			return err
		}

		if len(project.MemberIDs) > 0 {
			found, err := tx.Users().CountInOrganization(ctx, project.OrganizationID, project.MemberIDs)
			if err != nil {
				return err
			}
			if found != len(project.MemberIDs) {
				return domain.ErrMemberNotInOrganization
			}
		}

		return tx.Projects().Create(ctx, &project)
	})
	if err != nil {
		return domain.Project{}, err
	}

	return project, nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (domain.Project, error) {
	return s.uow.Projects().GetByID(ctx, id)
}

var _ ports.ProjectService = (*ProjectService)(nil)
