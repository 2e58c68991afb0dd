package service

import (
	"context"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

type OrganizationService struct {
	organizations ports.OrganizationRepository
}

func NewOrganizationService(organizations ports.OrganizationRepository) *OrganizationService {
	return &OrganizationService{organizations: organizations}
}

func (s *OrganizationService) Get(ctx context.Context, id string) (domain.Organization, error) {
	return s.organizations.GetByID(ctx, id)
}

func (s *OrganizationService) List(ctx context.Context) ([]domain.OrganizationSummary, error) {
	return s.organizations.ListSummaries(ctx)
}

var _ ports.OrganizationService = (*OrganizationService)(nil)

type DepartmentService struct {
	repos ports.Repositories
}

func NewDepartmentService(repos ports.Repositories) *DepartmentService {
	return &DepartmentService{repos: repos}
}

func (s *DepartmentService) Create(ctx context.Context, in domain.CreateDepartmentInput) (domain.Department, error) {
	department, err := domain.NewDepartment(in)
	if err != nil {
		return domain.Department{}, err
	}
	if _, err := s.repos.Organizations().GetByID(ctx, department.OrganizationID); err != nil {
		return domain.Department{}, err
	}
	if department.ManagerID != nil {
		manager, err := s.repos.Users().GetByID(ctx, *department.ManagerID)
		if err != nil {
			return domain.Department{}, err
		}
		if manager.OrganizationID != department.OrganizationID {
			return domain.Department{}, domain.ErrMemberNotInOrganization
		}
	}

	if err := s.repos.Departments().Create(ctx, &department); err != nil {
		return domain.Department{}, err
	}
	return department, nil
}

func (s *DepartmentService) ListByOrganization(ctx context.Context, organizationID string) ([]domain.DepartmentSummary, error) {
	if _, err := s.repos.Organizations().GetByID(ctx, organizationID); err != nil {
		return nil, err
	}
	return s.repos.Departments().ListByOrganization(ctx, organizationID)
}

var _ ports.DepartmentService = (*DepartmentService)(nil)
