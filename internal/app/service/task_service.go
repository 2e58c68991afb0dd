package service

import (
	"context"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

type TaskService struct {
	repos ports.Repositories
}

func NewTaskService(repos ports.Repositories) *TaskService {
	return &TaskService{repos: repos}
}

func (s *TaskService) Create(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error) {
	task, err := domain.NewTask(in)
	if err != nil {
		return domain.Task{}, err
	}

	project, err := s.repos.Projects().GetByID(ctx, task.ProjectID)
	if err != nil {
		return domain.Task{}, err
	}
	if task.DepartmentID != nil {
		if err := verifyDepartmentInOrganization(ctx, s.repos, project.OrganizationID, *task.DepartmentID); err != nil {
			return domain.Task{}, err
		}
	}
	if task.AssigneeID != nil {
		assignee, err := s.repos.Users().GetByID(ctx, *task.AssigneeID)
		if err != nil {
			return domain.Task{}, err
		}
		if assignee.OrganizationID != project.OrganizationID {
			return domain.Task{}, domain.ErrMemberNotInOrganization
		}
	}

	if err := s.repos.Tasks().Create(ctx, &task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, id string) (domain.Task, error) {
	return s.repos.Tasks().GetByID(ctx, id)
}

var _ ports.TaskService = (*TaskService)(nil)
