package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/middleware"
	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

// tenantScope hides projects, tasks and comments of other organizations
// by reporting them as missing.
type tenantScope struct {
	projects ports.ProjectService
	tasks    ports.TaskService
}

func (s tenantScope) project(c *gin.Context, projectID string) error {
	project, err := s.projects.Get(c.Request.Context(), projectID)
	if err != nil {
		return err
	}
	if !sameOrganization(c, project.OrganizationID) {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (s tenantScope) task(c *gin.Context, taskID string) (domain.Task, error) {
	task, err := s.tasks.Get(c.Request.Context(), taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if err := s.project(c, task.ProjectID); err != nil {
		return domain.Task{}, asMissing(err, domain.ErrTaskNotFound)
	}
	return task, nil
}

func (s tenantScope) comment(c *gin.Context, comments ports.CommentService, commentID string) (domain.Comment, error) {
	comment, err := comments.Get(c.Request.Context(), commentID)
	if err != nil {
		return domain.Comment{}, err
	}
	if _, err := s.task(c, comment.TaskID); err != nil {
		return domain.Comment{}, asMissing(err, domain.ErrCommentNotFound)
	}
	return comment, nil
}

func sameOrganization(c *gin.Context, organizationID string) bool {
	identity, ok := middleware.GetIdentity(c)
	return ok && identity.OrganizationID == organizationID
}

func asMissing(err, missing error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return missing
	}
	return err
}
