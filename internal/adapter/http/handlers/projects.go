package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/dto"
	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/mapper"
	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/middleware"
	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/validation"
	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

type ProjectHandler struct {
	projects ports.ProjectService
}

func NewProjectHandler(projects ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// CreateProject always creates the project in the caller's organization.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, domain.ErrUnauthorized, "missing identity")
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	in, err := validation.BuildCreateProjectInput(req, identity.OrganizationID)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	project, err := h.projects.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "failed to create project", zap.String("organization_id", identity.OrganizationID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID := strings.TrimSpace(c.Param("id"))

	project, err := h.projects.Get(c.Request.Context(), projectID)
	if err == nil && !sameOrganization(c, project.OrganizationID) {
		err = domain.ErrProjectNotFound
	}
	if err != nil {
		respondError(c, err, "failed to get project", zap.String("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}
