package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/dto"
	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/mapper"
	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/middleware"
	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

type DepartmentHandler struct {
	departments ports.DepartmentService
}

func NewDepartmentHandler(departments ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departments: departments}
}

func (h *DepartmentHandler) ListByOrganization(c *gin.Context) {
	orgID := strings.TrimSpace(c.Param("orgId"))

	departments, err := h.departments.ListByOrganization(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err, "failed to list departments", zap.String("organization_id", orgID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToDepartmentSummaryItems(departments))
}

func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	orgID := strings.TrimSpace(req.OrganizationID)
	identity, ok := middleware.GetIdentity(c)
	if !ok || identity.OrganizationID != orgID {
		respondForbidden(c)
		return
	}

	var managerID *string
	if req.ManagerID != nil {
		if id := strings.TrimSpace(*req.ManagerID); id != "" {
			managerID = &id
		}
	}

	department, err := h.departments.Create(c.Request.Context(), domain.CreateDepartmentInput{
		Name:           req.Name,
		OrganizationID: orgID,
		ManagerID:      managerID,
	})
	if err != nil {
		respondError(c, err, "failed to create department", zap.String("organization_id", orgID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToDepartmentItem(department))
}
