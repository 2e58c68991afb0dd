package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/mapper"
	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/middleware"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

type OrganizationHandler struct {
	organizations ports.OrganizationService
}

func NewOrganizationHandler(organizations ports.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{organizations: organizations}
}

// ListOrganizations is public so the registration form can offer
// organizations to join.
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	orgs, err := h.organizations.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list organizations")
		return
	}

	c.JSON(http.StatusOK, mapper.ToOrganizationSummaryItems(orgs))
}

func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	orgID := strings.TrimSpace(c.Param("id"))
	identity, ok := middleware.GetIdentity(c)
	if !ok || identity.OrganizationID != orgID {
		respondForbidden(c)
		return
	}

	org, err := h.organizations.Get(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err, "failed to get organization", zap.String("organization_id", orgID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToOrganizationItem(org))
}
