package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/dto"
	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/mapper"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

type ContentHandler struct {
	content ports.ContentService
}

func NewContentHandler(content ports.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

func (h *ContentHandler) GenerateContent(c *gin.Context) {
	var req dto.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	plan, err := h.content.Generate(c.Request.Context(), req.Topic)
	if err != nil {
		respondError(c, err, "failed to generate content plan")
		return
	}

	c.JSON(http.StatusOK, mapper.ToContentPlanItem(plan))
}
