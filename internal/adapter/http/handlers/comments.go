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

type CommentHandler struct {
	comments ports.CommentService
	scope    tenantScope
}

func NewCommentHandler(comments ports.CommentService, tasks ports.TaskService, projects ports.ProjectService) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		scope:    tenantScope{projects: projects, tasks: tasks},
	}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	taskID := strings.TrimSpace(c.Param("id"))
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, domain.ErrUnauthorized, "missing identity")
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	if _, err := h.scope.task(c, taskID); err != nil {
		respondError(c, err, "failed to resolve comment task", zap.String("task_id", taskID))
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), validation.BuildCreateCommentInput(req, taskID, identity.ID))
	if err != nil {
		respondError(c, err, "failed to create comment", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCommentItem(comment))
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	taskID := strings.TrimSpace(c.Param("id"))

	if _, err := h.scope.task(c, taskID); err != nil {
		respondError(c, err, "failed to resolve comment task", zap.String("task_id", taskID))
		return
	}

	comments, err := h.comments.ListLive(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, "failed to list comments", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentItems(comments))
}

func (h *CommentHandler) GetComment(c *gin.Context) {
	commentID := strings.TrimSpace(c.Param("id"))

	comment, err := h.scope.comment(c, h.comments, commentID)
	if err != nil {
		respondError(c, err, "failed to get comment", zap.String("comment_id", commentID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentItem(comment))
}

// EditComment is reserved to the author.
func (h *CommentHandler) EditComment(c *gin.Context) {
	commentID := strings.TrimSpace(c.Param("id"))

	var req dto.EditCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	current, err := h.scope.comment(c, h.comments, commentID)
	if err != nil {
		respondError(c, err, "failed to get comment", zap.String("comment_id", commentID))
		return
	}
	if identity, _ := middleware.GetIdentity(c); identity.ID != current.AuthorID {
		respondForbidden(c)
		return
	}

	comment, err := h.comments.Edit(c.Request.Context(), commentID, req.Body)
	if err != nil {
		respondError(c, err, "failed to edit comment", zap.String("comment_id", commentID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentItem(comment))
}

// DeleteComment answers 200 with the comment even when it was already
// deleted. Authors and organization owners or admins may delete.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID := strings.TrimSpace(c.Param("id"))

	current, err := h.scope.comment(c, h.comments, commentID)
	if err != nil {
		respondError(c, err, "failed to get comment", zap.String("comment_id", commentID))
		return
	}
	if !canModerate(c, current) {
		respondForbidden(c)
		return
	}

	comment, err := h.comments.SoftDelete(c.Request.Context(), commentID)
	if err != nil {
		respondError(c, err, "failed to delete comment", zap.String("comment_id", commentID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentItem(comment))
}

func canModerate(c *gin.Context, comment domain.Comment) bool {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return false
	}
	switch identity.Role {
	case domain.RoleOwner, domain.RoleAdmin:
		return true
	}
	return identity.ID == comment.AuthorID
}
