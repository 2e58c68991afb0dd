package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/dto"
	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/mapper"
	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/validation"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

type TaskHandler struct {
	tasks ports.TaskService
	scope tenantScope
}

func NewTaskHandler(tasks ports.TaskService, projects ports.ProjectService) *TaskHandler {
	return &TaskHandler{
		tasks: tasks,
		scope: tenantScope{projects: projects, tasks: tasks},
	}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	in, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	if err := h.scope.project(c, in.ProjectID); err != nil {
		respondError(c, err, "failed to resolve task project", zap.String("project_id", in.ProjectID))
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "failed to create task", zap.String("project_id", in.ProjectID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID := strings.TrimSpace(c.Param("id"))

	task, err := h.scope.task(c, taskID)
	if err != nil {
		respondError(c, err, "failed to get task", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}
