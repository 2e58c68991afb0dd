package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/handlers"
	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/middleware"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
	"github.com/Abdullah-yafai/project-managment/pkg/apierrors"
)

type Handlers struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Organizations *handlers.OrganizationHandler
	Departments   *handlers.DepartmentHandler
	Projects      *handlers.ProjectHandler
	Tasks         *handlers.TaskHandler
	Comments      *handlers.CommentHandler
	Content       *handlers.ContentHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, auth ports.AuthService) {
	r.NoRoute(middleware.LanguageMiddleware(), func(c *gin.Context) {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgRouteNotFound, middleware.GetLang(c)),
		)
	})

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)
		api.GET("/org", h.Organizations.ListOrganizations)
		api.GET("/depart/org/:orgId", h.Departments.ListByOrganization)
	}

	private := api.Group("")
	private.Use(middleware.AuthMiddleware(auth))
	{
		private.GET("/auth/profile", h.Auth.Profile)

		private.GET("/org/:id", h.Organizations.GetOrganization)
		private.POST("/depart", h.Departments.CreateDepartment)

		private.POST("/projects", h.Projects.CreateProject)
		private.GET("/projects/:id", h.Projects.GetProject)

		private.POST("/tasks", h.Tasks.CreateTask)
		private.GET("/tasks/:id", h.Tasks.GetTask)
		private.POST("/tasks/:id/comments", h.Comments.CreateComment)
		private.GET("/tasks/:id/comments", h.Comments.ListComments)

		private.GET("/comments/:id", h.Comments.GetComment)
		private.PATCH("/comments/:id", h.Comments.EditComment)
		private.DELETE("/comments/:id", h.Comments.DeleteComment)

		private.POST("/ai/ai-content", h.Content.GenerateContent)
	}
}
