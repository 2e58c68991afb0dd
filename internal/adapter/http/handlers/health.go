package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/middleware"
)

const (
	StatusOk       = "ok"
	StatusDown     = "down"
	StatusDisabled = "disabled"
	healthTimeout  = 2 * time.Second
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Mysql string `json:"mysql"`
	Redis string `json:"redis"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

// HealthHandler reports on MySQL and, when configured, the Redis cache.
// Redis is optional, so only MySQL decides the basic health status.
type HealthHandler struct {
	db    *sqlx.DB
	redis redis.Cmdable
}

func NewHealthHandler(db *sqlx.DB, redisClient redis.Cmdable) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	if h.databaseStatus(c.Request.Context()) != StatusOk {
		statusCode = http.StatusServiceUnavailable
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().UTC().Format(time.RFC3339),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	ctx := c.Request.Context()

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().UTC().Format(time.RFC3339),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			Mysql: h.databaseStatus(ctx),
			Redis: h.redisStatus(ctx),
		},
	})
}

func (h *HealthHandler) databaseStatus(ctx context.Context) string {
	if h.db == nil {
		return StatusDown
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	if err := h.db.PingContext(timeoutCtx); err != nil {
		return StatusDown
	}
	return StatusOk
}

func (h *HealthHandler) redisStatus(ctx context.Context) string {
	if h.redis == nil {
		return StatusDisabled
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	if err := h.redis.Ping(timeoutCtx).Err(); err != nil {
		return StatusDown
	}
	return StatusOk
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
