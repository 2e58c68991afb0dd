package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	contentadapter "github.com/Abdullah-yafai/project-managment/internal/adapter/content"
	dbadapter "github.com/Abdullah-yafai/project-managment/internal/adapter/db"
	httpadapter "github.com/Abdullah-yafai/project-managment/internal/adapter/http"
	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/handlers"
	httpmiddleware "github.com/Abdullah-yafai/project-managment/internal/adapter/http/middleware"
	"github.com/Abdullah-yafai/project-managment/internal/adapter/scheduler"
	"github.com/Abdullah-yafai/project-managment/internal/adapter/security"
	"github.com/Abdullah-yafai/project-managment/internal/adapter/upload"
	appservice "github.com/Abdullah-yafai/project-managment/internal/app/service"
	"github.com/Abdullah-yafai/project-managment/internal/config"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
	"github.com/Abdullah-yafai/project-managment/pkg/translator"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.LoadConfig()

	logger := newLogger(cfg)
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if err := translator.InitTranslator(translator.Config{
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	}); err != nil {
		logger.Fatal("failed to load translations", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.RunMigrations {
		if err := dbadapter.RunMigrations(dbadapter.BuildDSN(cfg)); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	// Redis only backs the content cache, so the API runs without it.
	var redisClient *redis.Client
	var redisCmd redis.Cmdable
	var contentCache ports.ContentCache
	if cfg.RedisURL != "" {
		redisClient, err = contentadapter.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, content cache disabled", zap.Error(err))
		} else {
			redisCmd = redisClient
			contentCache = contentadapter.NewRedisCache(redisClient, 0)
			defer func() {
				if err := redisClient.Close(); err != nil {
					logger.Warn("failed to close redis connection", zap.Error(err))
				}
			}()
		}
	}

	var avatars ports.AvatarStore
	if cfg.S3Bucket != "" {
		store, err := upload.NewS3AvatarStore(ctx, cfg)
		if err != nil {
			logger.Fatal("failed to configure avatar storage", zap.Error(err))
		}
		avatars = store
	} else {
		logger.Warn("S3_BUCKET not set, registrations with an avatar will fail")
	}

	store := dbadapter.NewStore(db)
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	tokens := security.NewJWTIssuer(cfg.JWTSecret, cfg.JWTTTL)

	authService := appservice.NewAuthService(store.Users(), hasher, tokens)
	projectService := appservice.NewProjectService(store)
	taskService := appservice.NewTaskService(store)
	commentService := appservice.NewCommentService(store)
	contentService := appservice.NewContentService(
		contentadapter.NewInferenceGenerator(cfg.AIEndpoint, cfg.AIAPIKey, cfg.AITimeout),
		contentCache,
	)

	jobs := scheduler.NewScheduler(appservice.NewCounterAudit(store.Tasks()))
	if err := jobs.Start(cfg.CounterAuditSchedule); err != nil {
		logger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer jobs.Stop()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization"},
		ExposeHeaders:    []string{httpmiddleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:        handlers.NewHealthHandler(db, redisCmd),
		Auth:          handlers.NewAuthHandler(appservice.NewRegistrationService(store, hasher, avatars), authService),
		Organizations: handlers.NewOrganizationHandler(appservice.NewOrganizationService(store.Organizations())),
		Departments:   handlers.NewDepartmentHandler(appservice.NewDepartmentService(store)),
		Projects:      handlers.NewProjectHandler(projectService),
		Tasks:         handlers.NewTaskHandler(taskService, projectService),
		Comments:      handlers.NewCommentHandler(commentService, taskService, projectService),
		Content:       handlers.NewContentHandler(contentService),
	}, authService)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
}
