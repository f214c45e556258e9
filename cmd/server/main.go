package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xenia-tech/xenia-backend/internal/config"
	"github.com/xenia-tech/xenia-backend/internal/database"
	"github.com/xenia-tech/xenia-backend/internal/middleware"
	"github.com/xenia-tech/xenia-backend/internal/models"
	"github.com/xenia-tech/xenia-backend/internal/routes"
	"github.com/xenia-tech/xenia-backend/internal/services"
	"github.com/xenia-tech/xenia-backend/pkg/logger"
)

func main() {
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting Xenia Backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database.Connect()
	database.InitRedis()

	logger.Info().Msg("🔄 Running Database Migrations...")
	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Order{},
		&models.Registration{},
		&models.OrderCounter{},
		&models.AdminAction{},
	); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run database migrations")
	}
	if err := services.EnsureOrderCounter(database.DB); err != nil {
		logger.Fatal().Err(err).Msg("Failed to seed order counter")
	}
	logger.Info().Msg("✅ Database Migrations Complete")

	r := gin.New()

	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	// Webhooks carry their own limiter tier; everything else gets the
	// general one.
	r.Use(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 9 && c.Request.URL.Path[:9] == "/webhooks" {
			c.Next()
			return
		}
		middleware.GeneralRateLimit()(c)
	})

	api := r.Group("/api")
	{
		routes.RegisterEventRoutes(api)
		routes.RegisterOrderRoutes(api)
		routes.RegisterUserRoutes(api)
		routes.RegisterProfileRoutes(api)
		routes.RegisterAdminRoutes(api)
	}

	routes.RegisterWebhookRoutes(r)

	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		redisStatus := "ok"

		sqlDB, err := database.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "error"
		}

		if database.Redis != nil {
			if _, err := database.Redis.Ping(context.Background()).Result(); err != nil {
				redisStatus = "error"
			}
		} else {
			redisStatus = "not configured"
		}

		status := "ok"
		if dbStatus != "ok" || (redisStatus != "ok" && redisStatus != "not configured") {
			status = "degraded"
		}

		c.JSON(200, gin.H{
			"status":  status,
			"message": "Xenia Backend is running 🚀",
			"checks": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	})

	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("🛑 Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("✅ Server exited gracefully")
}
