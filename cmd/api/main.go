package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/batuhanmkrk/minicommerce/config"
	"github.com/batuhanmkrk/minicommerce/internal/delivery"
	"github.com/batuhanmkrk/minicommerce/internal/repository"
	"github.com/batuhanmkrk/minicommerce/internal/usecase"
	"github.com/batuhanmkrk/minicommerce/pkg/db"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: %s", cfg.LogLevel, logLevel.String())
	}
	logger.SetLevel(logLevel)
	logger.Info("Starting minicommerce API...")

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("FATAL: Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connection established.")

	// --- Dependency Injection ---
	userRepo := repository.NewPostgresUserRepository(database, logger)
	categoryRepo := repository.NewPostgresCategoryRepository(database, logger)
	productRepo := repository.NewPostgresProductRepository(database, logger)
	orderRepo := repository.NewPostgresOrderRepository(database, logger)
	reviewRepo := repository.NewPostgresReviewRepository(database, logger)
	logger.Info("Repositories initialized.")

	userUC := usecase.NewUserUseCase(userRepo, logger)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo, logger)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, logger)
	orderUC := usecase.NewOrderUseCase(orderRepo, userRepo, logger)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, userRepo, productRepo, logger)
	logger.Info("Use cases initialized.")

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery(), delivery.RequestLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		if err := database.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "up"})
	})

	api := router.Group("/api")
	delivery.NewUserHandler(userUC, logger).RegisterRoutes(api)
	delivery.NewCategoryHandler(categoryUC, logger).RegisterRoutes(api)
	delivery.NewProductHandler(productUC, logger).RegisterRoutes(api)
	delivery.NewOrderHandler(orderUC, logger).RegisterRoutes(api)
	delivery.NewReviewHandler(reviewUC, logger).RegisterRoutes(api)
	logger.Info("Routes registered.")

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Errorf("Failed to start server on port %s: %v", cfg.Port, err)
		os.Exit(1)
	}
}
