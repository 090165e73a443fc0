package main

import (
	"context"
	"fmt"
	"log"
	"myMediasStore/app/echo-server/router"
	"myMediasStore/business/orders"
	"myMediasStore/business/product"
	"myMediasStore/business/recommendation"
	userService "myMediasStore/business/user"
	"myMediasStore/internal/middleware"
	"myMediasStore/internal/repository/memory"
	"myMediasStore/internal/repository/notification"
	psqlRepo "myMediasStore/internal/repository/postgres"
	redisRepo "myMediasStore/internal/repository/redis"
	"myMediasStore/internal/rest"
	"myMediasStore/pkg/config"
	"myMediasStore/pkg/database"
	redisdb "myMediasStore/pkg/database/redis"
	"myMediasStore/pkg/logger"
	"myMediasStore/pkg/metrics"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting MyMediasStore", "version", cfg.App.Version)

	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}
	defer func() {
		if err := redisdb.CloseRedisClient(redisClient); err != nil {
			logger.Error("Failed to close redis client", err)
		}
	}()

	// Init notification from mailjet
	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
			MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	catalogRepo := memory.NewCatalogRepository()
	similarityRepo := psqlRepo.NewSimilarityRepository(db)
	interactionRepo := psqlRepo.NewInteractionRepository(db)
	telemetryRepo := psqlRepo.NewTelemetryRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	userRepo := psqlRepo.NewUserRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)

	// Init service
	recommendationService := recommendation.NewRecommendationService(
		catalogRepo,
		similarityRepo,
		interactionRepo,
		telemetryRepo,
		cfg.Recommend.SimilarityTimeout,
		cfg.Recommend.LogWriteTimeout,
	)
	productService := product.NewProductService(catalogRepo, ordersRepo)
	ordersService := orders.NewOrdersService(ordersRepo, catalogRepo, mailjetEmail)
	usrService := userService.NewUserService(userRepo, tokenRepo, validate)

	// Init handler
	recommendationHandler := rest.NewRecommendationHandler(recommendationService, cfg.Recommend.DefaultLimit)
	productHandler := rest.NewProductHandler(productService)
	ordersHandler := rest.NewOrdersHandler(ordersService)
	userHandler := rest.NewUserHandler(usrService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddleware(tokenRepo)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired)
	router.SetupProductRoutes(api, productHandler, recommendationHandler)
	router.SetRecommendationRoutes(api, recommendationHandler)
	router.SetOrdersRoutes(api, ordersHandler)
	router.SetAdminRoutes(api, ordersHandler, productHandler, authRequired, adminOnly)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
