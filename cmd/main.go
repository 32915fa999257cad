package main

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/handler"
	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/middleware"
	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/service"
	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/storage"
	"github.com/OWNALGARNI/holbertonschool-hbnb/pkg/config"
	"github.com/OWNALGARNI/holbertonschool-hbnb/pkg/database"
	"github.com/OWNALGARNI/holbertonschool-hbnb/pkg/jwtutil"
	"github.com/OWNALGARNI/holbertonschool-hbnb/pkg/logger"
	"github.com/OWNALGARNI/holbertonschool-hbnb/prometheus"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting HBnB service...",
		zap.String("environment", cfg.Server.Env),
		zap.String("storage", cfg.Storage.Driver))

	// Pick the repository backend
	var stores *storage.Stores
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := database.Connect(cfg, log)
		if err != nil {
			log.Fatal("Failed to initialize database", zap.Error(err))
		}
		defer database.Close(db)
		stores = storage.NewGormStores(db)
		log.Info("Database connection established")
	default:
		stores = storage.NewMemoryStores()
		log.Info("Using in-memory stores")
	}

	// The facade owns all cross-entity rules; handlers only do transport
	facade := service.NewFacade(stores)

	// Initialize JWT utility
	jwtutil.Initialize(&cfg.JWT)
	log.Info("JWT utility initialized")

	authHandler := handler.NewAuthHandler(facade)
	userHandler := handler.NewUserHandler(facade)
	placeHandler := handler.NewPlaceHandler(facade)
	amenityHandler := handler.NewAmenityHandler(facade)
	reviewHandler := handler.NewReviewHandler(facade)

	// Initialize Echo framework
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware(log))
	e.Use(prometheus.MetricsMiddleware())

	// Public routes - no authentication required
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.MetricsHandler)

	// Authentication routes
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	api := e.Group("/api/v1")

	// Users - admin manages accounts, users manage their own profile
	users := api.Group("/users", middleware.AuthMiddleware)
	users.POST("", userHandler.Create, middleware.RequireAdmin)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.POST("/change-password", userHandler.ChangePassword)
	users.DELETE("/:id", userHandler.Delete, middleware.RequireAdmin)

	// Places - reads are public, mutations require a token
	places := api.Group("/places")
	places.GET("", placeHandler.List)
	places.GET("/:id", placeHandler.Get)
	places.GET("/:id/reviews", placeHandler.ListReviews)
	places.POST("", placeHandler.Create, middleware.AuthMiddleware)
	places.PUT("/:id", placeHandler.Update, middleware.AuthMiddleware)
	places.DELETE("/:id", placeHandler.Delete, middleware.AuthMiddleware)

	// Amenities - reads are public, mutations are admin-only
	amenities := api.Group("/amenities")
	amenities.GET("", amenityHandler.List)
	amenities.GET("/:id", amenityHandler.Get)
	amenities.POST("", amenityHandler.Create, middleware.AuthMiddleware, middleware.RequireAdmin)
	amenities.PUT("/:id", amenityHandler.Update, middleware.AuthMiddleware, middleware.RequireAdmin)
	amenities.DELETE("/:id", amenityHandler.Delete, middleware.AuthMiddleware, middleware.RequireAdmin)

	// Reviews - reads are public, mutations require a token
	reviews := api.Group("/reviews")
	reviews.GET("", reviewHandler.List)
	reviews.GET("/:id", reviewHandler.Get)
	reviews.POST("", reviewHandler.Create, middleware.AuthMiddleware)
	reviews.PUT("/:id", reviewHandler.Update, middleware.AuthMiddleware)
	reviews.DELETE("/:id", reviewHandler.Delete, middleware.AuthMiddleware)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
