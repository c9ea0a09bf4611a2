package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UAShoshi/car-doctor-server/controllers"
	"github.com/UAShoshi/car-doctor-server/database"
	"github.com/UAShoshi/car-doctor-server/middleware"
	"github.com/UAShoshi/car-doctor-server/repository"
	"github.com/UAShoshi/car-doctor-server/routes"
	"github.com/UAShoshi/car-doctor-server/services"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	var logger *zap.Logger
	if cfg.Production {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	client, db, err := database.Connect(cfg.MongoURL, cfg.DBName)
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	zap.L().Info("Connected to MongoDB", zap.String("database", cfg.DBName))

	// Wire the layers together
	serviceRepo := repository.NewMongoServiceRepository(db)
	checkoutRepo := repository.NewMongoCheckoutRepository(db)
	tokenService := services.NewTokenService(cfg.TokenSecret)
	validate := validator.New()

	authController := controllers.NewAuthController(tokenService, validate, cfg.Production)
	serviceController := controllers.NewServiceController(serviceRepo)
	checkoutController := controllers.NewCheckoutController(checkoutRepo, validate)

	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Bound every handler's store calls to the request lifetime
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.RegisterRoutes(r, authController, serviceController, checkoutController,
		middleware.RequireAuth(tokenService))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Car doctor server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := database.Close(client); err != nil {
		zap.L().Error("Failed to disconnect from MongoDB", zap.Error(err))
	}

	zap.L().Info("Server stopped gracefully")
}
