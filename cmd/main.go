package main

import (
	"strings"

	"github.com/dataria445/Monsta/internal/handler"
	mid "github.com/dataria445/Monsta/internal/middleware"
	"github.com/dataria445/Monsta/internal/model"
	"github.com/dataria445/Monsta/pkg/config"
	"github.com/dataria445/Monsta/pkg/database"
	"github.com/dataria445/Monsta/pkg/jwtutil"
	"github.com/dataria445/Monsta/pkg/logger"
	"github.com/dataria445/Monsta/pkg/metrics"
	"github.com/dataria445/Monsta/pkg/storage"
	"github.com/dataria445/Monsta/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration (reads .env when present)
	appConfig, err := config.Load("monsta-api")
	if err != nil {
		// Can't use the structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(&logger.LogConfig{
		Level:       appConfig.Log.Level,
		Environment: appConfig.Server.Env,
		ServiceName: appConfig.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting monsta-api",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize Prometheus metrics
	prometheus.InitMetrics()
	httpMetrics := metrics.NewHTTPMetrics(appConfig.ServiceName)
	log.Info("Prometheus metrics initialized")

	// Initialize database
	db, err := database.InitDB(&appConfig.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	if err := database.MigrateModels(
		&model.User{},
		&model.Category{},
		&model.SubCategory{},
		&model.SubSubCategory{},
		&model.Product{},
		&model.Color{},
		&model.Material{},
		&model.Coupon{},
		&model.Slider{},
		&model.Choose{},
		&model.Testimonial{},
		&model.Faq{},
		&model.Country{},
		&model.Newsletter{},
		&model.ContactEnquiry{},
		&model.DashboardAdmin{},
	); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database migrations completed")

	jwtUtil := jwtutil.NewJWTUtil(&appConfig.JWT)
	store := storage.NewLocalStorage(appConfig.Upload.PublicDir)

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = mid.NewHTTPErrorHandler(appConfig.IsDevelopment())

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(httpMetrics.Middleware())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     appConfig.Server.AllowedOrigins,
		AllowCredentials: true,
	}))
	// JSON bodies are capped; multipart uploads are bounded by the upload
	// interceptor instead
	e.Use(middleware.BodyLimitWithConfig(middleware.BodyLimitConfig{
		Skipper: func(c echo.Context) bool {
			contentType := c.Request().Header.Get(echo.HeaderContentType)
			return strings.HasPrefix(contentType, echo.MIMEMultipartForm)
		},
		Limit: appConfig.Server.BodyLimit,
	}))

	// Static assets (uploaded images live under the public dir)
	e.Static("/", appConfig.Upload.PublicDir)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(metrics.GetPrometheusHandler()))

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API routes
	handler.RegisterRoutes(e, db, store, jwtUtil, appConfig)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
