package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/moitfe/portal-api/internal/api/handler"
	"github.com/moitfe/portal-api/internal/api/middleware"
	"github.com/moitfe/portal-api/internal/core/access"
	"github.com/moitfe/portal-api/internal/core/ports"
	"github.com/moitfe/portal-api/internal/core/service"
)

// Dependencies carries everything the router needs. Mongo and Redis are nil
// in standalone mode; the readiness probe adapts.
type Dependencies struct {
	Records  ports.RecordService
	Sessions ports.SessionService
	Users    ports.UserRepository
	Stats    *service.StatsService
	Mongo    *mongo.Database
	Redis    *redis.Client
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Route gating mirrors the navigation permission table one-to-one.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	auth := middleware.Auth(deps.Sessions)

	authHandler := handler.NewAuthHandler(deps.Sessions)
	recordHandler := handler.NewRecordHandler(deps.Records)
	statsHandler := handler.NewStatsHandler(deps.Stats)
	userHandler := handler.NewUserHandler(deps.Users)

	// --- Session lifecycle ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, auth)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Portal views ---
	v1 := e.Group("/v1", auth)
	v1.GET("/navigation", userHandler.Navigation)
	v1.GET("/stats/summary", statsHandler.Summary, middleware.Gate(access.Dashboard))
	v1.GET("/records/:category", recordHandler.List, middleware.Gate(access.DataTables))
	v1.POST("/records/forest", recordHandler.CreateForest, middleware.Gate(access.ForestEntry))
	v1.POST("/records/industry", recordHandler.CreateIndustry, middleware.Gate(access.IndustryEntry))
	v1.POST("/records/commerce", recordHandler.CreateCommerce, middleware.Gate(access.CommerceEntry))
	v1.PATCH("/records/:category/:id/status", recordHandler.UpdateStatus, middleware.Gate(access.DataTables))
	v1.GET("/users", userHandler.List, middleware.Gate(access.UserManagement))

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
