package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/minimalapi/vehicles-api/docs"
	"github.com/minimalapi/vehicles-api/internal/api/handler"
	"github.com/minimalapi/vehicles-api/internal/api/middleware"
	"github.com/minimalapi/vehicles-api/internal/core/domain"
	"github.com/minimalapi/vehicles-api/internal/core/ports"
	"github.com/minimalapi/vehicles-api/internal/core/service"
	"github.com/minimalapi/vehicles-api/internal/infrastructure/config"
	mongodb "github.com/minimalapi/vehicles-api/internal/infrastructure/db/mongo"
	"github.com/minimalapi/vehicles-api/internal/infrastructure/http/handlers"
)

// NewRouter builds the Echo instance with every route registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit ports.LoginAuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("vehicles_api"))

	// --- Dependencies ---
	administratorRepo := mongodb.NewAdministratorRepository(db)
	vehicleRepo := mongodb.NewVehicleRepository(db)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	comparer := service.NewSecretComparer(cfg.AuthScheme)
	administratorService := service.NewAdministratorService(administratorRepo, comparer, tokens, audit, log)
	vehicleService := service.NewVehicleService(vehicleRepo, log)

	administratorHandler := handler.NewAdministratorHandler(administratorService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	homeHandler := handler.NewHomeHandler()

	authed := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdministrator.Label())
	anyRole := middleware.RBAC(domain.RoleAdministrator.Label(), domain.RoleEditor.Label())

	// --- Anonymous routes ---
	e.GET("/", homeHandler.Home)
	e.POST("/administrators/login", administratorHandler.Login)

	// --- Administrators (ADMINISTRATOR only) ---
	e.POST("/administrators", administratorHandler.Create, authed, adminOnly)
	e.GET("/administrators", administratorHandler.List, authed, adminOnly)
	e.GET("/administrators/:id", administratorHandler.Get, authed, adminOnly)
	e.PATCH("/administrators/:id", administratorHandler.Patch, authed, adminOnly)
	e.DELETE("/administrators/:id", administratorHandler.Delete, authed, adminOnly)

	// --- Vehicles (reads and create shared, mutations ADMINISTRATOR only) ---
	e.GET("/vehicles", vehicleHandler.List, authed, anyRole)
	e.GET("/vehicles/:id", vehicleHandler.Get, authed, anyRole)
	e.POST("/vehicles", vehicleHandler.Create, authed, anyRole)
	e.PATCH("/vehicles/:id", vehicleHandler.Patch, authed, adminOnly)
	e.DELETE("/vehicles/:id", vehicleHandler.Delete, authed, adminOnly)

	// --- Operational endpoints ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
