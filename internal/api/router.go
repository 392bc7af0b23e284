package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/workpulse/workpulse-api/internal/api/handler"
	"github.com/workpulse/workpulse-api/internal/api/middleware"
	"github.com/workpulse/workpulse-api/internal/core/domain"
	"github.com/workpulse/workpulse-api/internal/core/ports"
)

// Deps carries everything the router wires together. Construction of the
// services happens in main so the router stays a pure wiring function.
type Deps struct {
	Tokens     ports.TokenService
	Auth       ports.AuthService
	Users      ports.UserService
	Activities ports.ActivityService
	Dispatcher handler.SnapshotDispatcher
	Mongo      *mongo.Database
	Redis      *redis.Client
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("workpulse"))

	authed := middleware.Auth(d.Tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(d.Auth)
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Activity routes (all authenticated; visibility enforced in service) ---
	activityHandler := handler.NewActivityHandler(d.Activities, d.Dispatcher)
	statsHandler := handler.NewStatsHandler(d.Activities)
	activity := e.Group("/api/activity", authed)
	activity.POST("", activityHandler.Create)
	activity.POST("/batch", activityHandler.CreateBatch)
	activity.GET("", activityHandler.List)
	activity.GET("/stats", statsHandler.Get)

	// --- User management (admin only; RBAC must follow Auth) ---
	userHandler := handler.NewUserHandler(d.Users)
	users := e.Group("/api/users", authed, adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.DELETE("/:id", userHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
