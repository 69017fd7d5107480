package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/noah-isme/campus-concierge-api/internal/handler"
	"github.com/noah-isme/campus-concierge-api/internal/middleware"
	"github.com/noah-isme/campus-concierge-api/internal/models"
	"github.com/noah-isme/campus-concierge-api/pkg/config"
	"github.com/noah-isme/campus-concierge-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/campus-concierge-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/campus-concierge-api/pkg/middleware/requestid"
)

// Router builds the gin engine with every public and admin route.
func (a *App) Router(version string) *gin.Engine {
	cfg := a.Config
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(a.Logger, "/health", "/ready", "/metrics"))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(a.Metrics, "/metrics"))

	systemHandler := handler.NewSystemHandler(version, cfg.APIPrefix, a.Ping)
	metricsHandler := handler.NewMetricsHandler(a.Metrics)
	chatHandler := handler.NewChatHandler(a.Chat)
	queryHandler := handler.NewQueryHandler(a.Query)
	authHandler := handler.NewAuthHandler(a.Auth)
	eventHandler := handler.NewEventHandler(a.Events, a.Export)
	examHandler := handler.NewExamHandler(a.Exams, a.Export)
	placementHandler := handler.NewPlacementHandler(a.Placements, a.Export)

	r.GET("/", systemHandler.Root)
	r.GET("/health", systemHandler.Health)
	r.GET("/ready", systemHandler.Ready)
	if a.Metrics != nil {
		r.GET("/metrics", metricsHandler.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/chat", chatHandler.Chat)
	api.GET("/chat/health", chatHandler.Health)
	api.GET("/chat/tools", chatHandler.Tools)

	api.GET("/events", queryHandler.Events)
	api.GET("/events/today", queryHandler.TodayEvents)
	api.GET("/exams", queryHandler.Exams)
	api.GET("/placements", queryHandler.Placements)

	api.POST("/auth/login", authHandler.Login)

	admin := api.Group("/admin")
	admin.Use(middleware.JWT(a.Auth), middleware.RequireRoles(models.RoleAdmin), middleware.Audit(a.Logger.Named("audit")))
	{
		admin.GET("/events", eventHandler.List)
		admin.POST("/events", eventHandler.Create)
		admin.GET("/events/export", eventHandler.Export)
		admin.DELETE("/events/:id", eventHandler.Delete)

		admin.GET("/exams", examHandler.List)
		admin.POST("/exams", examHandler.Create)
		admin.GET("/exams/export", examHandler.Export)
		admin.DELETE("/exams/:id", examHandler.Delete)

		admin.GET("/placements", placementHandler.List)
		admin.POST("/placements", placementHandler.Create)
		admin.GET("/placements/export", placementHandler.Export)
		admin.DELETE("/placements/:id", placementHandler.Delete)

		admin.GET("/metrics", metricsHandler.Snapshot)
	}

	return r
}
