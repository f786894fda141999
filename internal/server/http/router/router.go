package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polkiloo/kicktracker/internal/server/http/handlers"
	"github.com/polkiloo/kicktracker/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.TrackerFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.DecompressRequest())
	engine.Use(middleware.Compression())

	authHandler := handlers.NewAuthHandler(facade)
	kickHandler := handlers.NewKickHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")
	requireAuth := middleware.AuthRequired(facade)

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", requireAuth, authHandler.Me)
	auth.DELETE("/me", requireAuth, authHandler.DeleteAccount)

	kicks := api.Group("/kicks")
	kicks.Use(requireAuth)
	kicks.GET("", kickHandler.List)
	kicks.POST("", kickHandler.Record)
	kicks.GET("/stats", kickHandler.Stats)
	kicks.GET("/summary", kickHandler.Summary)
	kicks.DELETE("/:id", kickHandler.Remove)

	return engine
}
