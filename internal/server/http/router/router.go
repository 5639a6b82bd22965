package router

import (
	"log/slog"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/bookcatalog/internal/config"
	"github.com/polkiloo/bookcatalog/internal/metrics"
	"github.com/polkiloo/bookcatalog/internal/server/http/handlers"
	"github.com/polkiloo/bookcatalog/internal/server/http/middleware"
)

// Params lists router dependencies.
type Params struct {
	fx.In

	Facade  handlers.CatalogFacade
	Health  handlers.HealthChecker
	Metrics *metrics.HTTPMetrics
	Config  *config.Config
	Logger  *slog.Logger
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.Metrics(p.Metrics))
	engine.Use(cors.New(corsConfig(p.Config.CORSOrigins)))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(p.Facade)
	bookHandler := handlers.NewBookHandler(p.Facade)
	healthHandler := handlers.NewHealthHandler(p.Health)

	engine.POST("/register", authHandler.Register)
	engine.POST("/login", authHandler.Login)
	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	books := engine.Group("/books")
	books.Use(middleware.AuthRequired(p.Facade))
	books.GET("", bookHandler.List)
	books.POST("", bookHandler.Create)
	books.GET("/:id", bookHandler.Get)
	books.PUT("/:id", bookHandler.Update)
	books.DELETE("/:id", bookHandler.Delete)

	return engine
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type", "Content-Encoding", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
