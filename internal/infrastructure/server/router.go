package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/watermark-remover-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/infrastructure/middleware"
)

type Router struct {
	engine           *gin.Engine
	watermarkHandler *handler.WatermarkHandler
	cleanupHandler   *handler.CleanupHandler
	rateLimiter      *middleware.RateLimiter
	allowedOrigins   []string
	processTimeout   time.Duration
	logger           *zap.Logger
}

type RouterConfig struct {
	WatermarkHandler *handler.WatermarkHandler
	CleanupHandler   *handler.CleanupHandler
	// RateLimiter is optional.
	RateLimiter    *middleware.RateLimiter
	AllowedOrigins []string
	ProcessTimeout time.Duration
	Logger         *zap.Logger
	Environment    string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:           engine,
		watermarkHandler: cfg.WatermarkHandler,
		cleanupHandler:   cfg.CleanupHandler,
		rateLimiter:      cfg.RateLimiter,
		allowedOrigins:   cfg.AllowedOrigins,
		processTimeout:   cfg.ProcessTimeout,
		logger:           cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.allowedOrigins))
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api")
	if r.rateLimiter != nil {
		api.Use(r.rateLimiter.Limit())
	}

	watermark := api.Group("/watermark")
	{
		watermark.POST("/remove", middleware.Timeout(r.processTimeout), r.watermarkHandler.Remove)
		watermark.POST("/info", r.watermarkHandler.Info)
		watermark.GET("/download/:filename", r.watermarkHandler.Download)
		watermark.GET("/preview/:filename", r.watermarkHandler.Preview)
		watermark.GET("/test-connection", r.watermarkHandler.TestConnection)
		watermark.GET("/models", r.watermarkHandler.Models)
		watermark.POST("/cleanup", r.cleanupHandler.Cleanup)
		watermark.DELETE("/:filename", r.watermarkHandler.Delete)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
