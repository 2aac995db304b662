package routes

import (
	"net/http"

	"github.com/osa911/contact-api/internal/api/dto/common"
	"github.com/osa911/contact-api/internal/api/middleware"
	"github.com/osa911/contact-api/internal/logging"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, logger *logging.Logger) {
	SetupHealthRoutes(router, h.Health)

	api := router.Group("/api")
	SetupContactRoutes(api, h.Contact)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(common.MsgNotFound))
	})

	logger.Debug("All routes have been set up successfully")
}

// GlobalMiddleware holds the settings for middleware applied to every route.
type GlobalMiddleware struct {
	CORS         middleware.CORSConfig
	MaxBodyBytes int64
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger, cfg GlobalMiddleware) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.CORS))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.LimitRequestBody(cfg.MaxBodyBytes))
}
