package routes

import (
	"github.com/osa911/contact-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures the public contact form endpoint
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler) {
	router.POST("/contact", contact.Submit)
}
