package middleware

import (
	"net/http"
	"strings"

	"github.com/osa911/contact-api/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// CORSConfig selects which origins may call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string
	// Development accepts any origin.
	Development bool
}

// CORS middleware
func CORS(cfg CORSConfig) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	wildcard := false
	for _, o := range cfg.AllowedOrigins {
		o = strings.TrimSpace(o)
		if o == "*" {
			wildcard = true
		}
		if o != "" {
			allowed[o] = true
		}
	}
	// An empty list leaves the API open to any origin.
	if len(allowed) == 0 {
		wildcard = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		switch {
		case origin == "":
			// Not a browser cross-origin call.
		case cfg.Development || wildcard || allowed[origin]:
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Add("Vary", "Origin")
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, common.NewErrorResponse(common.MsgForbiddenOrigin))
			return
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept, Origin, X-Request-ID, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length, Content-Type, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
