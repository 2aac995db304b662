package middleware

import (
	"time"

	"github.com/osa911/contact-api/internal/logging"
	"github.com/osa911/contact-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request. The logger decides whether access
// lines are emitted (LOG_REQUESTS).
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.LogHTTPRequest(
			c.GetString(utils.ContextKeyRequestID),
			method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
