package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DefaultMaxBodySize is used when LimitRequestBody gets a non-positive size.
const DefaultMaxBodySize int64 = 64 * 1024

// LimitRequestBody caps how much of the body handlers may read. Reading past
// the cap fails, which handlers report as an unreadable body.
func LimitRequestBody(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodySize
	}
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
