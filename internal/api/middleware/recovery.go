package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/osa911/contact-api/internal/api/dto/common"
	"github.com/osa911/contact-api/internal/logging"
	"github.com/osa911/contact-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// Recovery turns any panic in the chain into the generic 500 body.
func Recovery(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("[PANIC] %s %s | %s | %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					c.GetString(utils.ContextKeyRequestID),
					rec,
					debug.Stack(),
				)

				if c.Writer.Written() {
					c.Abort()
					return
				}
				utils.HandleAPIError(c, logger, fmt.Errorf("panic: %v", rec), http.StatusInternalServerError, common.MsgServerError)
			}
		}()

		c.Next()
	}
}
