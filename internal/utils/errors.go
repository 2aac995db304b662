package utils

import (
	"github.com/osa911/contact-api/internal/api/dto/common"
	"github.com/osa911/contact-api/internal/logging"

	"github.com/gin-gonic/gin"
)

// ContextKeyRequestID is where the request id middleware stores its value.
const ContextKeyRequestID = "RequestID"

// HandleAPIError logs err with request details and writes the client-facing
// message. err is never exposed to the caller.
func HandleAPIError(c *gin.Context, logger *logging.Logger, err error, status int, message string) {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	logger.LogHTTPError(
		c.GetString(ContextKeyRequestID),
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	c.AbortWithStatusJSON(status, common.NewErrorResponse(message))
}
