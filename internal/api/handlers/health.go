package handlers

import (
	"github.com/osa911/contact-api/internal/utils"
	"github.com/osa911/contact-api/internal/version"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	emailConfigured bool
}

func NewHealthHandler(emailConfigured bool) *HealthHandler {
	return &HealthHandler{emailConfigured: emailConfigured}
}

// HealthStatus is the payload of GET /health.
type HealthStatus struct {
	Status          string `json:"status"`
	Version         string `json:"version"`
	EmailConfigured bool   `json:"email_configured"`
}

func (h *HealthHandler) Check(c *gin.Context) {
	utils.HandleSuccess(c, HealthStatus{
		Status:          "ok",
		Version:         version.Version,
		EmailConfigured: h.emailConfigured,
	})
}
