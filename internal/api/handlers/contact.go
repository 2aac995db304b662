package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/osa911/contact-api/internal/api/dto/common"
	dto "github.com/osa911/contact-api/internal/api/dto/v1/contact"
	"github.com/osa911/contact-api/internal/contact"
	"github.com/osa911/contact-api/internal/email"
	"github.com/osa911/contact-api/internal/logging"
	"github.com/osa911/contact-api/internal/tasks"
	"github.com/osa911/contact-api/internal/utils"

	"github.com/gin-gonic/gin"
)

var errNotConfigured = errors.New("RESEND_API_KEY not configured")

type ContactHandler struct {
	apiKey     string
	newSender  email.Factory
	background *tasks.Runner
	logger     *logging.Logger
}

// NewContactHandler wires the provider credential and sender factory. An empty
// apiKey is accepted; every submission is then answered with a configuration error.
func NewContactHandler(apiKey string, newSender email.Factory, background *tasks.Runner, logger *logging.Logger) *ContactHandler {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	if background == nil {
		background = tasks.NewRunner(logger)
	}
	return &ContactHandler{
		apiKey:     apiKey,
		newSender:  newSender,
		background: background,
		logger:     logger,
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			if c.Writer.Written() {
				h.logger.Error("Contact handler panicked after responding: %v", rec)
				return
			}
			utils.HandleAPIError(c, h.logger, fmt.Errorf("panic: %v", rec), http.StatusInternalServerError, common.MsgServerError)
		}
	}()

	if h.apiKey == "" {
		utils.HandleAPIError(c, h.logger, errNotConfigured, http.StatusInternalServerError, common.MsgNotConfigured)
		return
	}

	// Only unparseable input is a bad body; the shape is checked below.
	raw, err := c.GetRawData()
	if err != nil {
		utils.HandleAPIError(c, h.logger, err, http.StatusBadRequest, common.MsgInvalidBody)
		return
	}
	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		utils.HandleAPIError(c, h.logger, err, http.StatusBadRequest, common.MsgInvalidBody)
		return
	}

	req, err := dto.ParseBody(body)
	if err != nil {
		utils.HandleAPIError(c, h.logger, err, http.StatusInternalServerError, common.MsgServerError)
		return
	}

	sub, err := contact.ParseSubmission(req.Name, req.Email, req.Message)
	switch {
	case errors.Is(err, contact.ErrMissingFields):
		utils.HandleAPIError(c, h.logger, err, http.StatusBadRequest, common.MsgMissingFields)
		return
	case errors.Is(err, contact.ErrMessageTooShort):
		utils.HandleAPIError(c, h.logger, err, http.StatusBadRequest, common.MsgMessageShort)
		return
	case err != nil:
		utils.HandleAPIError(c, h.logger, err, http.StatusInternalServerError, common.MsgServerError)
		return
	}

	ctx := c.Request.Context()
	sender := h.newSender(h.apiKey)

	h.logger.Info("Sending admin notification for %s", sub.Email)
	res, err := sender.Send(ctx, contact.AdminNotification(sub))
	if err != nil {
		var perr *email.ProviderError
		if errors.As(err, &perr) {
			utils.HandleAPIError(c, h.logger, err, http.StatusInternalServerError, common.MsgSendFailed)
			return
		}
		utils.HandleAPIError(c, h.logger, err, http.StatusInternalServerError, common.MsgServerError)
		return
	}
	h.logger.Info("Admin notification accepted, id=%s", resultID(res))

	confirmation := contact.Confirmation(sub)
	h.background.Go(ctx, "confirmation email", func(ctx context.Context) error {
		res, err := sender.Send(ctx, confirmation)
		if err != nil {
			return err
		}
		h.logger.Info("Confirmation email accepted, id=%s", resultID(res))
		return nil
	})

	utils.HandleMessage(c, dto.SuccessMessage)
}

func resultID(res *email.SendResult) string {
	if res == nil {
		return ""
	}
	return res.ID
}
