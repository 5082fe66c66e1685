package handler

import (
	"log/slog"
	"net/http"

	"shipnotify/config"
	deliverycontext "shipnotify/internal/delivery/context"
	"shipnotify/internal/delivery/http/response"
	"shipnotify/internal/delivery/telegram"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WebhookParams defines the required parameters
type WebhookParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Dispatcher *telegram.Dispatcher
}

// WebhookHandler receives Telegram webhook updates and feeds them to the
// dispatcher.
type WebhookHandler struct {
	cfg        *config.Config
	logger     *slog.Logger
	dispatcher *telegram.Dispatcher
}

// NewWebhookHandler creates a new WebhookHandler instance
func NewWebhookHandler(params WebhookParams) *WebhookHandler {
	return &WebhookHandler{
		cfg:        params.Config,
		logger:     params.Logger,
		dispatcher: params.Dispatcher,
	}
}

// HandleUpdate processes one webhook delivery. The bot token is embedded
// in the path so only Telegram can reach the endpoint; a wrong token is
// indistinguishable from a missing route.
func (h *WebhookHandler) HandleUpdate(c echo.Context) error {
	if c.Param("token") != h.cfg.Telegram.Token {
		return response.NotFound(c, "NOT_FOUND", "")
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	var update telegram.Update
	if err := c.Bind(&update); err != nil {
		logger.Warn("failed to decode webhook update", slog.Any("error", err))

		return response.BadRequest(c, "INVALID_UPDATE", "Failed to parse update")
	}

	// Always acknowledge the update. Returning an error would make
	// Telegram redeliver it, repeating any side effects that already
	// happened.
	if err := h.dispatcher.HandleUpdate(ctx, &update); err != nil {
		logger.Error("failed to handle update",
			slog.Int64("updateID", update.UpdateID),
			slog.Any("error", err),
		)
	}

	return response.Success(c, http.StatusOK, nil, "Update processed")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
