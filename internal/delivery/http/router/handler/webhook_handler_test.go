package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shipnotify/config"
	"shipnotify/internal/delivery/telegram"
	mockSvc "shipnotify/internal/mocks/service"
	mockUC "shipnotify/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestWebhookHandler(t *testing.T) (*WebhookHandler, *mockUC.MockAdminUsecase, *mockSvc.MockMessenger) {
	t.Helper()

	cfg := &config.Config{
		Telegram: &config.TelegramConfig{Token: "secret-token", PageSize: 5},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	admins := mockUC.NewMockAdminUsecase(t)
	messenger := mockSvc.NewMockMessenger(t)

	dispatcher := telegram.NewDispatcher(telegram.Params{
		Config:              cfg,
		Logger:              logger,
		NotificationUsecase: mockUC.NewMockNotificationUsecase(t),
		AdminUsecase:        admins,
		TemplateUsecase:     mockUC.NewMockTemplateUsecase(t),
		ReminderUsecase:     mockUC.NewMockReminderUsecase(t),
		Messenger:           messenger,
		Analyzer:            mockSvc.NewMockVisionAnalyzer(t),
		ImageStore:          mockSvc.NewMockImageStore(t),
	})

	handler := NewWebhookHandler(WebhookParams{
		Config:     cfg,
		Logger:     logger,
		Dispatcher: dispatcher,
	})

	return handler, admins, messenger
}

func performWebhook(handler *WebhookHandler, token, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhook/"+token, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetPath("/webhook/:token")
	c.SetParamNames("token")
	c.SetParamValues(token)

	_ = handler.HandleUpdate(c)

	return rec
}

func TestHandleUpdate_RejectsWrongToken(t *testing.T) {
	handler, _, _ := newTestWebhookHandler(t)

	rec := performWebhook(handler, "wrong-token", `{"update_id":1}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleUpdate_AcknowledgesEmptyUpdate(t *testing.T) {
	handler, _, _ := newTestWebhookHandler(t)

	rec := performWebhook(handler, "secret-token", `{"update_id":1}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestHandleUpdate_DispatchesMessage(t *testing.T) {
	handler, admins, messenger := newTestWebhookHandler(t)

	admins.EXPECT().IsAdmin(mock.Anything, int64(9)).Return(false, nil)
	messenger.EXPECT().SendMessage(mock.Anything, int64(55), mock.Anything, mock.Anything).
		Return(int64(1), nil)

	body := `{"update_id":2,"message":{"message_id":1,"from":{"id":9},"chat":{"id":55},"text":"/admin"}}`
	rec := performWebhook(handler, "secret-token", body)

	require.Equal(t, http.StatusOK, rec.Code)
}
