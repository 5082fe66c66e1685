// Package telegram implements the Messenger interface on the Telegram Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"shipnotify/config"
	"shipnotify/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const requestTimeout = 30 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Client talks to the Telegram Bot API over HTTPS.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// apiResponse is the envelope every Bot API call returns.
type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
}

type sentMessage struct {
	MessageID int64 `json:"message_id"`
}

type fileInfo struct {
	FilePath string `json:"file_path"`
}

// New creates a Bot API client.
func New(params Params) *Client {
	return &Client{
		endpoint: params.Config.Telegram.APIEndpoint,
		token:    params.Config.Telegram.Token,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: params.Logger,
	}
}

// NewMessenger exposes the client as the domain Messenger interface.
func NewMessenger(client *Client) service.Messenger {
	return client
}

// SetWebhook registers the public webhook URL with the Bot API. The token is
// appended to the URL path so inbound requests can be authenticated.
func (c *Client) SetWebhook(ctx context.Context, webhookURL string) error {
	payload := map[string]any{
		"url": webhookURL + "/webhook/" + c.token,
	}

	return c.call(ctx, "setWebhook", payload, nil)
}

// DeleteWebhook unregisters the webhook.
func (c *Client) DeleteWebhook(ctx context.Context) error {
	return c.call(ctx, "deleteWebhook", map[string]any{}, nil)
}

// SendMessage sends a text message, optionally with an inline keyboard.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, keyboard service.InlineKeyboard) (int64, error) {
	payload := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}
	if len(keyboard) > 0 {
		payload["reply_markup"] = map[string]any{"inline_keyboard": keyboard}
	}

	var sent sentMessage
	if err := c.call(ctx, "sendMessage", payload, &sent); err != nil {
		return 0, err
	}

	return sent.MessageID, nil
}

// EditMessageText replaces the text (and keyboard) of a sent message.
func (c *Client) EditMessageText(ctx context.Context, chatID int64, messageID int64, text string, keyboard service.InlineKeyboard) error {
	payload := map[string]any{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
	}
	if len(keyboard) > 0 {
		payload["reply_markup"] = map[string]any{"inline_keyboard": keyboard}
	}

	return c.call(ctx, "editMessageText", payload, nil)
}

// AnswerCallbackQuery acknowledges a pressed inline button.
func (c *Client) AnswerCallbackQuery(ctx context.Context, callbackQueryID string, text string) error {
	payload := map[string]any{
		"callback_query_id": callbackQueryID,
	}
	if text != "" {
		payload["text"] = text
	}

	return c.call(ctx, "answerCallbackQuery", payload, nil)
}

// SendPhoto uploads photo bytes with an optional caption.
func (c *Client) SendPhoto(ctx context.Context, chatID int64, fileName string, photo []byte, caption string) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("chat_id", fmt.Sprintf("%d", chatID)); err != nil {
		return errors.WithStack(err)
	}
	if caption != "" {
		if err := writer.WriteField("caption", caption); err != nil {
			return errors.WithStack(err)
		}
	}

	part, err := writer.CreateFormFile("photo", fileName)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := part.Write(photo); err != nil {
		return errors.Wrap(err, "failed to buffer photo")
	}
	if err := writer.Close(); err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL("sendPhoto"), &body)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req, nil)
}

// DownloadFile fetches a chat upload by file ID. The Bot API hands out a
// short-lived path that is downloaded in a second request.
func (c *Client) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	var info fileInfo
	if err := c.call(ctx, "getFile", map[string]any{"file_id": fileID}, &info); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/file/bot%s/%s", c.endpoint, c.token, info.FilePath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to download file")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("file download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read file body")
	}

	return data, nil
}

// call sends a JSON Bot API request and decodes the result into out.
func (c *Client) call(ctx context.Context, method string, payload map[string]any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL(method), bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "bot API request failed")
	}
	defer resp.Body.Close()

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return errors.Wrap(err, "failed to decode bot API response")
	}

	if !envelope.OK {
		c.logger.LogAttrs(req.Context(), slog.LevelWarn, "bot API call rejected",
			slog.String("description", envelope.Description),
			slog.Int("status", resp.StatusCode),
		)

		return errors.Errorf("bot API error: %s", envelope.Description)
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return errors.Wrap(err, "failed to decode bot API result")
		}
	}

	return nil
}

func (c *Client) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.endpoint, c.token, method)
}
