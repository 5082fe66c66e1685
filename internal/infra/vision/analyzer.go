// Package vision implements the VisionAnalyzer interface on an
// OpenAI-compatible chat completions endpoint.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"shipnotify/config"
	"shipnotify/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	requestTimeout = 60 * time.Second

	// analysisPrompt asks for the shipment fields in plain prose so the
	// downstream extractor can pick them out.
	analysisPrompt = "Describe this shipping label. Include the customer name, " +
		"phone number, shipping date, destination and declared value if visible."
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type chatAnalyzer struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a vision analyzer backed by a chat completions API. When no
// endpoint is configured the analyzer is constructed anyway and every call
// fails; callers gate the assisted features on the configuration.
func New(params Params) service.VisionAnalyzer {
	analyzer := &chatAnalyzer{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: params.Logger,
	}

	if params.Config.Vision != nil {
		analyzer.endpoint = params.Config.Vision.Endpoint
		analyzer.apiKey = params.Config.Vision.APIKey
		analyzer.model = params.Config.Vision.Model
	}

	return analyzer
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// AnalyzeImage sends the image inline as a data URL and returns the model's
// free-text description.
func (a *chatAnalyzer) AnalyzeImage(ctx context.Context, image []byte) (string, error) {
	if a.endpoint == "" {
		return "", errors.New("vision endpoint not configured")
	}

	encoded := base64.StdEncoding.EncodeToString(image)

	payload := chatRequest{
		Model: a.model,
		Messages: []chatMessage{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: analysisPrompt},
				{Type: "image_url", ImageURL: &imageURL{URL: "data:image/jpeg;base64," + encoded}},
			},
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "vision request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("vision endpoint returned status %d", resp.StatusCode)
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", errors.Wrap(err, "failed to decode vision response")
	}

	if len(decoded.Choices) == 0 {
		return "", errors.New("vision endpoint returned no choices")
	}

	a.logger.LogAttrs(ctx, slog.LevelDebug, "image analyzed",
		slog.Int("responseLength", len(decoded.Choices[0].Message.Content)),
	)

	return decoded.Choices[0].Message.Content, nil
}

// chatHistoryLimit keeps the request small; older turns are dropped.
const chatHistoryLimit = 5

// Chat forwards the most recent conversation turns and returns the reply.
func (a *chatAnalyzer) Chat(ctx context.Context, turns []service.ChatTurn) (string, error) {
	if a.endpoint == "" {
		return "", errors.New("vision endpoint not configured")
	}

	if len(turns) > chatHistoryLimit {
		turns = turns[len(turns)-chatHistoryLimit:]
	}

	messages := make([]chatMessage, 0, len(turns))
	for _, turn := range turns {
		messages = append(messages, chatMessage{
			Role:    turn.Role,
			Content: []contentPart{{Type: "text", Text: turn.Content}},
		})
	}

	payload := chatRequest{
		Model:    a.model,
		Messages: messages,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "chat request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("chat endpoint returned status %d", resp.StatusCode)
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", errors.Wrap(err, "failed to decode chat response")
	}

	if len(decoded.Choices) == 0 {
		return "", errors.New("chat endpoint returned no choices")
	}

	return decoded.Choices[0].Message.Content, nil
}
