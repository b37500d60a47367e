// Package deepseek implements the recipe generator port against the
// DeepSeek chat-completions API. Responses use a pipe-separated
// structured format instead of JSON because smaller chat models emit
// it far more reliably.
package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/platemind/v1/internal/application/engine"
	"github.com/platemind/v1/internal/domain/recipe"
	"github.com/platemind/v1/internal/ports/outbound"
	appErrors "github.com/platemind/v1/pkg/errors"
)

const systemPrompt = `You are a professional chef planning safe home cooking.
You must respond ONLY in the exact structured format requested.
Dietary requirements marked CRITICAL are absolute: never include a
forbidden ingredient, a derivative of one, or a dish that traditionally
contains one.`

// Client talks to the DeepSeek chat-completions endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
	temp       float64
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithModel selects the chat model.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithMaxTokens caps the completion length.
func WithMaxTokens(n int) Option {
	return func(c *Client) { c.maxTokens = n }
}

// WithTemperature sets sampling temperature.
func WithTemperature(t float64) Option {
	return func(c *Client) { c.temp = t }
}

// NewClient builds a generator client.
func NewClient(baseURL, apiKey string, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      "deepseek-chat",
		maxTokens:  2000,
		temp:       0.7,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// GenerateRecipe renders the payload into a prompt, calls the API and
// parses the structured reply into a candidate. The candidate is
// untrusted: the caller re-validates it against the hard constraints.
func (c *Client) GenerateRecipe(ctx context.Context, payload outbound.PromptPayload) (*recipe.Candidate, error) {
	prompt := engine.RenderPrompt(payload) + "\n" + responseFormat

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temp,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, appErrors.NewExternalServiceError("deepseek", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, appErrors.NewExternalServiceError("deepseek", err)
	}

	c.logger.Debug("deepseek completion finished",
		zap.Int("status", resp.StatusCode),
		zap.Int("attempt", payload.Attempt),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return nil, appErrors.NewExternalServiceError("deepseek",
			fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(respBody), 200)))
	}

	var chat chatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}
	if chat.Error != nil {
		return nil, appErrors.NewExternalServiceError("deepseek",
			fmt.Errorf("%s: %s", chat.Error.Type, chat.Error.Message))
	}
	if len(chat.Choices) == 0 {
		return nil, appErrors.NewExternalServiceError("deepseek",
			fmt.Errorf("empty choices in response"))
	}

	candidate, err := ParseCandidate(chat.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("parse model output: %w", err)
	}
	return candidate, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
