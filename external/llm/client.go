package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/footylab/mvp-selector/internal/platform/logging"
)

type ClientConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Logger  *logging.Logger
}

// Client wraps an OpenAI-compatible chat-completion endpoint. With the
// default BaseURL it talks to OpenAI; pointed at Gemini's compatibility
// endpoint it serves the same role. Temperature is pinned to zero so the
// only nondeterminism left is the model itself.
type Client struct {
	api    *openai.Client
	model  string
	logger *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	apiCfg := openai.DefaultConfig(strings.TrimSpace(cfg.APIKey))
	if baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); baseURL != "" {
		apiCfg.BaseURL = baseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	apiCfg.HTTPClient = &http.Client{Timeout: timeout}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gemini-1.5-flash"
	}

	return &Client{
		api:    openai.NewClientWithConfig(apiCfg),
		model:  model,
		logger: logger,
	}
}

// Complete sends one prompt and returns the model's text verbatim.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0,
	})
	if err != nil {
		c.logger.WarnContext(ctx, "chat completion failed", "model", c.model, "error", err)
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
