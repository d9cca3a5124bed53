package app

import (
	"log/slog"
	"net/http"

	"github.com/footylab/mvp-selector/external/apifootball"
	"github.com/footylab/mvp-selector/external/llm"
	"github.com/footylab/mvp-selector/internal/config"
	"github.com/footylab/mvp-selector/internal/platform/logging"
	"github.com/footylab/mvp-selector/internal/usecase"
)

// NewMVPService wires the external clients into the MVP service. Both
// binaries (console and MCP) share this construction.
func NewMVPService(cfg config.Config, logger *slog.Logger) *usecase.MVPService {
	clientLogger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(clientLogger)

	statsClient := apifootball.NewClient(apifootball.ClientConfig{
		HTTPClient: &http.Client{Timeout: cfg.APIFootballTimeout},
		BaseURL:    cfg.APIFootballBaseURL,
		Key:        cfg.APIFootballKey,
		Host:       cfg.APIFootballHost,
		Timeout:    cfg.APIFootballTimeout,
		Logger:     clientLogger,
	})

	llmClient := llm.NewClient(llm.ClientConfig{
		APIKey:  cfg.LLMAPIKey,
		BaseURL: cfg.LLMBaseURL,
		Model:   cfg.LLMModel,
		Timeout: cfg.LLMTimeout,
		Logger:  clientLogger,
	})

	return usecase.NewMVPService(statsClient, llmClient, logger)
}
