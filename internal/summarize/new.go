package summarize

import (
	"context"
	"fmt"
	"time"

	"shownotes/internal/config"
	"shownotes/internal/logger"
	"shownotes/pkg/openaiclient"
)

// completer is one generative provider. Implementations classify their
// failures as transient or permanent via *BackendError.
type completer interface {
	complete(ctx context.Context, prompt string) (string, error)
}

type implEngine struct {
	backend       completer
	logger        logger.Logger
	attempts      int
	backoff       time.Duration
	timeout       time.Duration
	maxInputRunes int
}

// New creates an Engine for the configured provider.
func New(cfg config.SummarizerConfig, log logger.Logger) (Engine, error) {
	var b completer
	switch cfg.Provider {
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
		b = &openaiBackend{
			client: openaiclient.New(cfg.BaseURL, cfg.APIKey),
			model:  cfg.Model,
		}
	case "gemini":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
		b = &geminiBackend{
			apiKey: cfg.APIKey,
			model:  cfg.Model,
		}
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Provider)
	}

	return newWithBackend(b, cfg, log), nil
}

func newWithBackend(b completer, cfg config.SummarizerConfig, log logger.Logger) Engine {
	return &implEngine{
		backend:       b,
		logger:        log,
		attempts:      cfg.Attempts,
		backoff:       cfg.Backoff(),
		timeout:       cfg.Timeout(),
		maxInputRunes: cfg.MaxInputRunes,
	}
}
