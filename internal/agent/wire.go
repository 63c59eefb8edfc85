package agent

import (
	"context"
	"errors"
	"log/slog"
	"newsagent/internal/config"
	"newsagent/pkg/llm"
	"newsagent/pkg/news"
)

// FromConfig builds the service from environment configuration. Missing
// provider keys are logged and left for FetchNews to report per request.
func FromConfig(ctx context.Context, cfg *config.Config, recorders ...Recorder) (*Service, error) {
	var searcher news.Searcher
	if cfg.SerpAPIKey != "" {
		searcher = news.NewSerpAPIClient(cfg.SerpAPIKey, cfg.SerpAPIURL, cfg.HTTPTimeout)
	} else {
		slog.Warn("SERP_API_KEY is not set, fetch-news will fail")
	}

	var generator llm.Generator
	opts := cfg.LLMOptions()
	g, err := llm.New(ctx, opts)
	switch {
	case errors.Is(err, llm.ErrMissingKey):
		slog.Warn("generative provider key is not set, fetch-news will fail", "provider", opts.Provider)
	case err != nil:
		return nil, err
	default:
		generator = g
	}

	return NewService(searcher, generator, Options{
		GeneratorLabel: llm.ProviderLabel(opts.Provider),
		Region:         cfg.Region,
		Recorders:      recorders,
	}), nil
}
