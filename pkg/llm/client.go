package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

var ErrMissingKey = errors.New("llm api key is empty")

// Generator sends a single prompt and returns the model's raw text reply.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}

type Options struct {
	Provider string
	APIKey   string
	Model    string
}

// ValidProvider reports whether name is one of the supported providers.
func ValidProvider(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ProviderGemini, ProviderOpenAI, ProviderAnthropic:
		return true
	}
	return false
}

// ProviderLabel is the human readable vendor name used in error messages.
func ProviderLabel(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderAnthropic:
		return "Anthropic"
	default:
		return "Google"
	}
}

func New(ctx context.Context, opts Options) (Generator, error) {
	if opts.APIKey == "" {
		return nil, ErrMissingKey
	}

	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case ProviderGemini, "":
		return NewGeminiClient(ctx, opts.APIKey, opts.Model)
	case ProviderOpenAI:
		return NewOpenAIClient(opts.APIKey, opts.Model), nil
	case ProviderAnthropic:
		return NewAnthropicClient(opts.APIKey, opts.Model), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", opts.Provider)
	}
}
