package config

import (
	"fmt"
	"newsagent/pkg/llm"
	"newsagent/pkg/news"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is read from the environment, optionally seeded from a .env file.
// Provider keys may be empty: the service still starts and answers 500 on fetch.
type Config struct {
	SerpAPIKey  string
	SerpAPIURL  string
	HTTPTimeout time.Duration

	LLMProvider     string
	GoogleAPIKey    string
	GeminiModel     string
	OpenAIAPIKey    string
	OpenAIModel     string
	AnthropicAPIKey string
	AnthropicModel  string
	Region          string

	BindAddr    string
	DatabaseURL string
	RedisURL    string
	LogLevel    string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("SERP_API_URL", news.DefaultSerpAPIURL)
	v.SetDefault("HTTP_TIMEOUT", 30*time.Second)
	v.SetDefault("LLM_PROVIDER", llm.ProviderGemini)
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-pro")
	v.SetDefault("API_BIND_ADDR", ":8000")
	v.SetDefault("LOG_LEVEL", "info")

	c := &Config{
		SerpAPIKey:      v.GetString("SERP_API_KEY"),
		SerpAPIURL:      v.GetString("SERP_API_URL"),
		HTTPTimeout:     v.GetDuration("HTTP_TIMEOUT"),
		LLMProvider:     strings.ToLower(strings.TrimSpace(v.GetString("LLM_PROVIDER"))),
		GoogleAPIKey:    v.GetString("GOOGLE_API_KEY"),
		GeminiModel:     v.GetString("GEMINI_MODEL"),
		OpenAIAPIKey:    v.GetString("OPENAI_API_KEY"),
		OpenAIModel:     v.GetString("OPENAI_MODEL"),
		AnthropicAPIKey: v.GetString("ANTHROPIC_API_KEY"),
		AnthropicModel:  v.GetString("ANTHROPIC_MODEL"),
		Region:          strings.TrimSpace(v.GetString("NEWS_REGION")),
		BindAddr:        v.GetString("API_BIND_ADDR"),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		RedisURL:        v.GetString("REDIS_URL"),
		LogLevel:        v.GetString("LOG_LEVEL"),
	}

	if !llm.ValidProvider(c.LLMProvider) {
		return nil, fmt.Errorf("LLM_PROVIDER must be one of gemini, openai, anthropic, got %q", c.LLMProvider)
	}
	if c.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT must be a positive duration")
	}
	if strings.TrimSpace(c.BindAddr) == "" {
		return nil, fmt.Errorf("API_BIND_ADDR cannot be empty")
	}

	return c, nil
}

// LLMOptions returns the options for the selected generative provider.
func (c *Config) LLMOptions() llm.Options {
	switch c.LLMProvider {
	case llm.ProviderOpenAI:
		return llm.Options{Provider: c.LLMProvider, APIKey: c.OpenAIAPIKey, Model: c.OpenAIModel}
	case llm.ProviderAnthropic:
		return llm.Options{Provider: c.LLMProvider, APIKey: c.AnthropicAPIKey, Model: c.AnthropicModel}
	default:
		return llm.Options{Provider: llm.ProviderGemini, APIKey: c.GoogleAPIKey, Model: c.GeminiModel}
	}
}
