package config

import (
	"fmt"
	"os"
)

// Summary provider identifiers.
const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config carries everything the service reads from the environment.
// Components receive the values they need explicitly and never touch the
// environment themselves.
type Config struct {
	BindAddr    string
	FrontendURL string

	ReaderBaseURL string
	StorePath     string

	SummaryProvider string
	DefaultModel    string
	ImageModel      string

	GeminiAPIKey    string
	OpenAIAPIKey    string
	AnthropicAPIKey string
}

// Load builds a Config from environment variables and validates that the
// selected summary provider has a credential.
func Load() (*Config, error) {
	c := &Config{
		BindAddr:        getEnv("BIND_ADDR", ":8080"),
		FrontendURL:     os.Getenv("FRONTEND_URL"),
		ReaderBaseURL:   getEnv("READER_BASE_URL", "https://r.jina.ai"),
		StorePath:       getEnv("STORE_PATH", "articles.json"),
		SummaryProvider: getEnv("SUMMARY_PROVIDER", ProviderGemini),
		DefaultModel:    os.Getenv("DEFAULT_MODEL"),
		ImageModel:      os.Getenv("IMAGE_MODEL"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
	}

	switch c.SummaryProvider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set")
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is not set")
		}
	default:
		return nil, fmt.Errorf("unknown SUMMARY_PROVIDER %q", c.SummaryProvider)
	}

	return c, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
