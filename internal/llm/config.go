package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures the LLM backend.
type Config struct {
	Provider string `yaml:"provider"`

	Anthropic  ProviderConfig `yaml:"anthropic"`
	OpenAI     ProviderConfig `yaml:"openai"`
	Gemini     ProviderConfig `yaml:"gemini"`
	OpenRouter ProviderConfig `yaml:"openrouter"`

	Retry RetryConfig `yaml:"retry"`

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration `yaml:"timeout"`
}

// ProviderConfig holds per-provider credentials and model choice.
// BaseURL only applies to the OpenAI-compatible providers.
type ProviderConfig struct {
	APIKey  string `yaml:"-"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// RetryConfig controls exponential backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	InitialWait time.Duration `yaml:"initial_wait"`
	MaxWait     time.Duration `yaml:"max_wait"`
	Multiplier  float64       `yaml:"multiplier"`
}

// DefaultConfig returns the defaults used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  ProviderConfig{Model: "claude-haiku"},
		OpenAI:     ProviderConfig{Model: "gpt-4o-mini"},
		Gemini:     ProviderConfig{Model: "gemini-flash"},
		OpenRouter: ProviderConfig{Model: "google/gemini-2.0-flash-001", BaseURL: defaultOpenRouterBaseURL},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 45 * time.Second,
	}
}

// envKeys names the POLSKI_* variables of one provider.
type envKeys struct {
	key, model, baseURL string
}

var providerEnv = map[string]envKeys{
	ProviderAnthropic:  {"POLSKI_ANTHROPIC_API_KEY", "POLSKI_ANTHROPIC_MODEL", ""},
	ProviderOpenAI:     {"POLSKI_OPENAI_API_KEY", "POLSKI_OPENAI_MODEL", "POLSKI_OPENAI_BASE_URL"},
	ProviderGemini:     {"POLSKI_GEMINI_API_KEY", "POLSKI_GEMINI_MODEL", ""},
	ProviderOpenRouter: {"POLSKI_OPENROUTER_API_KEY", "POLSKI_OPENROUTER_MODEL", "POLSKI_OPENROUTER_BASE_URL"},
}

// ApplyEnv overlays POLSKI_* environment variables onto c.
func (c *Config) ApplyEnv() {
	if p := os.Getenv("POLSKI_LLM_PROVIDER"); p != "" {
		c.Provider = p
	}
	for name, keys := range providerEnv {
		pc := c.providerConfig(name)
		if v := os.Getenv(keys.key); v != "" {
			pc.APIKey = v
		}
		if v := os.Getenv(keys.model); v != "" {
			pc.Model = v
		}
		if keys.baseURL != "" {
			if v := os.Getenv(keys.baseURL); v != "" {
				pc.BaseURL = v
			}
		}
	}
}

// ConfigFromEnv returns DefaultConfig with the environment applied.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.ApplyEnv()
	return cfg
}

// DiscoverConfig looks for the vendors' own API key variables, in the
// order Gemini, OpenAI, Anthropic, OpenRouter, and selects the first
// provider found. It reports false when none is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	for _, cand := range []struct{ env, provider string }{
		{"GEMINI_API_KEY", ProviderGemini},
		{"OPENAI_API_KEY", ProviderOpenAI},
		{"ANTHROPIC_API_KEY", ProviderAnthropic},
		{"OPENROUTER_API_KEY", ProviderOpenRouter},
	} {
		if k := os.Getenv(cand.env); k != "" {
			cfg.Provider = cand.provider
			cfg.providerConfig(cand.provider).APIKey = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider is known and has a key.
func (c Config) Validate() error {
	if c.Provider == ProviderMock {
		return nil
	}
	keys, ok := providerEnv[c.Provider]
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.providerConfig(c.Provider).APIKey == "" {
		return fmt.Errorf("%s is required for the %s provider", keys.key, c.Provider)
	}
	return nil
}

func (c *Config) providerConfig(name string) *ProviderConfig {
	switch name {
	case ProviderAnthropic:
		return &c.Anthropic
	case ProviderOpenAI:
		return &c.OpenAI
	case ProviderGemini:
		return &c.Gemini
	case ProviderOpenRouter:
		return &c.OpenRouter
	}
	return &ProviderConfig{}
}
