package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	t.Setenv("POLSKI_LLM_PROVIDER", "")
	for _, keys := range providerEnv {
		t.Setenv(keys.key, "")
		t.Setenv(keys.model, "")
		if keys.baseURL != "" {
			t.Setenv(keys.baseURL, "")
		}
	}
	for _, v := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(v, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("POLSKI_LLM_PROVIDER", ProviderOpenAI)
	t.Setenv("POLSKI_OPENAI_API_KEY", "sk-test")
	t.Setenv("POLSKI_OPENAI_MODEL", "gpt-4.1-mini")
	t.Setenv("POLSKI_OPENAI_BASE_URL", "http://localhost:8080/v1")

	cfg := ConfigFromEnv()
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4.1-mini", cfg.OpenAI.Model)
	assert.Equal(t, "http://localhost:8080/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, "claude-haiku", cfg.Anthropic.Model, "untouched providers keep defaults")
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.Validate(), "default anthropic has no key")

	cfg.Anthropic.APIKey = "k"
	assert.NoError(t, cfg.Validate())

	cfg.Provider = ProviderMock
	assert.NoError(t, cfg.Validate())

	cfg.Provider = "bard"
	assert.Error(t, cfg.Validate())
}

func TestDiscoverConfig(t *testing.T) {
	clearProviderEnv(t)
	_, ok := DiscoverConfig()
	assert.False(t, ok)

	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	t.Setenv("OPENROUTER_API_KEY", "or-key")
	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, ProviderAnthropic, cfg.Provider)
	assert.Equal(t, "a-key", cfg.Anthropic.APIKey)

	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, _ = DiscoverConfig()
	assert.Equal(t, ProviderGemini, cfg.Provider)
}
