package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/polski/internal/catalog"
	"github.com/abhisek/polski/internal/llm"
	"github.com/abhisek/polski/internal/questionbank"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		envConfig, envDB, envLogMode, envUser, "POLSKI_LLM_PROVIDER",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
	for _, p := range []string{"ANTHROPIC", "OPENAI", "GEMINI", "OPENROUTER"} {
		for _, suffix := range []string{"_API_KEY", "_MODEL", "_BASE_URL"} {
			t.Setenv("POLSKI_"+p+suffix, "")
		}
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5, cfg.Engine.Selector.DefaultMax)
	assert.Equal(t, 10.0, cfg.Engine.Selector.Priority.Mastery)
	assert.Equal(t, 1000.0, cfg.Engine.Selector.Weakness.NoProgress)
	assert.Equal(t, 3, cfg.Briefing.MaxContextConcepts)
	assert.Equal(t, 5*time.Second, cfg.Engine.SRS.FastAnswer)
}

func TestLoad_NoFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLOverlaysDefaults(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "polski.yaml", `
log_mode: prod
engine:
  selector:
    default_max: 8
    bootstrap_level: A2
    priority:
      overdue: 3
  srs:
    fast_answer: 4s
  provision:
    generation_types: [BASIC_CLOZE, VOCAB_CHOICE]
llm:
  provider: openai
  timeout: 30s
  openai:
    model: gpt-4.1-mini
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.LogMode)
	assert.Equal(t, 8, cfg.Engine.Selector.DefaultMax)
	assert.Equal(t, catalog.LevelA2, cfg.Engine.Selector.BootstrapLevel)
	assert.Equal(t, 3.0, cfg.Engine.Selector.Priority.Overdue)
	assert.Equal(t, 10.0, cfg.Engine.Selector.Priority.Mastery, "unset weights keep defaults")
	assert.Equal(t, 4*time.Second, cfg.Engine.SRS.FastAnswer)
	assert.Equal(t, 15*time.Second, cfg.Engine.SRS.SlowAnswer)
	assert.Equal(t, []questionbank.QuestionType{questionbank.TypeBasicCloze, questionbank.TypeVocabChoice}, cfg.Engine.Provision.GenerationTypes)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "gpt-4.1-mini", cfg.LLM.OpenAI.Model)
	assert.Equal(t, "claude-haiku", cfg.LLM.Anthropic.Model)
}

func TestLoad_EnvWins(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "polski.yaml", "db_path: /from/file.db\nuser_id: ola\n")
	t.Setenv(envConfig, path)
	t.Setenv(envDB, "/from/env.db")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.DBPath)
	assert.Equal(t, "ola", cfg.UserID)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "engine: [oops"))
	assert.ErrorContains(t, err, "parse config")

	_, err = Load(writeFile(t, "neg.yaml", "engine:\n  selector:\n    default_max: 0\n    bootstrap_level: D4\n"))
	assert.ErrorContains(t, err, "default_max")
	assert.ErrorContains(t, err, "bootstrap_level")
}

func TestQuestionGen(t *testing.T) {
	cfg := Default()
	cfg.Generation.MaxQuantity = 4
	cfg.Briefing.MaxExamples = 1

	gen := cfg.QuestionGen()
	assert.Equal(t, 4, gen.MaxQuantity)
	assert.Equal(t, 1, gen.MaxExamples)
	assert.NotEmpty(t, gen.Validators)
}

func TestResolveLLM(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	_, ok := cfg.ResolveLLM()
	assert.False(t, ok, "no credentials anywhere")

	t.Setenv("OPENAI_API_KEY", "sk-vendor")
	got, ok := cfg.ResolveLLM()
	require.True(t, ok)
	assert.Equal(t, llm.ProviderOpenAI, got.Provider)
	assert.Equal(t, cfg.LLM.Timeout, got.Timeout)

	t.Setenv("POLSKI_ANTHROPIC_API_KEY", "a-key")
	cfg, err = Load("")
	require.NoError(t, err)
	got, ok = cfg.ResolveLLM()
	require.True(t, ok)
	assert.Equal(t, llm.ProviderAnthropic, got.Provider, "configured provider wins over discovery")
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("POLSKI_TEST_DOTENV", "")
	os.Unsetenv("POLSKI_TEST_DOTENV")
	path := writeFile(t, ".env", "POLSKI_TEST_DOTENV=loaded\n")

	require.NoError(t, LoadDotEnv(path, filepath.Join(t.TempDir(), "absent.env")))
	assert.Equal(t, "loaded", os.Getenv("POLSKI_TEST_DOTENV"))
}
