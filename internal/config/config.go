// Package config loads engine settings from defaults, an optional YAML
// file and environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/polski/internal/briefing"
	"github.com/abhisek/polski/internal/importer"
	"github.com/abhisek/polski/internal/llm"
	"github.com/abhisek/polski/internal/practice"
	"github.com/abhisek/polski/internal/questiongen"
)

const (
	envConfig  = "POLSKI_CONFIG"
	envDB      = "POLSKI_DB"
	envLogMode = "POLSKI_LOG_MODE"
	envUser    = "POLSKI_USER"
)

// Generation tunes LLM question generation.
type Generation struct {
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	MaxQuantity int     `yaml:"max_quantity"`
}

// Config is the full application configuration.
type Config struct {
	// DBPath overrides the default database location when set.
	DBPath  string `yaml:"db_path"`
	LogMode string `yaml:"log_mode"`

	// UserID is the learner the CLI acts for.
	UserID string `yaml:"user_id"`

	Engine     practice.Config `yaml:"engine"`
	Briefing   briefing.Config `yaml:"briefing"`
	Generation Generation      `yaml:"generation"`
	LLM        llm.Config      `yaml:"llm"`
	Import     importer.Config `yaml:"import"`
}

// Default returns the built-in configuration.
func Default() Config {
	gen := questiongen.DefaultConfig()
	return Config{
		LogMode:  "dev",
		UserID:   "default",
		Engine:   practice.DefaultConfig(),
		Briefing: briefing.DefaultConfig(),
		Generation: Generation{
			MaxTokens:   gen.MaxTokens,
			Temperature: gen.Temperature,
			MaxQuantity: gen.MaxQuantity,
		},
		LLM:    llm.DefaultConfig(),
		Import: importer.DefaultConfig(),
	}
}

// Load builds the configuration. path names a YAML file; when empty,
// POLSKI_CONFIG is consulted, and with neither only defaults and
// environment apply. Fields missing from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(envDB); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(envLogMode); v != "" {
		c.LogMode = v
	}
	if v := os.Getenv(envUser); v != "" {
		c.UserID = v
	}
	c.LLM.ApplyEnv()
}

// ResolveLLM returns the LLM settings to use. When the configured provider
// lacks credentials, the vendors' own API key variables are probed. It
// reports false when no usable provider is found.
func (c Config) ResolveLLM() (llm.Config, bool) {
	if c.LLM.Validate() == nil {
		return c.LLM, true
	}
	found, ok := llm.DiscoverConfig()
	if !ok {
		return llm.Config{}, false
	}
	found.Retry = c.LLM.Retry
	found.Timeout = c.LLM.Timeout
	return found, true
}

// Validate rejects settings the engine cannot work with.
func (c Config) Validate() error {
	var errs []error
	sel := c.Engine.Selector
	if sel.DefaultMax <= 0 {
		errs = append(errs, errors.New("engine.selector.default_max must be positive"))
	}
	if !sel.BootstrapLevel.Valid() {
		errs = append(errs, fmt.Errorf("engine.selector.bootstrap_level %q is not a CEFR level", sel.BootstrapLevel))
	}
	w := sel.Priority
	if w.Overdue < 0 || w.Mastery < 0 || w.Success < 0 || w.Ease < 0 {
		errs = append(errs, errors.New("engine.selector.priority weights must not be negative"))
	}
	if c.Engine.Provision.DefaultMaxQuestions <= 0 {
		errs = append(errs, errors.New("engine.provision.default_max_questions must be positive"))
	}
	for _, t := range c.Engine.Provision.GenerationTypes {
		if !t.Valid() {
			errs = append(errs, fmt.Errorf("engine.provision.generation_types: unknown type %q", t))
		}
	}
	if c.Briefing.MaxContextConcepts < 0 || c.Briefing.MaxExamples < 0 {
		errs = append(errs, errors.New("briefing limits must not be negative"))
	}
	if c.Generation.MaxQuantity <= 0 {
		errs = append(errs, errors.New("generation.max_quantity must be positive"))
	}
	if c.UserID == "" {
		errs = append(errs, errors.New("user_id must not be empty"))
	}
	return errors.Join(errs...)
}

// QuestionGen returns the generator settings derived from c.
func (c Config) QuestionGen() questiongen.Config {
	gen := questiongen.DefaultConfig()
	gen.MaxTokens = c.Generation.MaxTokens
	gen.Temperature = c.Generation.Temperature
	gen.MaxQuantity = c.Generation.MaxQuantity
	gen.MaxExamples = c.Briefing.MaxExamples
	return gen
}

// LoadDotEnv loads variables from the given .env files (".env" when none
// are named). Missing files are ignored and existing variables win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}
