package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/polski/internal/briefing"
	"github.com/abhisek/polski/internal/config"
	"github.com/abhisek/polski/internal/llm"
	"github.com/abhisek/polski/internal/logger"
	"github.com/abhisek/polski/internal/observability"
	"github.com/abhisek/polski/internal/practice"
	"github.com/abhisek/polski/internal/questiongen"
	"github.com/abhisek/polski/internal/store"
)

var (
	appCfg   config.Config
	appLog   = logger.Nop()
	shutdown = func(context.Context) error { return nil }
)

var rootCmd = &cobra.Command{
	Use:          "polski",
	Short:        "Adaptive Polish practice engine",
	Long:         "polski schedules Polish grammar and vocabulary reviews and serves practice questions for them.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if u, _ := cmd.Flags().GetString("user"); u != "" {
			cfg.UserID = u
		}
		appCfg = cfg

		log, err := logger.New(cfg.LogMode)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		appLog = log
		shutdown = observability.InitTracing(appLog, "polski")
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		defer appLog.Sync()
		return shutdown(context.Background())
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides POLSKI_DB and db_path)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides POLSKI_CONFIG)")
	rootCmd.PersistentFlags().StringP("user", "u", "", "Learner id (overrides POLSKI_USER and user_id)")

	rootCmd.AddCommand(conceptCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(provisionCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if appCfg.DBPath != "" {
		return appCfg.DBPath, store.EnsureDir(appCfg.DBPath)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// openEngine opens the store and builds the practice engine over it.
// Question generation is enabled only when an LLM provider is configured.
func openEngine(cmd *cobra.Command) (*store.Store, *practice.Engine, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}

	var gen questiongen.Generator
	if llmCfg, ok := appCfg.ResolveLLM(); ok {
		provider, err := llm.NewProvider(cmd.Context(), llmCfg, st.EventRepo(), appLog)
		if err != nil {
			appLog.Warn("LLM provider unavailable, serving stored questions only", "error", err)
		} else {
			briefer := briefing.NewBuilder(st.ConceptRepo(), st.GroupRepo(), appCfg.Briefing, appLog)
			gen = questiongen.New(provider, briefer, appCfg.QuestionGen(), appLog)
		}
	} else {
		appLog.Debug("no LLM provider configured, question generation disabled")
	}

	eng := practice.New(practice.Repos{
		Concepts:  st.ConceptRepo(),
		Groups:    st.GroupRepo(),
		Courses:   st.CourseRepo(),
		Progress:  st.ProgressRepo(),
		Questions: st.QuestionRepo(),
		Events:    st.EventRepo(),
	}, gen, appCfg.Engine, appLog)
	return st, eng, nil
}
