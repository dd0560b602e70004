package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/polski/internal/provision"
	"github.com/abhisek/polski/internal/questionbank"
)

var provisionCmd = &cobra.Command{
	Use:     "provision",
	Aliases: []string{"session"},
	Short:   "Select concepts and provision practice questions for them",
	Long: `Without --concept, selects concepts like "select" does and provisions
questions for them. With --concept, provisions questions for exactly those
concepts in the given --mode.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conceptIDs, _ := cmd.Flags().GetStringSlice("concept")
		modeFlag, _ := cmd.Flags().GetString("mode")
		maxQuestions, _ := cmd.Flags().GetInt("questions")
		showAnswers, _ := cmd.Flags().GetBool("answers")

		var mode provision.Mode
		if modeFlag != "" {
			m, ok := provision.ParseMode(modeFlag)
			if !ok {
				return fmt.Errorf("unknown mode %q (want normal, previous or drill)", modeFlag)
			}
			if len(conceptIDs) == 0 {
				return fmt.Errorf("--mode requires --concept")
			}
			mode = m
		}

		req, err := selectRequest(cmd)
		if err != nil {
			return err
		}

		st, eng, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		if len(conceptIDs) > 0 {
			if mode == "" {
				mode = provision.ModeNormal
			}
			qs := eng.ProvisionQuestions(ctx, provision.Request{
				UserID:       appCfg.UserID,
				ConceptIDs:   conceptIDs,
				Mode:         mode,
				MaxQuestions: maxQuestions,
			})
			printQuestions(mode, qs, showAnswers)
			return nil
		}

		s := eng.StartSession(ctx, req, maxQuestions)
		printSelection(s.Selection)
		if !s.Selection.Empty() {
			fmt.Println()
			printQuestions(s.Mode, s.Questions, showAnswers)
		}
		return nil
	},
}

func printQuestions(mode provision.Mode, qs []questionbank.Entry, showAnswers bool) {
	if len(qs) == 0 {
		fmt.Printf("No questions available (%s).\n", mode)
		return
	}
	fmt.Printf("%d questions (%s)\n", len(qs), mode)
	fmt.Println(strings.Repeat("─", 72))
	for i, q := range qs {
		fmt.Printf("%d. [%s, %s, %s] %s\n", i+1, q.Type, q.Difficulty, q.Source, q.Question)
		for j, opt := range q.Options {
			fmt.Printf("     %c) %s\n", 'a'+j, opt)
		}
		if showAnswers {
			fmt.Printf("   answer: %s\n", q.CorrectAnswer)
		}
		fmt.Printf("   id: %s\n", q.ID)
	}
}

func init() {
	addSelectFlags(provisionCmd)
	provisionCmd.Flags().StringSlice("concept", nil, "Provision for these concept ids instead of selecting")
	provisionCmd.Flags().String("mode", "", "Provisioning mode with --concept: normal, previous or drill")
	provisionCmd.Flags().IntP("questions", "q", 0, "Maximum questions (0 uses the configured default)")
	provisionCmd.Flags().Bool("answers", false, "Print the correct answers")
}
