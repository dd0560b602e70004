package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/polski/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		recent, _ := cmd.Flags().GetInt("recent")

		st, eng, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		s := eng.Stats(ctx, appCfg.UserID)

		fmt.Printf("Learner:          %s\n", appCfg.UserID)
		fmt.Printf("Active concepts:  %d\n", s.ActiveConcepts)
		fmt.Printf("Tracked:          %d (%d practiced)\n", s.TrackedConcepts, s.PracticedConcepts)
		fmt.Printf("Mastered:         %d\n", s.MasteredConcepts)
		fmt.Printf("Average mastery:  %.0f%%\n", s.AverageMastery*100)
		fmt.Printf("Due today:        %d\n", s.DueToday)
		fmt.Printf("Overdue:          %d\n", s.Overdue)
		fmt.Printf("Question bank:    %d\n", s.QuestionBankSize)
		fmt.Printf("Answers:          %d (%.0f%% correct)\n", s.Answers, s.Accuracy*100)

		if recent <= 0 {
			return nil
		}
		events, err := st.EventRepo().QueryAnswerEvents(ctx, appCfg.UserID, store.QueryOpts{Limit: recent})
		if err != nil {
			return fmt.Errorf("query answers: %w", err)
		}
		if len(events) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Printf("%-19s  %-36s  %-8s  %7s  %s\n", "Timestamp", "Question", "Mode", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 84))
		for _, e := range events {
			ok := "✓"
			if !e.Correct {
				ok = "✗"
			}
			fmt.Printf("%-19s  %-36s  %-8s  %7d  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(e.QuestionID, 36), e.Mode, e.ResponseTimeMs, ok)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("recent", "r", 0, "Also list this many recent answers")
}
