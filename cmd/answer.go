package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/polski/internal/practice"
	"github.com/abhisek/polski/internal/provision"
)

var answerCmd = &cobra.Command{
	Use:   "answer <question-id>",
	Short: "Record the learner's answer to a question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		correct, _ := cmd.Flags().GetBool("correct")
		timeMs, _ := cmd.Flags().GetInt("time-ms")
		rating, _ := cmd.Flags().GetInt("rating")
		modeFlag, _ := cmd.Flags().GetString("mode")

		if rating < 0 || rating > 5 {
			return fmt.Errorf("--rating must be between 1 and 5 (0 for none)")
		}
		mode, ok := provision.ParseMode(modeFlag)
		if !ok {
			return fmt.Errorf("unknown mode %q", modeFlag)
		}

		st, eng, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		res, err := eng.RecordAnswer(cmd.Context(), practice.Answer{
			UserID:           appCfg.UserID,
			QuestionID:       args[0],
			Correct:          correct,
			ResponseTimeMs:   timeMs,
			DifficultyRating: rating,
			Mode:             mode,
		})
		if err != nil {
			return err
		}

		ids := make([]string, 0, len(res.Progress))
		for id := range res.Progress {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Printf("%-36s  %7s  %5s  %8s  %s\n", "Concept", "Mastery", "Ease", "Interval", "Next review")
		fmt.Println(strings.Repeat("─", 80))
		for _, id := range ids {
			p := res.Progress[id]
			fmt.Printf("%-36s  %7.2f  %5.2f  %7dd  %s\n",
				id, p.MasteryLevel, p.EasinessFactor, p.IntervalDays,
				p.NextReview.Local().Format("2006-01-02"))
		}

		if !res.OK() {
			var failed []string
			if res.QuestionErr != nil {
				failed = append(failed, "question performance")
			}
			for id := range res.ConceptErrs {
				failed = append(failed, id)
			}
			sort.Strings(failed)
			return fmt.Errorf("answer partially recorded, failed: %s", strings.Join(failed, ", "))
		}
		return nil
	},
}

func init() {
	answerCmd.Flags().Bool("correct", false, "The answer was correct")
	answerCmd.Flags().Int("time-ms", 0, "Response time in milliseconds")
	answerCmd.Flags().Int("rating", 0, "Self-rated difficulty 1 (easy) to 5 (hard), 0 for none")
	answerCmd.Flags().String("mode", string(provision.ModeNormal), "Mode the question was served in")
}
