package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the learner's review progress",
	Long: `Deactivates every concept progress record of the learner. The records stay
for history; the next session starts each concept over from the defaults.
The catalog, question bank and answer history are untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("this restarts all progress for %q; re-run with --yes to confirm", appCfg.UserID)
		}

		st, eng, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := eng.Scheduler().Deactivate(cmd.Context(), appCfg.UserID)
		if err != nil {
			return err
		}
		fmt.Printf("Reset %d progress records for %s.\n", n, appCfg.UserID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
