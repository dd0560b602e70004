package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/polski/internal/practice"
	"github.com/abhisek/polski/internal/selector"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Show the concepts the next session would practice",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := selectRequest(cmd)
		if err != nil {
			return err
		}

		st, eng, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		printSelection(eng.SelectConcepts(cmd.Context(), req))
		return nil
	},
}

// addSelectFlags registers the selection flags shared by select and provision.
func addSelectFlags(cmd *cobra.Command) {
	cmd.Flags().String("course", "", "Select from this course's concepts")
	cmd.Flags().String("drill", "", "Drill mode: weakness, course, group or groups")
	cmd.Flags().StringSlice("group", nil, "Concept group id for group drills (repeatable)")
	cmd.Flags().IntP("max", "n", 0, "Maximum concepts (0 uses the configured default)")
}

func selectRequest(cmd *cobra.Command) (practice.SelectRequest, error) {
	course, _ := cmd.Flags().GetString("course")
	drill, _ := cmd.Flags().GetString("drill")
	groups, _ := cmd.Flags().GetStringSlice("group")
	limit, _ := cmd.Flags().GetInt("max")

	req := practice.SelectRequest{
		UserID:   appCfg.UserID,
		CourseID: course,
		GroupIDs: groups,
		Max:      limit,
	}
	if drill != "" {
		mode, ok := selector.ParseDrillMode(drill)
		if !ok {
			return req, fmt.Errorf("unknown drill mode %q (want weakness, course, group or groups)", drill)
		}
		req.Drill = mode
	}
	return req, nil
}

func printSelection(sel selector.Selection) {
	fmt.Println(sel.Rationale)
	if sel.Empty() {
		return
	}
	fmt.Println()
	fmt.Printf("%-3s  %-36s  %-32s  %-10s  %-5s  %8s\n", "#", "ID", "Name", "Category", "Level", "Priority")
	fmt.Println(strings.Repeat("─", 104))
	for i, c := range sel.Concepts {
		fmt.Printf("%-3d  %-36s  %-32s  %-10s  %-5s  %8.2f\n",
			i+1, c.ID, truncate(c.Name, 32), c.Category, c.Difficulty, sel.Priorities[c.ID])
	}
	if len(sel.Groups) > 0 {
		fmt.Println()
		for _, g := range sel.Groups {
			fmt.Printf("Group %s: %d selected\n", g.Group.Name, len(g.ConceptIDs))
		}
	}
}

func init() {
	addSelectFlags(selectCmd)
}
