package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/polski/internal/llm"
	"github.com/abhisek/polski/internal/questionbank"
	"github.com/abhisek/polski/internal/store"
)

const timeLayout = "2006-01-02 15:04"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM calls made to generate questions",
	Long: "Every question generation call is recorded with its prompt, reply and token counts. " +
		"These commands list the calls, show one in full, and estimate what generation has cost.",
}

var llmCallsCmd = &cobra.Command{
	Use:     "calls",
	Aliases: []string{"list"},
	Short:   "List recent generation calls, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		failedOnly, _ := cmd.Flags().GetBool("failed")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		calls, err := st.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose})
		if err != nil {
			return fmt.Errorf("query LLM calls: %w", err)
		}
		if failedOnly {
			calls = onlyFailed(calls)
		}
		if len(calls) == 0 {
			fmt.Println("No generation calls recorded.")
			return nil
		}
		writeCalls(os.Stdout, calls)
		return nil
	},
}

var llmShowCmd = &cobra.Command{
	Use:     "show <id>",
	Aliases: []string{"view"},
	Short:   "Show the prompt and reply of one call",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("call id %q is not a number", args[0])
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		call, err := st.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("load LLM call: %w", err)
		}
		if call == nil {
			return fmt.Errorf("no LLM call with id %d", id)
		}
		writeCall(os.Stdout, *call)
		return nil
	},
}

var llmCostCmd = &cobra.Command{
	Use:     "cost",
	Aliases: []string{"stats"},
	Short:   "Estimate generation spend per model and per stored question",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		usage, err := st.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("aggregate LLM usage: %w", err)
		}
		if len(usage) == 0 {
			fmt.Println("No generation calls recorded.")
			return nil
		}
		calls, err := st.EventRepo().QueryLLMEvents(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query LLM calls: %w", err)
		}
		generated, err := st.QuestionRepo().Count(ctx, questionbank.Filter{
			Sources: []questionbank.Source{questionbank.SourceGenerated, questionbank.SourceMomentary},
		})
		if err != nil {
			return fmt.Errorf("count generated questions: %w", err)
		}
		byPurpose, err := st.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("aggregate LLM usage: %w", err)
		}

		report := buildCostReport(usage, calls)
		writeCostReport(os.Stdout, report, generated)
		if other := otherPurposes(byPurpose); len(other) > 0 {
			fmt.Printf("\nIncludes calls made for: %s\n", strings.Join(other, ", "))
		}
		return nil
	},
}

func onlyFailed(calls []store.LLMRequestEventRecord) []store.LLMRequestEventRecord {
	out := calls[:0:0]
	for _, c := range calls {
		if !c.Success {
			out = append(out, c)
		}
	}
	return out
}

func writeCalls(w io.Writer, calls []store.LLMRequestEventRecord) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tMODEL\tTOKENS\tMS\tRESULT")
	for _, c := range calls {
		result := "ok"
		if !c.Success {
			result = "failed: " + truncate(firstLine(c.ErrorMessage), 40)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d/%d\t%d\t%s\n",
			c.ID, c.Timestamp.Local().Format(timeLayout), truncate(c.Model, 28),
			c.InputTokens, c.OutputTokens, c.LatencyMs, result)
	}
	tw.Flush()
}

func writeCall(w io.Writer, c store.LLMRequestEventRecord) {
	fmt.Fprintf(w, "Call %d, %s via %s (%s)\n", c.ID, c.Model, c.Provider, c.Purpose)
	fmt.Fprintf(w, "At %s, %d ms, %d input and %d output tokens",
		c.Timestamp.Local().Format(timeLayout), c.LatencyMs, c.InputTokens, c.OutputTokens)
	if price := llm.LookupCost(c.Model); price != nil {
		fmt.Fprintf(w, ", about %s", formatCost(price.Cost(c.InputTokens, c.OutputTokens)))
	}
	fmt.Fprintln(w)
	if !c.Success {
		fmt.Fprintf(w, "Failed: %s\n", c.ErrorMessage)
	}
	writeBody(w, "Prompt", c.RequestBody)
	writeBody(w, "Reply", c.ResponseBody)
}

func writeBody(w io.Writer, title, body string) {
	fmt.Fprintf(w, "\n== %s ==\n", title)
	if body == "" {
		body = "(not recorded)"
	}
	fmt.Fprintln(w, body)
}

// modelCost is one model's share of generation spend. Cost is zero and
// Priced false when the model is missing from the price table.
type modelCost struct {
	store.LLMUsageStats
	Failed int
	Cost   float64
	Priced bool
}

type costReport struct {
	Models   []modelCost
	Total    float64
	Unpriced []string
}

// buildCostReport prices usage per model and counts the failed calls
// among calls for each model.
func buildCostReport(usage []store.LLMUsageStats, calls []store.LLMRequestEventRecord) costReport {
	failed := make(map[string]int)
	for _, c := range calls {
		if !c.Success {
			failed[c.Model]++
		}
	}
	var r costReport
	for _, u := range usage {
		m := modelCost{LLMUsageStats: u, Failed: failed[u.Model]}
		if price := llm.LookupCost(u.Model); price != nil {
			m.Cost = price.Cost(u.InputTokens, u.OutputTokens)
			m.Priced = true
			r.Total += m.Cost
		} else {
			r.Unpriced = append(r.Unpriced, u.Model)
		}
		r.Models = append(r.Models, m)
	}
	return r
}

func writeCostReport(w io.Writer, r costReport, generated int) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "MODEL\tCALLS\tFAILED\tIN\tOUT\tAVG MS\tCOST\t")
	for _, m := range r.Models {
		cost := "?"
		if m.Priced {
			cost = formatCost(m.Cost)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%s\t\n",
			truncate(m.Model, 32), m.Calls, m.Failed, m.InputTokens, m.OutputTokens, m.AvgLatencyMs, cost)
	}
	tw.Flush()

	total := formatCost(r.Total)
	if len(r.Unpriced) > 0 {
		total += " (no price for " + strings.Join(r.Unpriced, ", ") + ")"
	}
	fmt.Fprintf(w, "\nEstimated total:  %s\n", total)
	fmt.Fprintf(w, "Questions kept:   %d generated\n", generated)
	if generated > 0 && r.Total > 0 {
		fmt.Fprintf(w, "Per question:     %s\n", formatCost(r.Total/float64(generated)))
	}
}

// otherPurposes lists recorded purposes besides question generation.
func otherPurposes(usage []store.LLMUsageStats) []string {
	var out []string
	for _, u := range usage {
		if u.Purpose != llm.PurposeQuestionGen {
			out = append(out, u.Purpose)
		}
	}
	return out
}

// truncate cuts s to n runes; Polish names are not ASCII.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmCallsCmd.Flags().IntP("limit", "n", 20, "Number of calls to list")
	llmCallsCmd.Flags().StringP("purpose", "p", llm.PurposeQuestionGen, "Only calls with this purpose; empty for all")
	llmCallsCmd.Flags().Bool("failed", false, "Only failed calls")

	llmCmd.AddCommand(llmCallsCmd)
	llmCmd.AddCommand(llmShowCmd)
	llmCmd.AddCommand(llmCostCmd)
}
