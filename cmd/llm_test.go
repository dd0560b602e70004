package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/polski/internal/llm"
	"github.com/abhisek/polski/internal/store"
)

func llmCall(id int, model string, ok bool, errMsg string) store.LLMRequestEventRecord {
	return store.LLMRequestEventRecord{
		ID:        id,
		Timestamp: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		LLMRequestEventData: store.LLMRequestEventData{
			Provider:     "anthropic",
			Model:        model,
			Purpose:      llm.PurposeQuestionGen,
			InputTokens:  1000,
			OutputTokens: 200,
			LatencyMs:    850,
			Success:      ok,
			ErrorMessage: errMsg,
		},
	}
}

func TestBuildCostReport(t *testing.T) {
	usage := []store.LLMUsageStats{
		{Model: "claude-haiku-4-5", Calls: 3, InputTokens: 1_000_000, OutputTokens: 200_000},
		{Model: "local-llama", Calls: 1, InputTokens: 500, OutputTokens: 50},
	}
	calls := []store.LLMRequestEventRecord{
		llmCall(1, "claude-haiku-4-5", true, ""),
		llmCall(2, "claude-haiku-4-5", false, "rate limited"),
		llmCall(3, "local-llama", true, ""),
	}

	r := buildCostReport(usage, calls)

	require.Len(t, r.Models, 2)
	haiku := r.Models[0]
	assert.True(t, haiku.Priced)
	assert.Equal(t, 1, haiku.Failed)
	assert.InDelta(t, 2.0, haiku.Cost, 1e-9, "1M in at $1 plus 200k out at $5")
	assert.False(t, r.Models[1].Priced)
	assert.Equal(t, []string{"local-llama"}, r.Unpriced)
	assert.InDelta(t, 2.0, r.Total, 1e-9)
}

func TestWriteCostReport_PerQuestion(t *testing.T) {
	r := costReport{
		Models: []modelCost{{LLMUsageStats: store.LLMUsageStats{Model: "gpt-4o-mini", Calls: 2}, Cost: 0.5, Priced: true}},
		Total:  0.5,
	}

	var buf bytes.Buffer
	writeCostReport(&buf, r, 50)

	out := buf.String()
	assert.Contains(t, out, "gpt-4o-mini")
	assert.Contains(t, out, "Estimated total:  $0.50")
	assert.Contains(t, out, "Questions kept:   50 generated")
	assert.Contains(t, out, "Per question:     $0.0100")
}

func TestWriteCostReport_NoQuestionsSkipsPerQuestion(t *testing.T) {
	var buf bytes.Buffer
	writeCostReport(&buf, costReport{Total: 0.2, Unpriced: []string{"local-llama"}}, 0)

	assert.Contains(t, buf.String(), "(no price for local-llama)")
	assert.NotContains(t, buf.String(), "Per question")
}

func TestWriteCalls_ShowsFirstErrorLine(t *testing.T) {
	var buf bytes.Buffer
	writeCalls(&buf, []store.LLMRequestEventRecord{
		llmCall(7, "claude-haiku-4-5", true, ""),
		llmCall(8, "claude-haiku-4-5", false, "schema mismatch\nfull body follows"),
	})

	out := buf.String()
	assert.Contains(t, out, "1000/200")
	assert.Contains(t, out, "failed: schema mismatch")
	assert.NotContains(t, out, "full body follows")
}

func TestWriteCall_MissingBodies(t *testing.T) {
	var buf bytes.Buffer
	writeCall(&buf, llmCall(3, "claude-haiku-4-5", false, "timeout"))

	out := buf.String()
	assert.Contains(t, out, "Call 3, claude-haiku-4-5 via anthropic (question-gen)")
	assert.Contains(t, out, "Failed: timeout")
	assert.Contains(t, out, "== Prompt ==\n(not recorded)")
	assert.Contains(t, out, "about $")
}

func TestOnlyFailed(t *testing.T) {
	calls := []store.LLMRequestEventRecord{
		llmCall(1, "m", true, ""),
		llmCall(2, "m", false, "boom"),
	}

	got := onlyFailed(calls)

	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
	assert.Len(t, calls, 2, "input untouched")
}

func TestOtherPurposes(t *testing.T) {
	got := otherPurposes([]store.LLMUsageStats{{Purpose: llm.PurposeQuestionGen}, {Purpose: llm.PurposeUnknown}})
	assert.Equal(t, []string{llm.PurposeUnknown}, got)
}

func TestTruncate_Runes(t *testing.T) {
	assert.Equal(t, "Dopełn", truncate("Dopełniacz", 6))
	assert.Equal(t, "kot", truncate("kot", 6))
}
