package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepo_LLMRequests(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	calls := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true, RequestBody: "[user]\nhi", ResponseBody: "{}"},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "question-gen", InputTokens: 300, OutputTokens: 70, LatencyMs: 400, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "briefing", InputTokens: 10, OutputTokens: 5, LatencyMs: 90, Success: false, ErrorMessage: "rate limited"},
	}
	for _, c := range calls {
		require.NoError(t, events.AppendLLMRequest(ctx, c))
	}

	all, err := events.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "gemini", all[0].Provider, "newest first")
	assert.Greater(t, all[0].Sequence, all[1].Sequence)

	limited, err := events.QueryLLMEvents(ctx, QueryOpts{Limit: 1, Purpose: "question-gen"})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, 300, limited[0].InputTokens)

	after, err := events.QueryLLMEvents(ctx, QueryOpts{After: all[1].Sequence})
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "briefing", after[0].Purpose)

	oldest := all[2]
	got, err := events.GetLLMEvent(ctx, oldest.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "[user]\nhi", got.RequestBody)
	assert.Equal(t, "{}", got.ResponseBody)

	missing, err := events.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEventRepo_LLMUsage(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	for _, c := range []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "question-gen", InputTokens: 100, OutputTokens: 10, LatencyMs: 100, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "question-gen", InputTokens: 200, OutputTokens: 20, LatencyMs: 300, Success: true},
		{Provider: "openai", Model: "gpt-4.1", Purpose: "briefing", InputTokens: 50, OutputTokens: 5, LatencyMs: 50, Success: true},
	} {
		require.NoError(t, events.AppendLLMRequest(ctx, c))
	}

	byPurpose, err := events.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, LLMUsageStats{Purpose: "question-gen", Calls: 2, InputTokens: 300, OutputTokens: 30, AvgLatencyMs: 200}, byPurpose[0])

	byModel, err := events.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "gpt-4o-mini", byModel[0].Model)
	assert.Equal(t, 2, byModel[0].Calls)
	assert.Equal(t, "gpt-4.1", byModel[1].Model)
}

func TestEventRepo_Answers(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, events.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "question-gen", Success: true}))
	require.NoError(t, events.AppendAnswerEvent(ctx, AnswerEventData{UserID: "u1", QuestionID: "q-1", ConceptIDs: []string{"c-kot"}, Mode: "NORMAL", Correct: true, ResponseTimeMs: 4000}))
	require.NoError(t, events.AppendAnswerEvent(ctx, AnswerEventData{UserID: "u1", QuestionID: "q-2", ConceptIDs: []string{"c-kot", "c-dom"}, Mode: "DRILL", Correct: false, ResponseTimeMs: 9000}))
	require.NoError(t, events.AppendAnswerEvent(ctx, AnswerEventData{UserID: "u2", QuestionID: "q-1", Correct: true}))

	answers, err := events.QueryAnswerEvents(ctx, "u1", QueryOpts{})
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, "q-2", answers[0].QuestionID)
	assert.Equal(t, []string{"c-kot", "c-dom"}, answers[0].ConceptIDs)
	assert.Equal(t, int64(3), answers[0].Sequence, "answers share the sequence with LLM events")

	tally, err := events.AnswerTally(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, AnswerTally{Total: 2, Correct: 1}, tally)
	assert.InDelta(t, 0.5, tally.Accuracy(), 1e-9)

	empty, err := events.AnswerTally(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, empty.Accuracy())
}
