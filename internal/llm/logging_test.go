package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/polski/internal/store"
)

type recordedEvents struct {
	events []store.LLMRequestEventData
	err    error
}

func (r *recordedEvents) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	rec := &recordedEvents{}
	mock := NewMockProvider(MockResponse{Content: []byte(`{"name":"Ola","age":3}`), Usage: usage(100, 20)})
	p := WithLogging(mock, ProviderMock, rec, nil)

	req := UserPrompt("You are a Polish tutor.", "Make one question.")
	req.Schema = testSchema()
	_, err := p.Generate(WithPurpose(context.Background(), PurposeQuestionGen), req)
	require.NoError(t, err)

	require.Len(t, rec.events, 1)
	ev := rec.events[0]
	assert.Equal(t, ProviderMock, ev.Provider)
	assert.Equal(t, "mock", ev.Model)
	assert.Equal(t, PurposeQuestionGen, ev.Purpose)
	assert.Equal(t, 100, ev.InputTokens)
	assert.Equal(t, 20, ev.OutputTokens)
	assert.True(t, ev.Success)
	assert.Empty(t, ev.ErrorMessage)
	assert.Contains(t, ev.RequestBody, "[system]\nYou are a Polish tutor.")
	assert.Contains(t, ev.RequestBody, "[schema: test-learner]")
	assert.JSONEq(t, `{"name":"Ola","age":3}`, ev.ResponseBody)
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	rec := &recordedEvents{}
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}})
	p := WithLogging(mock, ProviderAnthropic, rec, nil)

	_, err := p.Generate(context.Background(), UserPrompt("", "x"))
	require.Error(t, err)

	require.Len(t, rec.events, 1)
	assert.False(t, rec.events[0].Success)
	assert.Equal(t, PurposeUnknown, rec.events[0].Purpose)
	assert.True(t, strings.Contains(rec.events[0].ErrorMessage, "rate limited"))
}

func TestLoggingProvider_RecorderErrorIgnored(t *testing.T) {
	rec := &recordedEvents{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(okResponse), ProviderMock, rec, nil)

	_, err := p.Generate(context.Background(), UserPrompt("", "x"))
	assert.NoError(t, err)
}

func TestLoggingProvider_NilRecorder(t *testing.T) {
	p := WithLogging(NewMockProvider(okResponse), ProviderMock, nil, nil)
	_, err := p.Generate(context.Background(), UserPrompt("", "x"))
	assert.NoError(t, err)
}
