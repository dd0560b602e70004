package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_Queue(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: usage(10, 5)},
		MockJSON(map[string]int{"b": 2}),
	)

	resp, err := mock.Generate(context.Background(), UserPrompt("", "first"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(resp.Content))
	assert.Equal(t, 15, resp.Usage.TotalTokens)
	assert.Equal(t, StopEnd, resp.StopReason)

	resp, err = mock.Generate(context.Background(), UserPrompt("", "second"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"b":2}`, string(resp.Content))

	_, err = mock.Generate(context.Background(), UserPrompt("", "third"))
	var unavail *ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavail))

	require.Len(t, mock.Calls, 3)
	assert.Equal(t, "second", mock.Calls[1].Messages[0].Content)
}

func TestMockProvider_Handler(t *testing.T) {
	mock := &MockProvider{Handler: func(req Request) MockResponse {
		return MockJSON(map[string]string{"echo": req.Messages[0].Content})
	}}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := mock.Generate(context.Background(), UserPrompt("", "hej"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 8, mock.CallCount())
}

func TestMockProvider_ValidatesSchema(t *testing.T) {
	mock := NewMockProvider(MockJSON(map[string]any{"name": "Ola"}))
	req := UserPrompt("", "x")
	req.Schema = testSchema()

	_, err := mock.Generate(context.Background(), req)
	var inv *ErrInvalidResponse
	assert.True(t, errors.As(err, &inv), "got %T", err)
}

func TestNewProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderMock
	p, err := NewProvider(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())

	cfg.Provider = "llama-farm"
	_, err = NewProvider(context.Background(), cfg, nil, nil)
	assert.Error(t, err)

	cfg.Provider = ProviderAnthropic
	_, err = NewProvider(context.Background(), cfg, nil, nil)
	assert.Error(t, err, "anthropic without a key")
}

func TestPurpose(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, PurposeUnknown, PurposeFrom(ctx))
	assert.Equal(t, PurposeQuestionGen, PurposeFrom(WithPurpose(ctx, PurposeQuestionGen)))
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(&ErrRateLimit{}))
	assert.True(t, Retryable(&ErrProviderUnavailable{}))
	assert.True(t, Retryable(&ErrInvalidResponse{}))
	assert.False(t, Retryable(&ErrMaxTokensExceeded{}))
	assert.False(t, Retryable(context.Canceled))
	assert.False(t, Retryable(&ErrProviderUnavailable{Err: context.DeadlineExceeded}))
}
