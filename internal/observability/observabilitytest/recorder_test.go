package observabilitytest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/codes"

	"github.com/abhisek/polski/internal/observability"
)

func TestRecord_CapturesEndStatus(t *testing.T) {
	rec := Record(t)

	_, ok := observability.Start(context.Background(), "ok")
	observability.End(ok, nil)
	_, failed := observability.Start(context.Background(), "failed")
	observability.End(failed, errors.New("db down"))

	assert.Equal(t, codes.Unset, Ended(t, rec, "ok").Status().Code)
	st := Ended(t, rec, "failed").Status()
	assert.Equal(t, codes.Error, st.Code)
	assert.Equal(t, "db down", st.Description)
	assert.Len(t, Ended(t, rec, "failed").Events(), 1, "error recorded as an event")
}
