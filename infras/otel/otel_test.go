package otel_test

import (
	"context"
	"errors"
	"testing"

	"tourbook/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	ot := otel.NewWithProvider(trace.NewTracerProvider(trace.WithSpanProcessor(recorder)))

	_, scope := ot.NewScope(context.Background(), "service", "service.Create")
	scope.SetAttributes(map[string]any{
		"entity": "cliente",
		"count":  3,
		"vip":    true,
		"tags":   []string{"a", "b"},
	})
	scope.AddEvent("validated")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("duplicate id"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "service.Create", span.Name())
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "duplicate id", span.Status().Description)
	assert.Len(t, span.Attributes(), 4)

	require.NoError(t, ot.Shutdown(context.Background()))
}
