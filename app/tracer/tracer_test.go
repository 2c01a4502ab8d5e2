package tracer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/FACorreiaa/go-day-trip-planner/app/observability/metrics"
)

func TestInitTracingAndMetrics(t *testing.T) {
	providers, err := InitTracingAndMetrics("day-trip-planner-test")
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, providers.Shutdown(context.Background()))
	})

	assert.Same(t, providers.Tracer, otel.GetTracerProvider())

	counter, err := otel.Meter("test").Int64Counter("tracer_test_requests_total")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)

	_, span := otel.Tracer("test").Start(context.Background(), "span")
	span.End()
	assert.True(t, span.SpanContext().IsValid())

	rec := httptest.NewRecorder()
	providers.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tracer_test_requests_total")
}

func TestAppMetricsInstruments(t *testing.T) {
	m := metrics.Get()
	require.NotNil(t, m)
	assert.Same(t, m, metrics.Get())
	assert.NotNil(t, m.ItineraryRequestsTotal)
	assert.NotNil(t, m.ItineraryDurationSeconds)
	assert.NotNil(t, m.ProviderErrorsTotal)
	assert.NotNil(t, m.SessionsActive)
}
