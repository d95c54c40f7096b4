//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestNew(t *testing.T) {
	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)
	traced := trace.ContextWithSpanContext(t.Context(), trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID}))

	resp := httperr.New(traced, http.StatusPaymentRequired, "Payment could not be processed", nil)
	assert.Equal(t, http.StatusPaymentRequired, resp.Status)
	assert.Equal(t, "Payment could not be processed", resp.Error.Message)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", resp.TraceID)

	assert.Empty(t, httperr.New(t.Context(), http.StatusNotFound, "Not found", nil).TraceID)
}

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("writes the envelope and keeps the cause", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/cars/bookings", nil)
		cause := errors.New("unit taken")

		httperr.AbortWithError(c, http.StatusConflict, cause, "Requested booking is not available",
			map[string][]string{"car": {"Car unavailable on 2030-06-01"}})

		assert.True(t, c.IsAborted())
		require.Len(t, c.Errors, 1)
		assert.ErrorIs(t, c.Errors[0].Err, cause)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, map[string]any{"message": "Requested booking is not available"}, body["error"])
		assert.Equal(t, map[string]any{"car": []any{"Car unavailable on 2030-06-01"}}, body["detail"])
		assert.NotContains(t, body, "trace_id")
	})

	t.Run("nil error panics", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Panics(t, func() { httperr.AbortWithError(c, http.StatusInternalServerError, nil, "x", nil) })
	})
}
