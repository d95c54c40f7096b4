//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/handler/middleware"
	"travel-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newErrorRouter(t *testing.T) (*gin.Engine, *tracetest.SpanRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	prevTP, prevProp := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})

	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.TracingMiddleware(), middleware.ErrorHandler())
	r.GET("/sold-out", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errors.New("no rooms"), "Requested booking is not available",
			map[string][]string{"dates": {"Only 0 rooms left on 2030-06-01"}})
	})
	r.GET("/private-error", func(c *gin.Context) {
		_ = c.Error(errors.New("pool exhausted"))
	})
	r.GET("/panic", func(*gin.Context) {
		panic("int32 overflow")
	})
	return r, recorder
}

func TestErrorHandler(t *testing.T) {
	const traceparent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"

	t.Run("public error keeps its envelope and trace id", func(t *testing.T) {
		r, _ := newErrorRouter(t)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/sold-out", nil, "", httptest.WithHeader("traceparent", traceparent))

		env := httptest.AssertErrorResponse(t, rec, http.StatusConflict, "not available")
		httptest.AssertReason(t, env, "dates", "Only 0 rooms left on 2030-06-01")
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", env.TraceID)
	})

	t.Run("private error without a body becomes a 500 envelope", func(t *testing.T) {
		r, _ := newErrorRouter(t)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private-error", nil, "")

		env := httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		assert.NotEmpty(t, env.TraceID)
		assert.NotContains(t, rec.Body.String(), "pool exhausted")
	})
}

func TestCustomRecovery(t *testing.T) {
	r, recorder := newErrorRouter(t)

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")

	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	spans := recorder.Ended()
	if assert.Len(t, spans, 1) {
		assert.Equal(t, "Error", spans[0].Status().Code.String())
	}
}
