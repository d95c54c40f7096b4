//go:build unit

package bootstrap_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-booking/cmd/bootstrap"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx/fxtest"
)

func restoreOtelGlobals(t *testing.T) {
	t.Helper()
	prevTP := otel.GetTracerProvider()
	prevProp := otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
}

func TestBuildTracerProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.TracingConfig
		wantErr string
	}{
		{name: "none", cfg: config.TracingConfig{Exporter: "none", ServiceName: "svc", SampleRatio: 1}},
		{name: "empty exporter", cfg: config.TracingConfig{ServiceName: "svc", SampleRatio: 0.5}},
		{name: "stdout", cfg: config.TracingConfig{Exporter: "stdout", ServiceName: "svc", SampleRatio: 1}},
		{name: "unknown exporter", cfg: config.TracingConfig{Exporter: "jaeger", SampleRatio: 1}, wantErr: `unknown tracing exporter "jaeger"`},
		{name: "ratio above one", cfg: config.TracingConfig{Exporter: "none", SampleRatio: 1.5}, wantErr: "outside [0, 1]"},
		{name: "negative ratio", cfg: config.TracingConfig{Exporter: "none", SampleRatio: -0.1}, wantErr: "outside [0, 1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp, err := bootstrap.BuildTracerProvider(tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, tp)
				return
			}
			require.NoError(t, err)
			require.NoError(t, tp.Shutdown(t.Context()))
		})
	}
}

func TestNewTracerProvider_InstallsGlobals(t *testing.T) {
	restoreOtelGlobals(t)
	lc := fxtest.NewLifecycle(t)

	tp, err := bootstrap.NewTracerProvider(lc, config.NewTestConfig(), slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	lc.RequireStart()

	assert.Same(t, tp, otel.GetTracerProvider())

	ctx, span := otel.Tracer("test").Start(t.Context(), "charge")
	header := http.Header{}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(header))
	span.End()

	assert.Regexp(t, `^00-`+span.SpanContext().TraceID().String()+`-[0-9a-f]{16}-01$`, header.Get("traceparent"))

	lc.RequireStop()
}

func TestTracingMiddleware_ContinuesIncomingTrace(t *testing.T) {
	restoreOtelGlobals(t)
	gin.SetMode(gin.TestMode)

	recorder := tracetest.NewSpanRecorder()
	tp, err := bootstrap.BuildTracerProvider(config.NewTestConfig().Tracing, sdktrace.WithSpanProcessor(recorder))
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	engine := gin.New()
	engine.Use(middleware.TracingMiddleware())
	engine.GET("/api/hotels/room-types/:id/availability", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	engine.GET("/api/broken", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	const parentTrace = "4bf92f3577b34da6a3ce929d0e0e4736"
	req := httptest.NewRequest(http.MethodGet, "/api/hotels/room-types/42/availability", nil)
	req.Header.Set("traceparent", "00-"+parentTrace+"-00f067aa0ba902b7-01")
	engine.ServeHTTP(httptest.NewRecorder(), req)
	engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/broken", nil))

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	ok := spans[0]
	assert.Equal(t, "GET /api/hotels/room-types/:id/availability", ok.Name())
	assert.Equal(t, trace.SpanKindServer, ok.SpanKind())
	assert.Equal(t, parentTrace, ok.SpanContext().TraceID().String())
	assert.Equal(t, "00f067aa0ba902b7", ok.Parent().SpanID().String())
	assert.Contains(t, ok.Attributes(), attribute.Int("http.response.status_code", http.StatusNoContent))

	broken := spans[1]
	assert.False(t, broken.Parent().IsValid())
	assert.Equal(t, "Error", broken.Status().Code.String())
}
