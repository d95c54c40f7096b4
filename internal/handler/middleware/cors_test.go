//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/config"
	"travel-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "TraceParent"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg))
	r.POST("/api/hotels/bookings", func(c *gin.Context) { c.Status(http.StatusCreated) })

	t.Run("preflight allows the trace headers", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodOptions, "/api/hotels/bookings", nil, "",
			httptest.WithHeader("Origin", "http://localhost:3000"),
			httptest.WithHeader("Access-Control-Request-Method", http.MethodPost),
			httptest.WithHeader("Access-Control-Request-Headers", "content-type,traceparent,tracestate"))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		httptest.AssertHeaderLists(t, rec, "Access-Control-Allow-Headers", "Authorization", "traceparent", "tracestate")
	})

	t.Run("config slice is left untouched", func(t *testing.T) {
		assert.Equal(t, []string{"Origin", "Content-Type", "Authorization", "TraceParent"}, cfg.AllowHeaders)
	})

	t.Run("unknown origin is refused", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodOptions, "/api/hotels/bookings", nil, "",
			httptest.WithHeader("Origin", "https://evil.example"),
			httptest.WithHeader("Access-Control-Request-Method", http.MethodPost))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
