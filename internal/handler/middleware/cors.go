package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"travel-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Browsers may continue a frontend trace into the booking API.
var traceHeaders = []string{"traceparent", "tracestate"}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowHeaders := slices.Clone(cfg.AllowHeaders)
	for _, h := range traceHeaders {
		if !slices.ContainsFunc(allowHeaders, func(v string) bool { return http.CanonicalHeaderKey(v) == http.CanonicalHeaderKey(h) }) {
			allowHeaders = append(allowHeaders, h)
		}
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "allow_headers", allowHeaders)
	return cors.New(corsCfg)
}
