package middleware

import (
	"log/slog"
	"net/http"

	"travel-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the envelope of the most recent public error when the
// handler aborted without a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.New(c.Request.Context(), http.StatusInternalServerError, "Internal server error", nil))
	}
}

// CustomRecovery turns a panic into a 500 envelope. It must be the outermost
// middleware.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				ctx := c.Request.Context()
				slog.ErrorContext(ctx, "recovered from panic",
					"error", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.New(ctx, http.StatusInternalServerError, "Internal server error", nil))
			}
		}()
		c.Next()
	}
}
