// Package httperr builds the JSON error envelope every endpoint answers with.
package httperr

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// Response is the envelope. Detail carries per-field reasons, for example
// the dates a room type is sold out on.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail  any    `json:"detail,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

// New stamps the envelope with the trace id of ctx, when one is recording.
func New(ctx context.Context, status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		resp.TraceID = sc.TraceID().String()
	}
	return resp
}

// AbortWithError keeps err on the gin context for the logging middleware and
// writes the public envelope.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := New(c.Request.Context(), status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
