package api

import (
	"log/slog"
	"net/http"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	errUnauthenticated = errs.New("authenticated user missing from context")
	errInvalidPath     = errs.New("invalid path parameter")
)

// respondError maps the error taxonomy onto the HTTP envelope.
func respondError(c *gin.Context, err error, fallback string) {
	var verr *booking.ValidationError
	var aerr *booking.AvailabilityError
	switch {
	case errs.As(err, &aerr):
		httperr.AbortWithError(c, http.StatusConflict, err, "Requested booking is not available", aerr.Fields)
	case errs.As(err, &verr):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", map[string]string{verr.Field: verr.Message})
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", err.Error())
	case errs.Is(err, errs.ErrPaymentProvider):
		httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment could not be processed", nil)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	default:
		slog.ErrorContext(c.Request.Context(), fallback, "error", err.Error(), "stack", errs.ExtractStackLines(err, 5))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// respondBindError reports malformed input; field detail comes from validator tags.
func respondBindError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errs.As(err, &ve) {
		detail := make(map[string]string, len(ve))
		for _, fe := range ve {
			detail[fe.Field()] = fe.Tag()
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", detail)
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}
