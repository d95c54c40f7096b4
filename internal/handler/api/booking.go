package api

import (
	"net/http"

	"travel-booking/internal/domain/booking"
	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	q queries.BookingQueries
}

func NewBookingHandler(q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{q: q}
}

// @Summary List my bookings
// @Description List the current user's bookings of every kind, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param after query string false "Cursor from next_cursor"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	var cursor *queries.Cursor
	if q.After != "" {
		cursor = &queries.Cursor{After: q.After}
	}
	rows, next, err := h.q.ListByUser(c.Request.Context(), actor.ID, cursor, q.Limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		respondError(c, err, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(rows, next))
}

// @Summary Get booking
// @Description Get a booking by kind and reference number; customers only see their own bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param kind path string true "hotel, car or flight"
// @Param reference path string true "Reference number"
// @Success 200 {object} resdto.BookingDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{kind}/{reference} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var path reqdto.BookingPath
	if err := c.ShouldBindUri(&path); err != nil {
		respondBindError(c, err)
		return
	}
	view, err := h.q.GetByReference(c.Request.Context(), actor, booking.Kind(path.Kind), path.Reference)
	if err != nil {
		respondError(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingDetail(view))
}
