package api

import (
	"net/http"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HotelHandler struct {
	catalog      queries.CatalogQueries
	availability commands.AvailabilityCommands
	bookings     commands.BookingCommands
}

func NewHotelHandler(catalog queries.CatalogQueries, availability commands.AvailabilityCommands, bookings commands.BookingCommands) *HotelHandler {
	return &HotelHandler{catalog: catalog, availability: availability, bookings: bookings}
}

// @Summary List hotels
// @Description List active hotels with their room types, optionally filtered by location
// @Tags hotels
// @Produce json
// @Param location query string false "Location substring"
// @Success 200 {array} resdto.HotelResponse
// @Router /hotels [get]
func (h *HotelHandler) List(c *gin.Context) {
	views, err := h.catalog.ListHotels(c.Request.Context(), c.Query("location"))
	if err != nil {
		respondError(c, err, "Failed to list hotels")
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelViews(views))
}

// @Summary Check room availability
// @Description Check a room type for the requested stay and quote its price
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param rooms query int false "Rooms requested"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/room-types/{id}/availability [get]
func (h *HotelHandler) Availability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidPath, "Invalid room type id", nil)
		return
	}
	var q reqdto.HotelAvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	req, err := q.ToCommand(id)
	if err != nil {
		respondError(c, err, "Failed to check availability")
		return
	}
	quote, err := h.availability.CheckHotel(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to check availability")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityQuote(quote))
}

// @Summary Book a hotel room
// @Description Reserve rooms for every night of the stay, charge the guest and send a confirmation
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHotelBookingRequest true "Hotel booking request"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /hotels/bookings [post]
func (h *HotelHandler) Book(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var body reqdto.CreateHotelBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}
	req, err := body.ToCommand()
	if err != nil {
		respondError(c, err, "Failed to create hotel booking")
		return
	}
	result, err := h.bookings.CreateHotelBooking(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create hotel booking")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}
