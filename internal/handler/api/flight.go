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

type FlightHandler struct {
	catalog      queries.CatalogQueries
	availability commands.AvailabilityCommands
	bookings     commands.BookingCommands
}

func NewFlightHandler(catalog queries.CatalogQueries, availability commands.AvailabilityCommands, bookings commands.BookingCommands) *FlightHandler {
	return &FlightHandler{catalog: catalog, availability: availability, bookings: bookings}
}

// @Summary Search flights
// @Description Find flights by route and date with enough free outbound seats, ordered by departure
// @Tags flights
// @Produce json
// @Param origin query string true "Origin substring"
// @Param destination query string true "Destination substring"
// @Param departure_date query string true "Departure date (YYYY-MM-DD)"
// @Param return_date query string false "Return departure date (YYYY-MM-DD)"
// @Param passengers query int false "Passengers (1-7)"
// @Param limit query int false "Max results"
// @Success 200 {array} resdto.FlightResponse
// @Failure 400 {object} httperr.Response
// @Router /flights/search [get]
func (h *FlightHandler) Search(c *gin.Context) {
	var q reqdto.FlightSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	search, err := q.ToSearch()
	if err != nil {
		respondError(c, err, "Failed to search flights")
		return
	}
	views, err := h.catalog.SearchFlights(c.Request.Context(), search)
	if err != nil {
		respondError(c, err, "Failed to search flights")
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlightViews(views))
}

// @Summary Check flight availability
// @Description Check free seats for the passenger count and quote the fare
// @Tags flights
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flight ID"
// @Param passengers query int false "Passengers"
// @Param round_trip query bool false "Include the return leg"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /flights/{id}/availability [get]
func (h *FlightHandler) Availability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidPath, "Invalid flight id", nil)
		return
	}
	var q reqdto.FlightAvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	quote, err := h.availability.CheckFlight(c.Request.Context(), q.ToCommand(id))
	if err != nil {
		respondError(c, err, "Failed to check availability")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityQuote(quote))
}

// @Summary Book a flight
// @Description Reserve seats for every passenger, charge the fare with luggage fees and send a confirmation
// @Tags flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFlightBookingRequest true "Flight booking request"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /flights/bookings [post]
func (h *FlightHandler) Book(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var body reqdto.CreateFlightBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}
	req, err := body.ToCommand()
	if err != nil {
		respondError(c, err, "Failed to create flight booking")
		return
	}
	result, err := h.bookings.CreateFlightBooking(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create flight booking")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}
