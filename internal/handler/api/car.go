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

type CarHandler struct {
	catalog      queries.CatalogQueries
	availability commands.AvailabilityCommands
	bookings     commands.BookingCommands
}

func NewCarHandler(catalog queries.CatalogQueries, availability commands.AvailabilityCommands, bookings commands.BookingCommands) *CarHandler {
	return &CarHandler{catalog: catalog, availability: availability, bookings: bookings}
}

// @Summary List cars
// @Tags cars
// @Produce json
// @Param location query string false "Location substring"
// @Success 200 {array} resdto.CarResponse
// @Router /cars [get]
func (h *CarHandler) List(c *gin.Context) {
	views, err := h.catalog.ListCars(c.Request.Context(), c.Query("location"))
	if err != nil {
		respondError(c, err, "Failed to list cars")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCarViews(views))
}

// @Summary Check car availability
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Param pickup_date query string true "Pickup date (YYYY-MM-DD)"
// @Param dropoff_date query string true "Dropoff date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cars/{id}/availability [get]
func (h *CarHandler) Availability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidPath, "Invalid car id", nil)
		return
	}
	var q reqdto.CarAvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	req, err := q.ToCommand(id)
	if err != nil {
		respondError(c, err, "Failed to check availability")
		return
	}
	quote, err := h.availability.CheckCar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to check availability")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityQuote(quote))
}

// @Summary Rent a car
// @Description Reserve the car for every day of the rental, charge the driver and send a confirmation
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCarBookingRequest true "Car booking request"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /cars/bookings [post]
func (h *CarHandler) Book(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var body reqdto.CreateCarBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}
	req, err := body.ToCommand()
	if err != nil {
		respondError(c, err, "Failed to create car booking")
		return
	}
	result, err := h.bookings.CreateCarBooking(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create car booking")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}
