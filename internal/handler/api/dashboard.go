package api

import (
	"net/http"

	"travel-booking/internal/domain/booking"
	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DashboardHandler serves staff-only endpoints; the router enforces the role.
type DashboardHandler struct {
	overview queries.DashboardQueries
	bookings queries.BookingQueries
	admin    commands.BookingAdminCommands
	catalog  commands.CatalogCommands
}

func NewDashboardHandler(
	overview queries.DashboardQueries,
	bookings queries.BookingQueries,
	admin commands.BookingAdminCommands,
	catalog commands.CatalogCommands,
) *DashboardHandler {
	return &DashboardHandler{overview: overview, bookings: bookings, admin: admin, catalog: catalog}
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	var path reqdto.IDPath
	if err := c.ShouldBindUri(&path); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidPath, "Invalid id", nil)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(path.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidPath, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Dashboard overview
// @Description Booking counts per kind, revenue, pending payments and the latest payments
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardOverviewResponse
// @Failure 403 {object} httperr.Response
// @Router /dashboard/overview [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	o, err := h.overview.Overview(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load dashboard overview")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboardOverview(o))
}

// @Summary Latest bookings
// @Description Latest bookings of each kind
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardBookingsResponse
// @Failure 403 {object} httperr.Response
// @Router /dashboard/bookings [get]
func (h *DashboardHandler) Bookings(c *gin.Context) {
	b, err := h.bookings.LatestPerKind(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load bookings")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboardBookings(b))
}

// @Summary Update booking status
// @Description Move a booking and its payment through their allowed transitions
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "hotel, car or flight"
// @Param reference path string true "Reference number"
// @Param request body reqdto.UpdateBookingStatusRequest true "New statuses"
// @Success 200 {object} resdto.BookingStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /dashboard/bookings/{kind}/{reference} [patch]
func (h *DashboardHandler) UpdateBookingStatus(c *gin.Context) {
	var path reqdto.BookingPath
	if err := c.ShouldBindUri(&path); err != nil {
		respondBindError(c, err)
		return
	}
	var body reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}
	snap, err := h.admin.UpdateBookingStatus(c.Request.Context(), body.ToCommand(booking.Kind(path.Kind), path.Reference))
	if err != nil {
		respondError(c, err, "Failed to update booking status")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingSnapshot(snap))
}

// @Summary Create hotel
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHotelRequest true "Hotel"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /dashboard/hotels [post]
func (h *DashboardHandler) CreateHotel(c *gin.Context) {
	var body reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}
	id, err := h.catalog.CreateHotel(c.Request.Context(), body.ToParams())
	if err != nil {
		respondError(c, err, "Failed to create hotel")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromID(id))
}

// @Summary Create room type
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.CreateRoomTypeRequest true "Room type"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /dashboard/hotels/{id}/room-types [post]
func (h *DashboardHandler) CreateRoomType(c *gin.Context) {
	hotelID, ok := pathID(c)
	if !ok {
		return
	}
	var body reqdto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}
	req, err := body.ToCommand(hotelID)
	if err != nil {
		respondError(c, err, "Failed to create room type")
		return
	}
	id, err := h.catalog.CreateRoomType(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create room type")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromID(id))
}

// @Summary Reprice room type
// @Tags dashboard
// @Accept json
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Param request body reqdto.RepriceRoomTypeRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /dashboard/room-types/{id} [patch]
func (h *DashboardHandler) RepriceRoomType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body reqdto.RepriceRoomTypeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}
	req, err := body.ToCommand()
	if err != nil {
		respondError(c, err, "Failed to update room type")
		return
	}
	if err := h.catalog.RepriceRoomType(c.Request.Context(), id, req); err != nil {
		respondError(c, err, "Failed to update room type")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create car
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCarRequest true "Car"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /dashboard/cars [post]
func (h *DashboardHandler) CreateCar(c *gin.Context) {
	var body reqdto.CreateCarRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}
	params, err := body.ToParams()
	if err != nil {
		respondError(c, err, "Failed to create car")
		return
	}
	id, err := h.catalog.CreateCar(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to create car")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromID(id))
}

// @Summary Reprice car
// @Tags dashboard
// @Accept json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Param request body reqdto.RepriceCarRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /dashboard/cars/{id} [patch]
func (h *DashboardHandler) RepriceCar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body reqdto.RepriceCarRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}
	req, err := body.ToCommand()
	if err != nil {
		respondError(c, err, "Failed to update car")
		return
	}
	if err := h.catalog.RepriceCar(c.Request.Context(), id, req); err != nil {
		respondError(c, err, "Failed to update car")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create flight
// @Description Create a flight and seed the seat map of each leg
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFlightRequest true "Flight"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /dashboard/flights [post]
func (h *DashboardHandler) CreateFlight(c *gin.Context) {
	var body reqdto.CreateFlightRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}
	params, err := body.ToParams()
	if err != nil {
		respondError(c, err, "Failed to create flight")
		return
	}
	id, err := h.catalog.CreateFlight(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to create flight")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromID(id))
}

// @Summary Reprice flight
// @Tags dashboard
// @Accept json
// @Security BearerAuth
// @Param id path string true "Flight ID"
// @Param request body reqdto.RepriceFlightRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /dashboard/flights/{id} [patch]
func (h *DashboardHandler) RepriceFlight(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body reqdto.RepriceFlightRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}
	req, err := body.ToCommand()
	if err != nil {
		respondError(c, err, "Failed to update flight")
		return
	}
	if err := h.catalog.RepriceFlight(c.Request.Context(), id, req); err != nil {
		respondError(c, err, "Failed to update flight")
		return
	}
	c.Status(http.StatusNoContent)
}
