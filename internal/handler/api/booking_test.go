//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/api"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/usecase/queries"
	"travel-booking/tests/common/builder"
	"travel-booking/tests/common/httptest"
	queriesmock "travel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockBookingQueries
	actor       user.Recipient
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.router = newTestEngine()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.actor = builder.NewRecipient(user.RoleCustomer)

	h := api.NewBookingHandler(s.mockQueries)
	auth := fakeAuth(s.actor)
	s.router.GET("/bookings", auth, h.List)
	s.router.GET("/bookings/:kind/:reference", auth, h.Get)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestList() {
	rows := []*queries.BookingSummaryView{
		{Kind: "hotel", ID: uuid.New(), Reference: "HTL-0001-AAAAAA", TotalPrice: "360.00", Status: "booked", CreatedAt: time.Unix(1900000000, 0)},
		{Kind: "car", ID: uuid.New(), Reference: "CAR-0002-BBBBBB", TotalPrice: "90.00", Status: "booked", CreatedAt: time.Unix(1890000000, 0)},
	}

	s.Run("success: first page with cursor", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actor.ID, (*queries.Cursor)(nil), 2).
			Return(rows, &queries.Cursor{After: "next-token"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=2", nil, "bearer-token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Bookings, 2)
		s.Equal("HTL-0001-AAAAAA", body.Bookings[0].ReferenceNumber)
		s.Equal(rows[0].ID.String(), body.Bookings[0].ID)
		s.Equal(int64(1900000000), body.Bookings[0].CreatedAt)
		s.Equal("next-token", body.NextCursor)
	})

	s.Run("success: forwards the cursor", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actor.ID, &queries.Cursor{After: "abc"}, 0).
			Return(nil, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?after=abc", nil, "bearer-token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Bookings)
		s.Empty(body.NextCursor)
	})

	s.Run("error: 400 on invalid cursor", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?after=zzz", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("success: hotel detail with payments", func() {
		view := &queries.BookingDetailView{
			Kind:       "hotel",
			ID:         uuid.New(),
			Reference:  "HTL-0001-AAAAAA",
			UserID:     s.actor.ID,
			TotalPrice: "360.00",
			Status:     "booked",
			Hotel: &queries.HotelStayView{
				HotelID:   uuid.New(),
				HotelName: "Seaside Inn",
				CheckIn:   "2030-06-01",
				CheckOut:  "2030-06-04",
				Rooms:     1,
			},
			Payments: []*queries.PaymentView{{ID: uuid.New(), Amount: "360.00", Status: "succeeded", Provider: "test"}},
		}
		s.mockQueries.EXPECT().GetByReference(gomock.Any(), s.actor, booking.KindHotel, "HTL-0001-AAAAAA").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/hotel/HTL-0001-AAAAAA", nil, "bearer-token")

		var body resdto.BookingDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.actor.ID.String(), body.UserID)
		s.Require().NotNil(body.Hotel)
		s.Equal("Seaside Inn", body.Hotel.HotelName)
		s.Equal(view.Hotel.HotelID.String(), body.Hotel.HotelID)
		s.Nil(body.Car)
		s.Require().Len(body.Payments, 1)
		s.Equal("succeeded", body.Payments[0].Status)
	})

	s.Run("error: 400 on unknown kind", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/boat/HTL-0001", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 for someone else's booking", func() {
		s.mockQueries.EXPECT().GetByReference(gomock.Any(), gomock.Any(), booking.KindCar, "CAR-0002-BBBBBB").
			Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/car/CAR-0002-BBBBBB", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
