//go:build unit

package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/api"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/ptr"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"
	"travel-booking/tests/common/builder"
	"travel-booking/tests/common/httptest"
	"travel-booking/tests/common/testutil"
	commandsmock "travel-booking/tests/mock/commands"
	queriesmock "travel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HotelHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCatalog      *queriesmock.MockCatalogQueries
	mockAvailability *commandsmock.MockAvailabilityCommands
	mockBookings     *commandsmock.MockBookingCommands
	actor            user.Recipient
}

func (s *HotelHandlerTestSuite) SetupTest() {
	s.router = newTestEngine()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCatalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.mockAvailability = commandsmock.NewMockAvailabilityCommands(s.mockCtrl)
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.actor = builder.NewRecipient(user.RoleCustomer)

	h := api.NewHotelHandler(s.mockCatalog, s.mockAvailability, s.mockBookings)
	auth := fakeAuth(s.actor)
	s.router.GET("/hotels", h.List)
	s.router.GET("/hotels/room-types/:id/availability", auth, h.Availability)
	s.router.POST("/hotels/bookings", auth, h.Book)
}

func (s *HotelHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHotelHandlerSuite(t *testing.T) {
	suite.Run(t, new(HotelHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *HotelHandlerTestSuite) TestList() {
	s.Run("success: passes the location filter through", func() {
		views := []*queries.HotelView{{
			ID:        uuid.New(),
			Name:      "Seaside Inn",
			Slug:      "seaside-inn",
			RoomTypes: []*queries.RoomTypeView{{ID: uuid.New(), RoomType: "double", BasePrice: "120.00", TotalRooms: 5}},
		}}
		s.mockCatalog.EXPECT().ListHotels(gomock.Any(), "Lisbon").Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels?location=Lisbon", nil, "")

		var body []resdto.HotelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("Seaside Inn", body[0].Name)
		s.Equal([]string{}, body[0].Amenities)
		s.Require().Len(body[0].RoomTypes, 1)
		s.Equal("120.00", body[0].RoomTypes[0].BasePrice)
	})
}

// ================================================================================
// TestAvailability
// ================================================================================

func (s *HotelHandlerTestSuite) TestAvailability() {
	roomTypeID := uuid.New()
	url := "/hotels/room-types/" + roomTypeID.String() + "/availability"

	s.Run("success: quotes the stay", func() {
		total := booking.MustParseMoney("360.00")
		s.mockAvailability.EXPECT().CheckHotel(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.HotelAvailabilityRequest) (*commands.AvailabilityQuote, error) {
				s.Equal(roomTypeID, req.RoomTypeID)
				s.Equal(2, req.Rooms)
				s.Equal("2030-06-01", req.CheckIn.Format(booking.DateLayout))
				return &commands.AvailabilityQuote{Available: true, Nights: 3, Total: &total}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?check_in=2030-06-01&check_out=2030-06-04&rooms=2", nil, "bearer-token")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Available)
		s.Equal(3, body.Nights)
		s.Equal("360.00", body.TotalPrice)
		s.Equal([]string{}, body.Reasons)
	})

	s.Run("success: unavailable stays answer 200 with reasons", func() {
		s.mockAvailability.EXPECT().CheckHotel(gomock.Any(), gomock.Any()).
			Return(&commands.AvailabilityQuote{Reasons: []string{"Only 1 rooms left on 2030-06-02"}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?check_in=2030-06-01&check_out=2030-06-04", nil, "bearer-token")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Available)
		s.Equal([]string{"Only 1 rooms left on 2030-06-02"}, body.Reasons)
	})

	s.Run("error: 400 on bad room type id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/hotels/room-types/nope/availability?check_in=2030-06-01&check_out=2030-06-04", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room type id")
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?check_in=06/01/2030&check_out=2030-06-04", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 for unknown room type", func() {
		s.mockAvailability.EXPECT().CheckHotel(gomock.Any(), gomock.Any()).Return(nil, commands.ErrRoomTypeNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?check_in=2030-06-01&check_out=2030-06-04", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?check_in=2030-06-01&check_out=2030-06-04", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestBook
// ================================================================================

func (s *HotelHandlerTestSuite) TestBook() {
	url := "/hotels/bookings"
	b := builder.NewHotelBookingBuilder().With(func(b *builder.HotelBookingBuilder) {
		b.PaymentToken = ptr.Of("pm_card_visa")
	})
	reqBody := b.BuildCreateRequestDTO()
	result := builder.BuildResult(booking.KindHotel, "360.00")

	bound := []testCase{
		{name: "rooms boundary OK (1)", mutate: testutil.Field("rooms", 1), expectCode: http.StatusCreated},
		{name: "rooms boundary invalid (0)", mutate: testutil.Field("rooms", 0), expectCode: http.StatusBadRequest},
		{name: "guests boundary invalid (0)", mutate: testutil.Field("guests", 0), expectCode: http.StatusBadRequest},
		{name: "guests boundary OK (40000)", mutate: testutil.Field("guests", 40000), expectCode: http.StatusCreated},
		{name: "guests boundary invalid (40001)", mutate: testutil.Field("guests", 40001), expectCode: http.StatusBadRequest},
		{name: "guests beyond int32", mutate: testutil.Field("guests", 3_000_000_000), expectCode: http.StatusBadRequest},
		{name: "rooms boundary invalid (10001)", mutate: testutil.Field("rooms", 10001), expectCode: http.StatusBadRequest},
		{name: "surname length OK (100 chars)", mutate: testutil.Field("surname", strings.Repeat("a", 100)), expectCode: http.StatusCreated},
		{name: "surname length invalid (101 chars)", mutate: testutil.Field("surname", strings.Repeat("a", 101)), expectCode: http.StatusBadRequest},
		{name: "special requests invalid (1001 chars)", mutate: testutil.Field("special_requests", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
	}

	missing := []testCase{
		{name: "missing field: room_type_id", mutate: testutil.Field("room_type_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: check_in", mutate: testutil.Field("check_in", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: check_out", mutate: testutil.Field("check_out", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: surname", mutate: testutil.Field("surname", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: contact_email", mutate: testutil.Field("contact_email", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: payment_token (optional)", mutate: testutil.Field("payment_token", nil), expectCode: http.StatusCreated},
	}

	format := []testCase{
		{name: "check_in not a date", mutate: testutil.Field("check_in", "2030-13-01"), expectCode: http.StatusBadRequest},
		{name: "contact_email malformed", mutate: testutil.Field("contact_email", "not-an-email"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 with the booking reference", func() {
		s.mockBookings.EXPECT().CreateHotelBooking(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ user.Recipient, req commands.HotelBookingRequest) (*commands.BookingResult, error) {
				s.Equal(b.BuildCommand().RoomTypeID, req.RoomTypeID)
				s.Equal(3, int(req.CheckOut.Sub(req.CheckIn).Hours()/24))
				s.Equal("pm_card_visa", *req.PaymentToken)
				return result, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.Reference, body.ReferenceNumber)
		s.Equal("360.00", body.TotalPrice)
		s.Equal("booked", body.Status)
		s.True(body.NotificationSent)
	})

	s.Run("validation cases", func() {
		for _, group := range [][]testCase{bound, missing, format} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					if tc.expectCode == http.StatusCreated {
						s.mockBookings.EXPECT().CreateHotelBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(result, nil)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: use case failures map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{
				name:       "sold out",
				err:        errs.Mark(booking.NewAvailabilityError("rooms", "Only 0 rooms left on 2030-06-02"), errs.ErrAvailability),
				expectCode: http.StatusConflict,
				expectMsg:  "Requested booking is not available",
			},
			{
				name:       "domain validation",
				err:        errs.Mark(booking.NewValidationError("guests", "too many guests"), errs.ErrValidation),
				expectCode: http.StatusUnprocessableEntity,
				expectMsg:  "Validation failed",
			},
			{
				name:       "declined card",
				err:        errs.Mark(errs.New("card declined"), errs.ErrPaymentProvider),
				expectCode: http.StatusPaymentRequired,
				expectMsg:  "Payment could not be processed",
			},
			{
				name:       "unknown room type",
				err:        commands.ErrRoomTypeNotFound,
				expectCode: http.StatusNotFound,
				expectMsg:  "Not found",
			},
			{
				name:       "unexpected failure",
				err:        errs.New("connection refused"),
				expectCode: http.StatusInternalServerError,
				expectMsg:  "Internal server error",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockBookings.EXPECT().CreateHotelBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})

	s.Run("error: 409 carries per-field reasons", func() {
		aerr := booking.NewAvailabilityError("rooms", "Insufficient rooms available for 2030-06-02")
		s.mockBookings.EXPECT().CreateHotelBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(aerr, errs.ErrAvailability))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), `"rooms":["Insufficient rooms available for 2030-06-02"]`)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
