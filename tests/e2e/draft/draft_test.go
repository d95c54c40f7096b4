//go:build e2e

package draft_test

import (
	"net/http"
	"testing"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/dto/response"
	"travel-booking/tests/common/builder"
	"travel-booking/tests/common/dbtest"
	"travel-booking/tests/common/httptest"
	"travel-booking/tests/e2e"
	"travel-booking/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type DraftSuite struct {
	e2e.SharedSuite
	jwt *helper.JWTTestHelper
}

func (s *DraftSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = helper.NewJWTTestHelper(s.DB, s.Config.JWT)
}

func (s *DraftSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestDraftSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DraftSuite))
}

func (s *DraftSuite) TestWizard() {
	s.Run("Normal case: steps are saved, resumed and cleared by booking", func() {
		t := s.T()
		token := s.jwt.CreateAndLogin(t, "planner@example.com", user.RoleCustomer)
		_, roomTypeID := dbtest.CreateTestHotel(t, s.DB, "Lisbon", "double", "100.00", 4)
		url := "/api/drafts/hotel/" + roomTypeID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, url,
			map[string]any{"step": "details", "data": map[string]any{"check_in": "2030-06-01"}}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, url,
			map[string]any{"step": "review", "data": map[string]any{"rooms": 1}}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resumed response.DraftResponse
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token), http.StatusOK, &resumed)
		require.Equal(t, "review", resumed.Step)
		require.Equal(t, "2030-06-01", resumed.Data["check_in"])
		require.InDelta(t, 1, resumed.Data["rooms"], 0)

		ttl, err := s.Redis.TTL(t.Context(), "booking:draft:"+draftKey(t, s, "planner@example.com", roomTypeID)).Result()
		require.NoError(t, err)
		require.Positive(t, ttl)

		reqBody := builder.NewHotelBookingBuilder().With(func(b *builder.HotelBookingBuilder) {
			b.RoomTypeID = roomTypeID
		}).BuildCreateRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/hotels/bookings", reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})

	s.Run("Error case: skipping ahead is rejected", func() {
		t := s.T()
		token := s.jwt.CreateAndLogin(t, "planner@example.com", user.RoleCustomer)
		url := "/api/drafts/car/" + uuid.NewString()

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, map[string]any{"step": "payment"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Validation failed")
	})

	s.Run("Normal case: delete discards the draft", func() {
		t := s.T()
		token := s.jwt.CreateAndLogin(t, "planner@example.com", user.RoleCustomer)
		url := "/api/drafts/flight/" + uuid.NewString()

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, map[string]any{"step": "search"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}

func draftKey(t *testing.T, s *DraftSuite, email string, resourceID uuid.UUID) string {
	t.Helper()
	var userID uuid.UUID
	require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	return userID.String() + ":hotel:" + resourceID.String()
}
