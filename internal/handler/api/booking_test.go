//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"probook/internal/handler/api"
	resdto "probook/internal/handler/dto/response"
	"probook/internal/usecase/commands"
	"probook/internal/usecase/queries"
	"probook/tests/common/builder"
	"probook/tests/common/httptest"
	"probook/tests/common/testutil"
	commandsmock "probook/tests/mock/commands"
	queriesmock "probook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	bld := builder.NewBookingBuilder()
	reqBody := bld.BuildCreateRequestDTO()
	returnView := bld.BuildView()

	s.Run("success: returns 201 Created for a fresh admission", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), bld.IdempotencyKey).
			Return(&commands.CreateBookingResult{Booking: returnView, IsReplayed: false}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bld.IdempotencyKey.String())

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.TotalPriceCents, body.TotalPriceCents)
		s.Equal("pending", body.Status)
	})

	s.Run("success: returns 200 OK for a replayed request", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), bld.IdempotencyKey).
			Return(&commands.CreateBookingResult{Booking: returnView, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bld.IdempotencyKey.String())

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
	})

	s.Run("error: 400 when Idempotency-Key header is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
	})

	s.Run("error: 400 when Idempotency-Key is not a UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "not-a-uuid")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		validationCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing professional_id", mutate: testutil.Field("professional_id", nil)},
			{name: "missing client_id", mutate: testutil.Field("client_id", nil)},
			{name: "missing start_time", mutate: testutil.Field("start_time", nil)},
			{name: "missing duration_hours", mutate: testutil.Field("duration_hours", nil)},
			{name: "duration below minimum", mutate: testutil.Field("duration_hours", 0.25)},
			{name: "malformed start_time", mutate: testutil.Field("start_time", "next tuesday")},
		}

		for _, tc := range validationCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, bld.IdempotencyKey.String())
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	s.Run("error: admission failures map to status codes", func() {
		statusCases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "professional not found", err: commands.ErrProfessionalNotFound, expectCode: http.StatusNotFound, expectMsg: "Professional not found"},
			{name: "client not found", err: commands.ErrClientNotFound, expectCode: http.StatusNotFound, expectMsg: "Client not found"},
			{name: "invalid window", err: commands.ErrInvalidWindow, expectCode: http.StatusBadRequest, expectMsg: "Invalid booking window"},
			{name: "outside availability", err: commands.ErrNotAvailable, expectCode: http.StatusBadRequest, expectMsg: "not available"},
			{name: "booking conflict", err: commands.ErrBookingConflict, expectCode: http.StatusConflict, expectMsg: "already booked"},
			{name: "idempotency key misuse", err: commands.ErrIdempotencyConflict, expectCode: http.StatusConflict, expectMsg: "different parameters"},
			{name: "infrastructure failure", err: errors.New("connection reset"), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
		}

		for _, tc := range statusCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), bld.IdempotencyKey).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bld.IdempotencyKey.String())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 200 OK with the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+returnView.ID.String(), nil, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.ProfessionalID, body.ProfessionalID)
	})

	s.Run("error: 400 for a malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 when the booking does not exist", func() {
		missing := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), missing).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+missing.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
