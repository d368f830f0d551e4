//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"probook/internal/handler/api"
	resdto "probook/internal/handler/dto/response"
	"probook/internal/usecase/queries"
	"probook/tests/common/httptest"
	queriesmock "probook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProfessionalHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockProfessionalQueries
	handler     *api.ProfessionalHandler
}

func (s *ProfessionalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockProfessionalQueries(s.mockCtrl)
	s.handler = api.NewProfessionalHandler(s.mockQueries)

	s.router.GET("/search/pros", s.handler.SearchProfessionals)
}

func (s *ProfessionalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProfessionalHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProfessionalHandlerTestSuite))
}

func (s *ProfessionalHandlerTestSuite) TestSearchProfessionals() {
	items := []*queries.ProfessionalSearchItem{
		{ID: uuid.New(), Name: "Alice", Category: "plumbing", HourlyRateCents: 5000, TravelMode: "local"},
		{ID: uuid.New(), Name: "Bob", Category: "plumbing", HourlyRateCents: 7500, TravelMode: "travel"},
	}

	s.Run("success: returns matching professionals", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params queries.SearchProfessionalsParams) ([]*queries.ProfessionalSearchItem, error) {
				s.Require().NotNil(params.Category)
				s.Equal("plumbing", *params.Category)
				s.Require().NotNil(params.MaxHourlyRateCents)
				s.Equal(int64(8000), *params.MaxHourlyRateCents)
				return items, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search/pros?category=plumbing&maxHourlyRateCents=8000", nil, "")

		var body []resdto.ProfessionalSearchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("Alice", body[0].Name)
	})

	s.Run("success: empty result is an empty array", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any()).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search/pros", nil, "")

		var body []resdto.ProfessionalSearchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("success: distance filter with full location", func() {
		withDistance := []*queries.ProfessionalSearchItem{items[0]}
		km := 3.2
		withDistance[0].DistanceKm = &km

		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any()).
			Return(withDistance, nil).Times(1)

		url := fmt.Sprintf("/search/pros?locationLat=%f&locationLng=%f&maxDistanceKm=10", 35.6895, 139.6917)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body []resdto.ProfessionalSearchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Require().NotNil(body[0].DistanceKm)
		s.InDelta(3.2, *body[0].DistanceKm, 0.001)
	})

	s.Run("error: 400 when maxDistanceKm lacks a location", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search/pros?maxDistanceKm=10", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "locationLat")
	})

	s.Run("error: 400 on out-of-range latitude", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search/pros?locationLat=123&locationLng=10", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid search parameters")
	})

	s.Run("error: 400 on unknown travel mode", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search/pros?travelMode=teleport", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
