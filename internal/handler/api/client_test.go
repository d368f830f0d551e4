//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

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

type ClientHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockClientQueries
	handler     *api.ClientHandler
}

func (s *ClientHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockClientQueries(s.mockCtrl)
	s.handler = api.NewClientHandler(s.mockQueries)

	s.router.GET("/clients/:id", s.handler.GetClient)
}

func (s *ClientHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestClientHandlerSuite(t *testing.T) {
	suite.Run(t, new(ClientHandlerTestSuite))
}

func (s *ClientHandlerTestSuite) TestGetClient() {
	view := &queries.ClientView{
		ID:        uuid.New(),
		Name:      "Test Client",
		Email:     "client@example.com",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	s.Run("success: returns 200 OK with the client", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/clients/"+view.ID.String(), nil, "")

		var body resdto.ClientResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.Email, body.Email)
	})

	s.Run("error: 400 for a malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/clients/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid client ID")
	})

	s.Run("error: 404 when the client does not exist", func() {
		missing := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), missing).
			Return(nil, queries.ErrClientNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/clients/"+missing.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Client not found")
	})
}
