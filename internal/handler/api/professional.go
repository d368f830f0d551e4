package api

import (
	"errors"
	"net/http"

	reqdto "probook/internal/handler/dto/request"
	resdto "probook/internal/handler/dto/response"
	"probook/internal/handler/httperr"
	"probook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProfessionalHandler struct {
	professionalQueries queries.ProfessionalQueries
}

func NewProfessionalHandler(professionalQueries queries.ProfessionalQueries) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalQueries: professionalQueries,
	}
}

// @Summary Search professionals
// @Description Search active professionals by category, rate and distance
// @Tags professionals
// @Produce json
// @Param category query string false "Service category"
// @Param travelMode query string false "Travel mode" Enums(local, travel)
// @Param maxHourlyRateCents query int false "Maximum hourly rate in cents"
// @Param locationLat query number false "Latitude of the search origin"
// @Param locationLng query number false "Longitude of the search origin"
// @Param maxDistanceKm query number false "Maximum distance in kilometers"
// @Success 200 {array} resdto.ProfessionalSearchResponse
// @Failure 400 {object} httperr.Response
// @Router /search/pros [get]
func (h *ProfessionalHandler) SearchProfessionals(c *gin.Context) {
	var req reqdto.SearchProfessionalsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid search parameters", nil)
		return
	}

	params := req.ToParams()
	if params.MaxDistanceKm != nil && !params.HasLocation() {
		err := errors.New("maxDistanceKm requires locationLat and locationLng")
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	items, err := h.professionalQueries.Search(c.Request.Context(), params)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfessionalSearchItems(items))
}
