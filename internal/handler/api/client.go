package api

import (
	"errors"
	"net/http"

	"probook/internal/handler/httperr"
	resdto "probook/internal/handler/dto/response"
	"probook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientHandler struct {
	clientQueries queries.ClientQueries
}

func NewClientHandler(clientQueries queries.ClientQueries) *ClientHandler {
	return &ClientHandler{
		clientQueries: clientQueries,
	}
}

// @Summary Get client
// @Description Get client by ID
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} resdto.ClientResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid client ID format", nil)
		return
	}

	view, err := h.clientQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrClientNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Client not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromClientView(view))
}
