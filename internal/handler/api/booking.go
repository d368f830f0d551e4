package api

import (
	"errors"
	"net/http"

	reqdto "probook/internal/handler/dto/request"
	resdto "probook/internal/handler/dto/response"
	"probook/internal/handler/httperr"
	"probook/internal/usecase/commands"
	"probook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errIdempotencyKeyRequired = errors.New("Idempotency-Key header is required")

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Create a new booking with idempotency key
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "Replayed from a previous identical request"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	idempotencyKey, err := h.getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), req.ToParams(), idempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProfessionalNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Professional not found", nil)
		case errors.Is(err, commands.ErrClientNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Client not found", nil)
		case errors.Is(err, commands.ErrInvalidWindow):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking window", nil)
		case errors.Is(err, commands.ErrNotAvailable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Professional is not available for the requested time", nil)
		case errors.Is(err, commands.ErrBookingConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Time slot already booked", nil)
		case errors.Is(err, commands.ErrIdempotencyConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Idempotency key reused with different parameters", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromBookingView(result.Booking))
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}
