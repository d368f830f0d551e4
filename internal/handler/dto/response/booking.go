package response

import (
	"time"

	"probook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	ProfessionalID  uuid.UUID `json:"professionalId"`
	ClientID        uuid.UUID `json:"clientId"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromBookingView(view *queries.BookingView) BookingResponse {
	return BookingResponse{
		ID:              view.ID,
		ProfessionalID:  view.ProfessionalID,
		ClientID:        view.ClientID,
		StartTime:       view.StartTime,
		EndTime:         view.EndTime,
		TotalPriceCents: view.TotalPriceCents,
		Status:          view.Status,
		Notes:           view.Notes,
		CreatedAt:       view.CreatedAt,
		UpdatedAt:       view.UpdatedAt,
	}
}
