package request

import (
	"time"

	"probook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ProfessionalID uuid.UUID `json:"professional_id" binding:"required"`
	ClientID       uuid.UUID `json:"client_id" binding:"required"`
	StartTime      time.Time `json:"start_time" binding:"required"`
	DurationHours  float64   `json:"duration_hours" binding:"required,gte=0.5"`
	Notes          *string   `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ToParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		ProfessionalID: r.ProfessionalID,
		ClientID:       r.ClientID,
		StartTime:      r.StartTime,
		DurationHours:  r.DurationHours,
		Notes:          r.Notes,
	}
}
