//go:build unit || e2e

package builder

import (
	"time"

	dombooking "probook/internal/domain/booking"
	reqdto "probook/internal/handler/dto/request"
	"probook/internal/usecase/commands"
	"probook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ProfessionalID  uuid.UUID
	ClientID        uuid.UUID
	IdempotencyKey  uuid.UUID
	StartTime       time.Time
	DurationHours   float64
	HourlyRateCents int64
	Notes           *string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC().Truncate(time.Minute)
	return &BookingBuilder{
		ProfessionalID:  uuid.New(),
		ClientID:        uuid.New(),
		IdempotencyKey:  uuid.New(),
		StartTime:       now.Add(48 * time.Hour),
		DurationHours:   2.0,
		HourlyRateCents: 5000,
		Status:          "pending",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) EndTime() time.Time {
	return b.StartTime.Add(time.Duration(b.DurationHours * float64(time.Hour)))
}

func (b *BookingBuilder) TotalPriceCents() int64 {
	calc := dombooking.NewHourlyPriceCalculator()
	return calc.TotalPriceCents(b.HourlyRateCents, b.DurationHours)
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	slot, err := dombooking.NewTimeSlot(b.StartTime, b.EndTime())
	if err != nil {
		return nil, err
	}
	price, err := dombooking.NewMoney(b.TotalPriceCents())
	if err != nil {
		return nil, err
	}
	note := ""
	if b.Notes != nil {
		note = *b.Notes
	}
	return dombooking.NewBooking(b.ProfessionalID, b.ClientID, slot, price, b.IdempotencyKey, dombooking.NewNote(note)), nil
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ProfessionalID: b.ProfessionalID,
		ClientID:       b.ClientID,
		StartTime:      b.StartTime,
		DurationHours:  b.DurationHours,
		Notes:          b.Notes,
	}
}

func (b *BookingBuilder) BuildParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		ProfessionalID: b.ProfessionalID,
		ClientID:       b.ClientID,
		StartTime:      b.StartTime,
		DurationHours:  b.DurationHours,
		Notes:          b.Notes,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:              uuid.New(),
		ProfessionalID:  b.ProfessionalID,
		ClientID:        b.ClientID,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime(),
		TotalPriceCents: b.TotalPriceCents(),
		Status:          b.Status,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildProfessionalSnapshot() *commands.ProfessionalSnapshot {
	return &commands.ProfessionalSnapshot{
		ID:              b.ProfessionalID,
		Name:            "Test Professional",
		Category:        "plumbing",
		HourlyRateCents: b.HourlyRateCents,
		TravelMode:      "local",
		IsActive:        true,
	}
}

func (b *BookingBuilder) BuildClientSnapshot() *commands.ClientSnapshot {
	return &commands.ClientSnapshot{
		ID:       b.ClientID,
		Name:     "Test Client",
		IsActive: true,
	}
}
