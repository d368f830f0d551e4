package commands

import (
	"context"

	"probook/internal/domain/booking"
	"probook/internal/infra/db"

	"github.com/google/uuid"
)

// OverlapGuard detects conflicts between a candidate slot and existing
// non-cancelled bookings. It runs twice per admission: once against the pool
// as a cheap pre-check that may be stale, and once against the open
// transaction as the authoritative check.
type OverlapGuard struct {
	bookings BookingRepository
}

func NewOverlapGuard(bookings BookingRepository) *OverlapGuard {
	return &OverlapGuard{bookings: bookings}
}

func (g *OverlapGuard) HasConflict(ctx context.Context, dbtx db.DBTX, professionalID uuid.UUID, slot booking.TimeSlot) (bool, error) {
	count, err := g.bookings.CountConflicts(ctx, dbtx, professionalID, slot)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
