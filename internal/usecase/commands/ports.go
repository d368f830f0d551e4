package commands

import (
	"context"
	"time"

	"probook/internal/domain/booking"
	"probook/internal/domain/schedule"
	"probook/internal/infra/db"

	"github.com/google/uuid"
)

// Snapshots are the minimal directory projections the admission flow needs.

type ProfessionalSnapshot struct {
	ID              uuid.UUID
	Name            string
	Category        string
	HourlyRateCents int64
	TravelMode      string
	IsActive        bool
}

type ClientSnapshot struct {
	ID       uuid.UUID
	Name     string
	IsActive bool
}

type IdempotencyRecord struct {
	Key         uuid.UUID
	RequestHash string
	Response    []byte
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	// CountConflicts counts non-cancelled bookings whose half-open window
	// overlaps the slot. Consistency follows the handle: pool reads may be
	// stale, transaction reads are authoritative.
	CountConflicts(ctx context.Context, tx db.DBTX, professionalID uuid.UUID, slot booking.TimeSlot) (int64, error)
	// LockProfessional serializes concurrent admissions for one professional
	// within the surrounding transaction.
	LockProfessional(ctx context.Context, tx db.DBTX, professionalID uuid.UUID) error
}

type IdempotencyRepository interface {
	// Find returns KindNotFound for absent and for expired-but-unpurged keys.
	Find(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
	// TryInsert is first-writer-wins: inserting an already present key is a
	// no-op, not an error.
	TryInsert(ctx context.Context, rec *IdempotencyRecord) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type ProfessionalReads interface {
	FindActiveByID(ctx context.Context, id uuid.UUID) (*ProfessionalSnapshot, error)
}

type ClientReads interface {
	FindActiveByID(ctx context.Context, id uuid.UUID) (*ClientSnapshot, error)
}

type AvailabilityReads interface {
	FindActiveWindows(ctx context.Context, professionalID uuid.UUID, day time.Weekday) ([]schedule.Window, error)
}
