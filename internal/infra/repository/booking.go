package repository

import (
	"context"

	"probook/internal/domain/booking"
	"probook/internal/infra"
	"probook/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (
			id, professional_id, client_id, start_time, end_time,
			total_price_cents, status, idempotency_key, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var notes *string
	if !b.Note().IsEmpty() {
		v := b.Note().String()
		notes = &v
	}

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		b.ID(),
		b.ProfessionalID(),
		b.ClientID(),
		b.TimeSlot().Start(),
		b.TimeSlot().End(),
		b.Price().Cents(),
		b.Status().String(),
		b.IdempotencyKey(),
		notes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

// CountConflicts uses the half-open overlap predicate: existing.start < end
// AND existing.end > start. Touching endpoints never conflict.
func (r *BookingRepository) CountConflicts(ctx context.Context, tx db.DBTX, professionalID uuid.UUID, slot booking.TimeSlot) (int64, error) {
	const query = `
		SELECT count(*)
		FROM bookings
		WHERE professional_id = $1
		  AND status <> 'cancelled'
		  AND start_time < $3
		  AND end_time > $2
	`

	var count int64
	err := tx.QueryRow(ctx, query, professionalID, slot.Start(), slot.End()).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count conflicting bookings", err)
	}

	return count, nil
}

// LockProfessional takes a transaction-scoped advisory lock keyed by the
// professional. Under read-committed isolation two concurrent admissions
// could otherwise both observe zero conflicts and both insert; the lock
// serializes them so the second one sees the first one's row.
func (r *BookingRepository) LockProfessional(ctx context.Context, tx db.DBTX, professionalID uuid.UUID) error {
	const query = `SELECT pg_advisory_xact_lock(hashtext($1::text))`

	if _, err := tx.Exec(ctx, query, professionalID); err != nil {
		return infra.WrapRepoErr("failed to lock professional for admission", err)
	}
	return nil
}
