package readstore

import (
	"context"

	"probook/internal/infra"
	"probook/internal/infra/db"
	"probook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT id, professional_id, client_id, start_time, end_time,
		       total_price_cents, status, notes, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var view queries.BookingView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.ProfessionalID,
		&view.ClientID,
		&view.StartTime,
		&view.EndTime,
		&view.TotalPriceCents,
		&view.Status,
		&view.Notes,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &view, nil
}
