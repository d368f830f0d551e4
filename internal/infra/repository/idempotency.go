package repository

import (
	"context"

	"probook/internal/infra"
	"probook/internal/infra/db"
	"probook/internal/pkg/clock"
	"probook/internal/usecase/commands"

	"github.com/google/uuid"
)

type IdempotencyRepository struct {
	db    db.DBTX
	clock clock.Clock
}

func NewIdempotencyRepository(dbtx db.DBTX, clk clock.Clock) *IdempotencyRepository {
	return &IdempotencyRepository{db: dbtx, clock: clk}
}

// Find treats rows past their expiry as absent even before the janitor
// physically purges them, so a key becomes reusable as soon as its TTL runs
// out.
func (r *IdempotencyRepository) Find(ctx context.Context, key uuid.UUID) (*commands.IdempotencyRecord, error) {
	const query = `
		SELECT key, request_hash, response_data, expires_at, created_at
		FROM idempotency_keys
		WHERE key = $1
	`

	var rec commands.IdempotencyRecord
	err := r.db.QueryRow(ctx, query, key).Scan(
		&rec.Key,
		&rec.RequestHash,
		&rec.Response,
		&rec.ExpiresAt,
		&rec.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	if r.clock.Now().After(rec.ExpiresAt) {
		return nil, infra.WrapRepoErr("idempotency key expired", nil, infra.KindNotFound)
	}

	return &rec, nil
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, rec *commands.IdempotencyRecord) error {
	const query = `
		INSERT INTO idempotency_keys (key, request_hash, response_data, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, rec.Key, rec.RequestHash, rec.Response, rec.ExpiresAt)
	if err != nil {
		return infra.WrapRepoErr("failed to insert idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	const query = `DELETE FROM idempotency_keys WHERE expires_at < now()`

	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}
