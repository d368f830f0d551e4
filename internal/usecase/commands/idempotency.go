package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"probook/internal/infra"
	"probook/internal/pkg/clock"
	"probook/internal/pkg/errs"
	"probook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrIdempotencyConflict    = errs.New("idempotency key reused with a different request")
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")
)

// IdempotencyLedger is the durable key->outcome cache that makes retried
// creation requests safe. A key seen before with the same fingerprint
// replays the stored projection; the same key with a different fingerprint
// is client-side key misuse.
type IdempotencyLedger struct {
	repo       IdempotencyRepository
	clock      clock.Clock
	defaultTTL time.Duration
}

func NewIdempotencyLedger(repo IdempotencyRepository, clk clock.Clock, defaultTTL time.Duration) *IdempotencyLedger {
	if defaultTTL <= 0 {
		defaultTTL = 24 * time.Hour
	}
	return &IdempotencyLedger{
		repo:       repo,
		clock:      clk,
		defaultTTL: defaultTTL,
	}
}

// Resolve returns the cached projection for key, or nil when the caller must
// proceed (fresh key, or a record past its expiry).
func (l *IdempotencyLedger) Resolve(ctx context.Context, key uuid.UUID, fingerprint string) (*queries.BookingView, error) {
	rec, err := l.repo.Find(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	if rec.RequestHash != fingerprint {
		return nil, ErrIdempotencyConflict
	}

	var view queries.BookingView
	if err := json.Unmarshal(rec.Response, &view); err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	return &view, nil
}

// Record persists the outcome for key. First writer wins: when two retries
// race past Resolve, only one insert takes effect, and equal requests have
// computed equal projections anyway. ttl <= 0 means the default.
func (l *IdempotencyLedger) Record(ctx context.Context, key uuid.UUID, fingerprint string, view *queries.BookingView, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = l.defaultTTL
	}

	response, err := json.Marshal(view)
	if err != nil {
		return errs.Wrap(err, "marshal booking projection")
	}

	return l.repo.TryInsert(ctx, &IdempotencyRecord{
		Key:         key,
		RequestHash: fingerprint,
		Response:    response,
		ExpiresAt:   l.clock.Now().Add(ttl),
	})
}

// RequestFingerprint hashes the semantically relevant creation fields. The
// canonical intermediate struct fixes field order and normalizes the start
// time to UTC, so two logically identical requests always hash identically.
func RequestFingerprint(params CreateBookingParams) string {
	canonical := struct {
		ProfessionalID uuid.UUID `json:"professional_id"`
		ClientID       uuid.UUID `json:"client_id"`
		StartTime      string    `json:"start_time"`
		DurationHours  float64   `json:"duration_hours"`
		Notes          *string   `json:"notes,omitempty"`
	}{
		ProfessionalID: params.ProfessionalID,
		ClientID:       params.ClientID,
		StartTime:      params.StartTime.UTC().Format(time.RFC3339Nano),
		DurationHours:  params.DurationHours,
		Notes:          normalizeNotes(params.Notes),
	}

	data, _ := json.Marshal(canonical)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func normalizeNotes(notes *string) *string {
	if notes == nil || *notes == "" {
		return nil
	}
	return notes
}
