package commands

import (
	"context"
	"log/slog"
	"time"
)

// IdempotencyJanitor periodically purges expired ledger records. Reads
// already treat expired records as absent, so the purge is about table
// growth, not correctness.
type IdempotencyJanitor struct {
	repo     IdempotencyRepository
	interval time.Duration
}

func NewIdempotencyJanitor(repo IdempotencyRepository, interval time.Duration) *IdempotencyJanitor {
	return &IdempotencyJanitor{
		repo:     repo,
		interval: interval,
	}
}

// Run blocks until ctx is cancelled, sweeping on every tick.
func (j *IdempotencyJanitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *IdempotencyJanitor) sweep(ctx context.Context) {
	deleted, err := j.repo.DeleteExpired(ctx)
	if err != nil {
		slog.Error("idempotency sweep failed", "error", err)
		return
	}
	if deleted > 0 {
		slog.Info("purged expired idempotency records", "count", deleted)
	}
}
