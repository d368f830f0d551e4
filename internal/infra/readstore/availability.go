package readstore

import (
	"context"
	"time"

	"probook/internal/domain/schedule"
	"probook/internal/infra"
	"probook/internal/infra/db"

	"github.com/google/uuid"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

// FindActiveWindows returns all active windows a professional declared for a
// weekday. The TIME columns come back as HH24:MI text so the domain keeps
// minute-of-day arithmetic.
func (r *AvailabilityReadStore) FindActiveWindows(ctx context.Context, professionalID uuid.UUID, day time.Weekday) ([]schedule.Window, error) {
	const query = `
		SELECT to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
		FROM availabilities
		WHERE professional_id = $1 AND day_of_week = $2 AND is_active
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, professionalID, int(day))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load availability windows", err)
	}
	defer rows.Close()

	var windows []schedule.Window
	for rows.Next() {
		var startStr, endStr string
		if err := rows.Scan(&startStr, &endStr); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability row", err)
		}

		start, err := schedule.ParseMinuteOfDay(startStr)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid availability start time", err)
		}
		end, err := schedule.ParseMinuteOfDay(endStr)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid availability end time", err)
		}

		window, err := schedule.NewWindow(day, start, end)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid availability window", err)
		}
		windows = append(windows, window)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate availability rows", err)
	}

	return windows, nil
}
