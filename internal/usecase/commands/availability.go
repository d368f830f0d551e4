package commands

import (
	"context"
	"time"

	"probook/internal/domain/booking"
	"probook/internal/domain/schedule"
	"probook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNotAvailable = errs.New("professional not available for the requested window")

// AvailabilityOracle validates a requested slot against the professional's
// declared weekly schedule. Day of week and time of day are derived in the
// configured reference timezone.
type AvailabilityOracle struct {
	reads AvailabilityReads
	loc   *time.Location
}

func NewAvailabilityOracle(reads AvailabilityReads, loc *time.Location) *AvailabilityOracle {
	if loc == nil {
		loc = time.UTC
	}
	return &AvailabilityOracle{reads: reads, loc: loc}
}

// EnsureBookable succeeds only if some active window on the slot's start day
// fully contains the slot's time-of-day span, bounds inclusive. Slots that
// end on a later calendar day are rejected outright: a single day's windows
// can never contain them.
func (o *AvailabilityOracle) EnsureBookable(ctx context.Context, professionalID uuid.UUID, slot booking.TimeSlot) error {
	start := slot.Start().In(o.loc)
	end := slot.End().In(o.loc)

	if crossesMidnight(start, end) {
		return errs.Mark(errs.New("booking window crosses midnight"), ErrInvalidWindow)
	}

	windows, err := o.reads.FindActiveWindows(ctx, professionalID, start.Weekday())
	if err != nil {
		return err
	}

	startMin := schedule.NewMinuteOfDay(start)
	endMin := schedule.NewMinuteOfDay(end)
	for _, w := range windows {
		if w.Contains(startMin, endMin) {
			return nil
		}
	}

	return ErrNotAvailable
}

func crossesMidnight(start, end time.Time) bool {
	return start.Year() != end.Year() || start.YearDay() != end.YearDay()
}
