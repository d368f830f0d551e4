// Package schedule models a professional's recurring weekly availability.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

// MinuteOfDay is a clock position within one day, 0..1439. Availability is
// declared at minute granularity.
type MinuteOfDay int

// NewMinuteOfDay reduces an instant to its minute of the day. t must be
// minute-aligned; admission rejects sub-minute slot bounds before they
// reach here.
func NewMinuteOfDay(t time.Time) MinuteOfDay {
	return MinuteOfDay(t.Hour()*60 + t.Minute())
}

// ParseMinuteOfDay parses "HH:MM" (seconds, if present, are ignored).
func ParseMinuteOfDay(s string) (MinuteOfDay, error) {
	var hh, mm int
	if _, err := fmt.Sscanf(s, "%2d:%2d", &hh, &mm); err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	return MinuteOfDay(hh*60 + mm), nil
}

func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// Window is one declared availability span on a weekly schedule. Bounds are
// inclusive as declared: a booking may start exactly at Start and end exactly
// at End.
type Window struct {
	DayOfWeek time.Weekday
	Start     MinuteOfDay
	End       MinuteOfDay
}

func NewWindow(day time.Weekday, start, end MinuteOfDay) (Window, error) {
	if start >= end {
		return Window{}, errors.New("window start must be before window end")
	}
	return Window{DayOfWeek: day, Start: start, End: end}, nil
}

// Contains reports whether the [start, end] time-of-day span fits entirely
// inside the window. A span that starts before the window opens or ends after
// it closes, even by one minute, does not fit.
func (w Window) Contains(start, end MinuteOfDay) bool {
	return start >= w.Start && end <= w.End
}
