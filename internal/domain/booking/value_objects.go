package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidTimeSlot  = errors.New("start time must be before end time")
	ErrPastStartTime    = errors.New("start time must be in the future")
	ErrDurationTooShort = errors.New("duration is below the minimum")
)

// MinDuration is the shortest admissible booking (0.5 hours).
const MinDuration = 30 * time.Minute

// TimeSlot is a half-open window [start, end): two slots sharing an endpoint
// do not overlap.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// ValidateAdmission enforces the creation-time rules: the slot must start
// strictly after now and last at least MinDuration.
func (ts TimeSlot) ValidateAdmission(now time.Time) error {
	if !ts.start.After(now) {
		return ErrPastStartTime
	}
	if ts.Duration() < MinDuration {
		return ErrDurationTooShort
	}
	return nil
}

func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
