//go:build unit

package booking_test

import (
	"testing"
	"time"

	"probook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlot(t *testing.T) {
	base := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		slot, err := booking.NewTimeSlot(base, base.Add(2*time.Hour))
		require.NoError(t, err)

		assert.Equal(t, base, slot.Start())
		assert.Equal(t, base.Add(2*time.Hour), slot.End())
		assert.Equal(t, 2*time.Hour, slot.Duration())
	})

	t.Run("boundary validation", func(t *testing.T) {
		cases := []struct {
			name  string
			start time.Time
			end   time.Time
			errIs error
		}{
			{name: "start equals end", start: base, end: base, errIs: booking.ErrInvalidTimeSlot},
			{name: "start after end", start: base.Add(time.Hour), end: base, errIs: booking.ErrInvalidTimeSlot},
			{name: "one minute slot", start: base, end: base.Add(time.Minute)},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := booking.NewTimeSlot(tc.start, tc.end)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("admission validation", func(t *testing.T) {
		now := base

		cases := []struct {
			name  string
			start time.Time
			end   time.Time
			errIs error
		}{
			{name: "future slot with minimum duration", start: now.Add(time.Hour), end: now.Add(time.Hour + booking.MinDuration)},
			{name: "start exactly now", start: now, end: now.Add(time.Hour), errIs: booking.ErrPastStartTime},
			{name: "start in the past", start: now.Add(-time.Hour), end: now.Add(time.Hour), errIs: booking.ErrPastStartTime},
			{name: "duration below minimum", start: now.Add(time.Hour), end: now.Add(time.Hour + booking.MinDuration - time.Minute), errIs: booking.ErrDurationTooShort},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				slot, err := booking.NewTimeSlot(tc.start, tc.end)
				require.NoError(t, err)

				err = slot.ValidateAdmission(now)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("overlap is half-open", func(t *testing.T) {
		slot := mustSlot(t, base, base.Add(2*time.Hour))

		cases := []struct {
			name     string
			other    booking.TimeSlot
			overlaps bool
		}{
			{name: "identical slot", other: mustSlot(t, base, base.Add(2*time.Hour)), overlaps: true},
			{name: "partial overlap at tail", other: mustSlot(t, base.Add(time.Hour), base.Add(3*time.Hour)), overlaps: true},
			{name: "fully contained", other: mustSlot(t, base.Add(30*time.Minute), base.Add(time.Hour)), overlaps: true},
			{name: "containing slot", other: mustSlot(t, base.Add(-time.Hour), base.Add(3*time.Hour)), overlaps: true},
			{name: "adjacent after", other: mustSlot(t, base.Add(2*time.Hour), base.Add(3*time.Hour)), overlaps: false},
			{name: "adjacent before", other: mustSlot(t, base.Add(-time.Hour), base), overlaps: false},
			{name: "disjoint", other: mustSlot(t, base.Add(5*time.Hour), base.Add(6*time.Hour)), overlaps: false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.overlaps, slot.Overlaps(tc.other))
				assert.Equal(t, tc.overlaps, tc.other.Overlaps(slot), "overlap must be symmetric")
			})
		}
	})
}

func TestMoney(t *testing.T) {
	t.Run("non-negative cents", func(t *testing.T) {
		m, err := booking.NewMoney(12500)
		require.NoError(t, err)
		assert.Equal(t, int64(12500), m.Cents())

		_, err = booking.NewMoney(-1)
		assert.Error(t, err)
	})

	t.Run("zero is valid", func(t *testing.T) {
		m, err := booking.NewMoney(0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Cents())
	})
}

func TestNote(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		n := booking.NewNote("  bring spare parts  ")
		assert.Equal(t, "bring spare parts", n.String())
		assert.False(t, n.IsEmpty())
	})

	t.Run("whitespace only is empty", func(t *testing.T) {
		n := booking.NewNote("   ")
		assert.True(t, n.IsEmpty())
	})
}

func mustSlot(t *testing.T, start, end time.Time) booking.TimeSlot {
	t.Helper()
	slot, err := booking.NewTimeSlot(start, end)
	require.NoError(t, err)
	return slot
}
