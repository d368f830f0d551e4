//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"probook/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinuteOfDay(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected schedule.MinuteOfDay
		errIs    error
	}{
		{name: "morning", input: "09:00", expected: 540},
		{name: "midnight", input: "00:00", expected: 0},
		{name: "end of day", input: "23:59", expected: 1439},
		{name: "seconds are ignored", input: "09:30:15", expected: 570},
		{name: "hour out of range", input: "24:00", errIs: schedule.ErrInvalidTimeOfDay},
		{name: "minute out of range", input: "10:60", errIs: schedule.ErrInvalidTimeOfDay},
		{name: "not a time", input: "abc", errIs: schedule.ErrInvalidTimeOfDay},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := schedule.ParseMinuteOfDay(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestMinuteOfDayString(t *testing.T) {
	assert.Equal(t, "09:05", schedule.MinuteOfDay(545).String())
	assert.Equal(t, "00:00", schedule.MinuteOfDay(0).String())
}

func TestNewWindow(t *testing.T) {
	t.Run("valid window", func(t *testing.T) {
		w, err := schedule.NewWindow(time.Monday, 540, 1020)
		require.NoError(t, err)
		assert.Equal(t, time.Monday, w.DayOfWeek)
	})

	t.Run("start must precede end", func(t *testing.T) {
		_, err := schedule.NewWindow(time.Monday, 1020, 540)
		assert.Error(t, err)

		_, err = schedule.NewWindow(time.Monday, 540, 540)
		assert.Error(t, err)
	})
}

func TestWindowContains(t *testing.T) {
	// 09:00 - 17:00
	w, err := schedule.NewWindow(time.Monday, 540, 1020)
	require.NoError(t, err)

	cases := []struct {
		name     string
		start    schedule.MinuteOfDay
		end      schedule.MinuteOfDay
		contains bool
	}{
		{name: "strictly inside", start: 600, end: 720, contains: true},
		{name: "exactly the window bounds", start: 540, end: 1020, contains: true},
		{name: "starts at open bound", start: 540, end: 600, contains: true},
		{name: "ends at close bound", start: 960, end: 1020, contains: true},
		{name: "starts one minute early", start: 539, end: 600, contains: false},
		{name: "ends one minute late", start: 960, end: 1021, contains: false},
		{name: "entirely before", start: 0, end: 120, contains: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.contains, w.Contains(tc.start, tc.end))
		})
	}
}
