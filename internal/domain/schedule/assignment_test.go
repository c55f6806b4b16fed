//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"booking-core/internal/domain/schedule"
	"booking-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tod(t *testing.T, s string) schedule.TimeOfDay {
	t.Helper()
	v, err := schedule.ParseTimeOfDay(s)
	require.NoError(t, err)
	return v
}

func newAssignment(t *testing.T) *schedule.Assignment {
	t.Helper()
	a, err := schedule.NewAssignment(uuid.New(), uuid.New(), uuid.New(), time.Now())
	require.NoError(t, err)
	return a
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:30", 510, false},
		{"23:59", 1439, false},
		{"24:00", 1440, false},
		{"24:01", 0, true},
		{"8:30", 0, true},
		{"08:60", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := schedule.ParseTimeOfDay(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, got.Minutes())
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestNewAssignment(t *testing.T) {
	_, err := schedule.NewAssignment(uuid.New(), uuid.Nil, uuid.New(), time.Now())
	require.ErrorIs(t, err, schedule.ErrStaffRequired)

	_, err = schedule.NewAssignment(uuid.New(), uuid.New(), uuid.Nil, time.Now())
	require.ErrorIs(t, err, schedule.ErrServiceRequired)

	_, err = schedule.NewAssignment(uuid.Nil, uuid.New(), uuid.New(), time.Now())
	require.ErrorIs(t, err, schedule.ErrProviderRequired)
}

func TestAddWindow(t *testing.T) {
	monday := int(time.Monday)

	t.Run("overlapping monday windows", func(t *testing.T) {
		a := newAssignment(t)
		_, err := a.AddWindow(monday, tod(t, "08:00"), tod(t, "12:00"), true)
		require.NoError(t, err)

		_, err = a.AddWindow(monday, tod(t, "10:00"), tod(t, "14:00"), true)
		require.ErrorIs(t, err, schedule.ErrWindowOverlap)
		assert.True(t, errs.Is(err, errs.ErrOverlap))
		assert.Len(t, a.Windows(), 1)
	})

	t.Run("touching windows are allowed", func(t *testing.T) {
		a := newAssignment(t)
		_, err := a.AddWindow(monday, tod(t, "08:00"), tod(t, "12:00"), true)
		require.NoError(t, err)
		_, err = a.AddWindow(monday, tod(t, "12:00"), tod(t, "14:00"), true)
		require.NoError(t, err)
		_, err = a.AddWindow(monday, tod(t, "06:00"), tod(t, "08:00"), false)
		require.NoError(t, err)
		assert.Len(t, a.Windows(), 3)
	})

	t.Run("same hours on another day", func(t *testing.T) {
		a := newAssignment(t)
		_, err := a.AddWindow(monday, tod(t, "08:00"), tod(t, "12:00"), true)
		require.NoError(t, err)
		_, err = a.AddWindow(int(time.Tuesday), tod(t, "08:00"), tod(t, "12:00"), true)
		require.NoError(t, err)
	})

	t.Run("enclosing window overlaps", func(t *testing.T) {
		a := newAssignment(t)
		_, err := a.AddWindow(monday, tod(t, "09:00"), tod(t, "10:00"), true)
		require.NoError(t, err)
		_, err = a.AddWindow(monday, tod(t, "08:00"), tod(t, "18:00"), true)
		require.ErrorIs(t, err, schedule.ErrWindowOverlap)
	})

	t.Run("validation", func(t *testing.T) {
		a := newAssignment(t)
		_, err := a.AddWindow(7, tod(t, "08:00"), tod(t, "12:00"), true)
		require.ErrorIs(t, err, schedule.ErrInvalidDay)
		_, err = a.AddWindow(-1, tod(t, "08:00"), tod(t, "12:00"), true)
		require.ErrorIs(t, err, schedule.ErrInvalidDay)
		_, err = a.AddWindow(monday, tod(t, "12:00"), tod(t, "12:00"), true)
		require.ErrorIs(t, err, schedule.ErrInvalidWindow)
		_, err = a.AddWindow(monday, tod(t, "13:00"), tod(t, "12:00"), true)
		require.ErrorIs(t, err, schedule.ErrInvalidWindow)
	})
}

func TestRemoveWindow(t *testing.T) {
	a := newAssignment(t)
	w, err := a.AddWindow(1, tod(t, "08:00"), tod(t, "12:00"), true)
	require.NoError(t, err)
	assert.True(t, a.HasWindow(w.ID))

	require.NoError(t, a.RemoveWindow(w.ID))
	assert.Empty(t, a.Windows())
	require.ErrorIs(t, a.RemoveWindow(w.ID), schedule.ErrWindowNotFound)

	_, err = a.AddWindow(1, tod(t, "10:00"), tod(t, "14:00"), true)
	require.NoError(t, err, "removed window no longer blocks")
}

func TestCovers(t *testing.T) {
	a := newAssignment(t)
	_, err := a.AddWindow(int(time.Monday), tod(t, "08:00"), tod(t, "12:00"), true)
	require.NoError(t, err)
	_, err = a.AddWindow(int(time.Tuesday), tod(t, "08:00"), tod(t, "12:00"), false)
	require.NoError(t, err)

	monday := func(hh, mm int) time.Time { return time.Date(2026, 3, 2, hh, mm, 0, 0, time.UTC) }

	tests := []struct {
		name string
		at   time.Time
		d    time.Duration
		want bool
	}{
		{"start of window", monday(8, 0), time.Hour, true},
		{"fits exactly to end", monday(11, 0), time.Hour, true},
		{"runs past end", monday(11, 30), time.Hour, false},
		{"before window", monday(7, 59), time.Hour, false},
		{"drop off only at last minute", monday(11, 59), 0, true},
		{"drop off at window end", monday(12, 0), 0, false},
		{"unavailable window", monday(9, 0).AddDate(0, 0, 1), time.Hour, false},
		{"other day", monday(9, 0).AddDate(0, 0, 2), time.Hour, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Covers(tt.at, time.UTC, tt.d))
		})
	}

	t.Run("evaluated in the schedule time zone", func(t *testing.T) {
		loc := time.FixedZone("UTC+2", 2*60*60)
		// 07:00 UTC is 09:00 on Monday in UTC+2
		assert.True(t, a.Covers(monday(7, 0), loc, time.Hour))
		assert.False(t, a.Covers(monday(7, 0), time.UTC, time.Hour))
	})

	t.Run("any assignment can staff the appointment", func(t *testing.T) {
		empty := newAssignment(t)
		assert.True(t, schedule.Staffable([]*schedule.Assignment{empty, a}, monday(9, 0), time.UTC, time.Hour))
		assert.False(t, schedule.Staffable([]*schedule.Assignment{empty}, monday(9, 0), time.UTC, time.Hour))
		assert.False(t, schedule.Staffable(nil, monday(9, 0), time.UTC, time.Hour))
	})
}
