//go:build unit

package commands_test

import (
	"testing"
	"time"

	"booking-core/internal/domain/schedule"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleCommands(t *testing.T) {
	monday := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	t.Run("assignment belongs to the service owner", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.schedules.Assign(f.ctx, commands.AssignStaffRequest{StaffID: uuid.New(), ServiceID: f.service.ID()}, uuid.New())
		require.ErrorIs(t, err, shared.ErrNotOwner)
	})

	t.Run("staff is assigned once per service", func(t *testing.T) {
		f := newFixture(t)
		req := commands.AssignStaffRequest{StaffID: uuid.New(), ServiceID: f.service.ID()}
		_, err := f.schedules.Assign(f.ctx, req, f.providerID)
		require.NoError(t, err)
		_, err = f.schedules.Assign(f.ctx, req, f.providerID)
		require.ErrorIs(t, err, schedule.ErrAlreadyAssigned)
	})

	t.Run("windows", func(t *testing.T) {
		f := newFixture(t)
		a, err := f.schedules.Assign(f.ctx, commands.AssignStaffRequest{StaffID: uuid.New(), ServiceID: f.service.ID()}, f.providerID)
		require.NoError(t, err)

		window := func(start, end string) (string, error) {
			w, err := f.schedules.SetWindow(f.ctx, a.ID, commands.SetWindowRequest{
				DayOfWeek: int(time.Monday), Start: start, End: end, IsAvailable: true,
			}, f.providerID)
			if err != nil {
				return "", err
			}
			return w.ID.String(), nil
		}

		staffable := func() bool {
			ok, err := f.schedules.CheckStaffable(f.ctx, f.providerID, f.service.ID(), monday)
			require.NoError(t, err)
			return ok
		}
		assert.False(t, staffable())

		first, err := window("09:00", "12:00")
		require.NoError(t, err)
		assert.True(t, staffable())

		_, err = window("11:30", "13:00")
		require.ErrorIs(t, err, schedule.ErrWindowOverlap)

		_, err = window("12:00", "13:00")
		require.NoError(t, err, "touching windows are allowed")

		_, err = window("14:00", "13:00")
		require.ErrorIs(t, err, schedule.ErrInvalidWindow)

		_, err = window("9am", "13:00")
		require.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)

		err = f.schedules.RemoveWindow(f.ctx, uuid.MustParse(first), uuid.New())
		require.ErrorIs(t, err, shared.ErrNotOwner)

		require.NoError(t, f.schedules.RemoveWindow(f.ctx, uuid.MustParse(first), f.providerID))
		assert.False(t, staffable())
	})

	t.Run("another provider's service is never staffable", func(t *testing.T) {
		f := newFixture(t)
		ok, err := f.schedules.CheckStaffable(f.ctx, uuid.New(), f.service.ID(), monday)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unassign", func(t *testing.T) {
		f := newFixture(t)
		a, err := f.schedules.Assign(f.ctx, commands.AssignStaffRequest{StaffID: uuid.New(), ServiceID: f.service.ID()}, f.providerID)
		require.NoError(t, err)

		require.ErrorIs(t, f.schedules.Unassign(f.ctx, a.ID, uuid.New()), shared.ErrNotOwner)
		require.NoError(t, f.schedules.Unassign(f.ctx, a.ID, f.providerID))
		require.ErrorIs(t, f.schedules.Unassign(f.ctx, a.ID, f.providerID), schedule.ErrAssignmentNotFound)
	})
}
