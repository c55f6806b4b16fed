//go:build unit

package commands_test

import (
	"testing"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/event"
	"booking-core/internal/domain/pricing"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"
	"booking-core/internal/usecase/shared"
	"booking-core/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingCommands_Create(t *testing.T) {
	start := builder.DefaultNow.Add(72 * time.Hour)

	t.Run("prices and stores the booking with a creation event", func(t *testing.T) {
		f := newFixture(t)

		view := f.create(t, 3, start)

		want := &queries.BookingView{
			RequesterID:    f.requesterID,
			ProviderID:     f.providerID,
			ServiceID:      f.service.ID(),
			SubjectIDs:     []uuid.UUID{},
			ScheduledStart: start,
			UnitCount:      3,
			TotalCents:     45000,
			Status:         "PENDING",
			CreatedAt:      builder.DefaultNow,
			UpdatedAt:      builder.DefaultNow,
		}
		require.Empty(t, cmp.Diff(want, view, cmpopts.IgnoreFields(queries.BookingView{}, "ID")))

		events := f.pendingEvents(t)
		require.Len(t, events, 1)
		assert.Equal(t, event.BookingCreated, events[0].Type)
		assert.Equal(t, view.ID, events[0].BookingID)
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.bookings.Create(f.ctx, commands.CreateBookingRequest{ServiceID: uuid.New(), UnitCount: 1, ScheduledStart: start}, f.requesterID)
		require.ErrorIs(t, err, pricing.ErrServiceNotFound)
	})

	t.Run("capacity exceeded stores nothing", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.bookings.Create(f.ctx, commands.CreateBookingRequest{
			ServiceID: f.service.ID(), UnitCount: f.service.Capacity() + 1, ScheduledStart: start,
		}, f.requesterID)
		require.ErrorIs(t, err, booking.ErrCapacityExceeded)
		assert.Empty(t, f.pendingEvents(t))
	})

	t.Run("provider cannot book their own service", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.bookings.Create(f.ctx, commands.CreateBookingRequest{
			ServiceID: f.service.ID(), UnitCount: 1, ScheduledStart: start,
		}, f.providerID)
		require.ErrorIs(t, err, booking.ErrSelfBooking)
	})

	t.Run("staffed service needs an available staff member", func(t *testing.T) {
		f := newFixture(t, func(b *builder.ServiceBuilder) { b.RequiresStaffing = true })
		// DefaultNow is a Monday; start is Thursday 08:00 UTC
		req := commands.CreateBookingRequest{ServiceID: f.service.ID(), UnitCount: 1, ScheduledStart: start}

		_, err := f.bookings.Create(f.ctx, req, f.requesterID)
		require.ErrorIs(t, err, booking.ErrNotStaffable)

		a, err := f.schedules.Assign(f.ctx, commands.AssignStaffRequest{StaffID: uuid.New(), ServiceID: f.service.ID()}, f.providerID)
		require.NoError(t, err)
		_, err = f.schedules.SetWindow(f.ctx, a.ID, commands.SetWindowRequest{
			DayOfWeek: int(time.Thursday), Start: "07:00", End: "12:00", IsAvailable: true,
		}, f.providerID)
		require.NoError(t, err)

		_, err = f.bookings.Create(f.ctx, req, f.requesterID)
		require.NoError(t, err)
	})
}

func TestBookingCommands_Respond(t *testing.T) {
	start := builder.DefaultNow.Add(72 * time.Hour)

	t.Run("only the provider responds", func(t *testing.T) {
		f := newFixture(t)
		view := f.create(t, 1, start)

		_, err := f.bookings.Respond(f.ctx, view.ID, commands.RespondRequest{Decision: booking.DecisionAccept}, f.requesterID)
		require.ErrorIs(t, err, shared.ErrNotProvider)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("second response is an invalid transition", func(t *testing.T) {
		f := newFixture(t)
		view := f.createAccepted(t, start)

		_, err := f.bookings.Respond(f.ctx, view.ID, commands.RespondRequest{Decision: booking.DecisionDecline, Note: "changed my mind"}, f.providerID)
		require.ErrorIs(t, err, booking.ErrNotPending)
	})

	t.Run("concurrent responses: exactly one succeeds", func(t *testing.T) {
		f := newFixture(t)
		view := f.create(t, 1, start)

		results := concurrently(10, func(i int) error {
			req := commands.RespondRequest{Decision: booking.DecisionAccept}
			if i%2 == 1 {
				req = commands.RespondRequest{Decision: booking.DecisionDecline, Note: "busy"}
			}
			_, err := f.bookings.Respond(f.ctx, view.ID, req, f.providerID)
			return err
		})

		var ok int
		for _, err := range results {
			if err == nil {
				ok++
				continue
			}
			assert.True(t, errs.Is(err, errs.ErrInvalidTransition), "unexpected error: %v", err)
		}
		assert.Equal(t, 1, ok)
		assert.Len(t, f.pendingEvents(t), 2, "created plus one response")
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.bookings.Respond(f.ctx, uuid.New(), commands.RespondRequest{Decision: booking.DecisionAccept}, f.providerID)
		require.ErrorIs(t, err, booking.ErrBookingNotFound)
	})
}

func TestBookingCommands_Cancel(t *testing.T) {
	start := builder.DefaultNow.Add(72 * time.Hour)

	cases := []struct {
		name    string
		advance time.Duration
		fee     int64
	}{
		{"outside the free window", 0, 0},
		{"free window boundary is free", 24 * time.Hour, 0},
		{"late cancellation", 24*time.Hour + time.Minute, 7500},
		{"no-show", 73 * time.Hour, 15000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			view := f.createAccepted(t, start)
			f.clock.Add(tc.advance)

			cancelled, err := f.bookings.Cancel(f.ctx, view.ID, f.requesterID)
			require.NoError(t, err)
			assert.Equal(t, "CANCELLED", cancelled.Status)
			require.NotNil(t, cancelled.CancellationFeeCents)
			assert.Equal(t, tc.fee, *cancelled.CancellationFeeCents)
		})
	}

	t.Run("outsiders cannot cancel", func(t *testing.T) {
		f := newFixture(t)
		view := f.create(t, 1, start)
		_, err := f.bookings.Cancel(f.ctx, view.ID, uuid.New())
		require.ErrorIs(t, err, shared.ErrNotParticipant)
	})

	t.Run("cancelling twice", func(t *testing.T) {
		f := newFixture(t)
		view := f.create(t, 1, start)
		_, err := f.bookings.Cancel(f.ctx, view.ID, f.providerID)
		require.NoError(t, err)
		_, err = f.bookings.Cancel(f.ctx, view.ID, f.requesterID)
		require.ErrorIs(t, err, booking.ErrNotCancellable)
	})
}

func TestBookingCommands_CompleteAndReprice(t *testing.T) {
	start := builder.DefaultNow.Add(72 * time.Hour)

	t.Run("complete after the appointment", func(t *testing.T) {
		f := newFixture(t)
		view := f.createAccepted(t, start)

		_, err := f.bookings.Complete(f.ctx, view.ID, f.providerID)
		require.ErrorIs(t, err, booking.ErrAppointmentNotDue)

		f.clock.Set(start.Add(f.service.Duration()))
		done, err := f.bookings.Complete(f.ctx, view.ID, f.providerID)
		require.NoError(t, err)
		assert.Equal(t, "COMPLETED", done.Status)
	})

	t.Run("reprice follows the updated service", func(t *testing.T) {
		f := newFixture(t)
		view := f.create(t, 2, start)

		_, err := f.services.Update(f.ctx, f.service.ID(), commands.RegisterServiceRequest{
			Name: f.service.Name(), UnitPriceCents: 20000, BillingUnit: "PER_VISIT",
			DurationMinutes: 60, Capacity: 4,
		}, f.providerID)
		require.NoError(t, err)

		stale, err := queries.NewBookingQueries(f.uow).GetByID(f.ctx, f.requesterID, view.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(30000), stale.TotalCents, "stored totals do not move on their own")

		repriced, err := f.bookings.Reprice(f.ctx, view.ID, f.providerID)
		require.NoError(t, err)
		assert.Equal(t, int64(40000), repriced.TotalCents)
		assert.Contains(t, eventTypes(f.pendingEvents(t)), event.BookingRepriced)
	})

	t.Run("reprice of an accepted booking", func(t *testing.T) {
		f := newFixture(t)
		view := f.createAccepted(t, start)
		_, err := f.bookings.Reprice(f.ctx, view.ID, f.providerID)
		require.ErrorIs(t, err, booking.ErrNotPending)
	})
}
