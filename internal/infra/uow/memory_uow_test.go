//go:build unit

package uow_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/event"
	"booking-core/internal/domain/pricing"
	"booking-core/internal/infra/uow"
	"booking-core/internal/usecase/shared"
	"booking-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUoW_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	u := uow.NewMemoryUoW()
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	boom := errors.New("boom")
	err = u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, tx.Bookings().Create(ctx, b))
		require.NoError(t, tx.Events().Append(ctx, b.PullEvents()...))
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = u.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Bookings().FindByID(ctx, b.ID())
		assert.ErrorIs(t, err, booking.ErrBookingNotFound)

		pending, err := tx.Events().FetchPending(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, pending)
		return nil
	})
	require.NoError(t, err)
}

func TestMemoryUoW_ReadOnlyRejectsWrites(t *testing.T) {
	ctx := context.Background()
	u := uow.NewMemoryUoW()
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	err = u.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, b)
	})
	require.Error(t, err)
}

func TestMemoryUoW_VersionCheck(t *testing.T) {
	ctx := context.Background()
	u := uow.NewMemoryUoW()
	bb := builder.NewBookingBuilder()
	b, err := bb.BuildDomain()
	require.NoError(t, err)
	require.NoError(t, u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, b)
	}))

	var stale *booking.Booking
	require.NoError(t, u.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		stale, err = tx.Bookings().FindByID(ctx, b.ID())
		return err
	}))

	require.NoError(t, u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		fresh, err := tx.Bookings().FindByIDForUpdate(ctx, b.ID())
		if err != nil {
			return err
		}
		require.NoError(t, fresh.Respond(booking.DecisionAccept, "", bb.Now))
		return tx.Bookings().Update(ctx, fresh)
	}))

	err = u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, stale.Respond(booking.DecisionDecline, "late", bb.Now))
		return tx.Bookings().Update(ctx, stale)
	})
	require.ErrorIs(t, err, booking.ErrConcurrentUpdate)
}

func TestMemoryUoW_Outbox(t *testing.T) {
	ctx := context.Background()
	u := uow.NewMemoryUoW()
	bookingID := uuid.New()
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	first := event.New(event.BookingCreated, bookingID, now, nil)
	second := event.New(event.BookingAccepted, bookingID, now.Add(time.Minute), nil)

	require.NoError(t, u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Events().Append(ctx, first, second)
	}))
	require.NoError(t, u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Events().MarkPublished(ctx, []uuid.UUID{first.ID}, now)
	}))

	require.NoError(t, u.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		pending, err := tx.Events().FetchPending(ctx, 10)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, second.ID, pending[0].ID)
		return nil
	}))
}

func TestMemoryServiceCatalog(t *testing.T) {
	ctx := context.Background()
	c := uow.NewMemoryServiceCatalog()
	providerID := uuid.New()

	walk := builder.NewServiceBuilder().WithProviderID(providerID).MustBuild()
	board := builder.NewServiceBuilder().WithProviderID(providerID).AsBoarding().MustBuild()
	other := builder.NewServiceBuilder().MustBuild()
	for _, svc := range []*pricing.ServiceDefinition{walk, board, other} {
		require.NoError(t, c.Save(ctx, svc))
	}

	got, err := c.FindByID(ctx, walk.ID())
	require.NoError(t, err)
	assert.Equal(t, walk.Name(), got.Name())

	_, err = c.FindByID(ctx, uuid.New())
	require.ErrorIs(t, err, pricing.ErrServiceNotFound)

	list, err := c.ListByProvider(ctx, providerID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Boarding", list[0].Name(), "sorted by name")
}
