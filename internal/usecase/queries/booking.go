package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"

	"booking-core/internal/domain/booking"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error)
	ListByParty(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBookingQueries(uow shared.UnitOfWork) BookingQueries {
	return &bookingQueriesImpl{uow: uow}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error) {
	var b *booking.Booking
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		b, err = tx.Bookings().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !b.IsParticipant(actorID) {
		return nil, shared.ErrNotParticipant
	}
	return NewBookingView(b), nil
}

func (q *bookingQueriesImpl) ListByParty(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]*BookingView, error) {
	if offset < 0 {
		offset = 0
	}
	var rows []*booking.Booking
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		rows, err = tx.Bookings().ListByParty(ctx, actorID, clampLimit(limit), offset)
		return err
	})
	if err != nil {
		return nil, err
	}

	result := make([]*BookingView, len(rows))
	for i, b := range rows {
		result[i] = NewBookingView(b)
	}
	return result, nil
}
