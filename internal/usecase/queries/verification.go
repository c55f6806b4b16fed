package queries

//go:generate mockgen -source=verification.go -destination=../../../tests/mock/queries/verification.go -package=queriesmock

import (
	"context"

	"booking-core/internal/domain/verification"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type VerificationQueries interface {
	// GetStatus exposes the failed attempt counter callers use to throttle
	// verification. The code value is never returned.
	GetStatus(ctx context.Context, actorID, bookingID uuid.UUID) (*VerificationStatusView, error)
}

type verificationQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewVerificationQueries(uow shared.UnitOfWork, clk clock.Clock) VerificationQueries {
	return &verificationQueriesImpl{uow: uow, clock: clk}
}

func (q *verificationQueriesImpl) GetStatus(ctx context.Context, actorID, bookingID uuid.UUID) (*VerificationStatusView, error) {
	var code *verification.Code
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if !b.IsParticipant(actorID) {
			return shared.ErrNotParticipant
		}

		code, err = tx.Verifications().FindByBookingID(ctx, bookingID)
		if errs.Is(err, verification.ErrCodeNotIssued) {
			code = nil
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return NewVerificationStatusView(bookingID, code, q.clock.Now()), nil
}
