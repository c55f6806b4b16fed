package commands

//go:generate mockgen -source=verification.go -destination=../../../tests/mock/commands/verification.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/verification"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// IssuedCode carries the code value only when the caller is the provider. The
// requester verifies the code spoken by attending staff, so it must never be
// shown to them.
type IssuedCode struct {
	BookingID uuid.UUID
	Code      string
	ExpiresAt time.Time
	Issued    bool
}

type VerificationCommands interface {
	Issue(ctx context.Context, bookingID, actorID uuid.UUID) (*IssuedCode, error)
	Verify(ctx context.Context, bookingID uuid.UUID, supplied string, actorID uuid.UUID) (*verification.Result, error)
	Resend(ctx context.Context, bookingID, actorID uuid.UUID) (*IssuedCode, error)
}

type verificationCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	window    verification.Window
	generator verification.Generator
}

func NewVerificationCommands(uow shared.UnitOfWork, clk clock.Clock, window verification.Window, gen verification.Generator) VerificationCommands {
	return &verificationCommandsImpl{
		uow:       uow,
		clock:     clk,
		window:    window,
		generator: gen,
	}
}

func (uc *verificationCommandsImpl) Issue(ctx context.Context, bookingID, actorID uuid.UUID) (*IssuedCode, error) {
	var (
		result   *verification.Code
		provider bool
		minted   bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if !b.IsParticipant(actorID) {
			return shared.ErrNotParticipant
		}
		provider = b.IsProvider(actorID)

		existing, err := uc.findCode(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		code, issued, err := verification.Issue(existing, b, uc.window, uc.generator, uc.clock.Now())
		if err != nil {
			return err
		}
		if !issued {
			result = code
			return nil
		}

		stored, err := tx.Verifications().InsertIfAbsent(ctx, code)
		if err != nil {
			return err
		}
		if stored.Value() != code.Value() {
			// lost the race; the first writer's code stands
			result = stored
			return nil
		}
		result, minted = stored, true
		return tx.Events().Append(ctx, code.PullEvents()...)
	})
	if err != nil {
		return nil, err
	}

	if minted {
		slog.InfoContext(ctx, "verification code issued", "booking_id", bookingID, "expires_at", result.ExpiresAt())
	}
	return uc.toIssued(result, provider, minted), nil
}

// Verify commits the attempt counter even when the code does not match, then
// reports the mismatch to the caller.
func (uc *verificationCommandsImpl) Verify(ctx context.Context, bookingID uuid.UUID, supplied string, actorID uuid.UUID) (*verification.Result, error) {
	var (
		result    verification.Result
		verifyErr error
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if !b.IsRequester(actorID) {
			return shared.ErrNotRequester
		}
		if b.Status() != booking.StatusAccepted && b.Status() != booking.StatusCompleted {
			return verification.ErrBookingNotAccepted
		}

		code, err := tx.Verifications().FindByBookingIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}

		attemptsBefore := code.FailedAttempts()
		result, verifyErr = code.Verify(supplied, actorID, uc.clock.Now())
		if verifyErr == nil || code.FailedAttempts() != attemptsBefore {
			if err = tx.Verifications().Update(ctx, code); err != nil {
				return err
			}
		}
		return tx.Events().Append(ctx, code.PullEvents()...)
	})
	if err != nil {
		return nil, err
	}

	if verifyErr != nil {
		slog.InfoContext(ctx, "verification attempt rejected",
			"booking_id", bookingID,
			"failed_attempts", result.FailedAttempts,
			"reason", verifyErr.Error())
		return &result, verifyErr
	}
	slog.InfoContext(ctx, "verification code accepted", "booking_id", bookingID)
	return &result, nil
}

func (uc *verificationCommandsImpl) Resend(ctx context.Context, bookingID, actorID uuid.UUID) (*IssuedCode, error) {
	var (
		code     *verification.Code
		provider bool
	)
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if !b.IsParticipant(actorID) {
			return shared.ErrNotParticipant
		}
		provider = b.IsProvider(actorID)

		code, err = tx.Verifications().FindByBookingID(ctx, bookingID)
		if err != nil {
			return err
		}
		_, err = code.Resend(uc.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return uc.toIssued(code, provider, false), nil
}

func (uc *verificationCommandsImpl) findCode(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*verification.Code, error) {
	code, err := tx.Verifications().FindByBookingIDForUpdate(ctx, bookingID)
	if err != nil {
		if errs.Is(err, verification.ErrCodeNotIssued) {
			return nil, nil
		}
		return nil, err
	}
	return code, nil
}

func (uc *verificationCommandsImpl) toIssued(c *verification.Code, provider, minted bool) *IssuedCode {
	out := &IssuedCode{
		BookingID: c.BookingID(),
		ExpiresAt: c.ExpiresAt(),
		Issued:    minted,
	}
	if provider {
		out.Code = c.Value()
	}
	return out
}
