package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/cancellation"
	"booking-core/internal/domain/pricing"
	"booking-core/internal/domain/schedule"
	"booking-core/internal/usecase/queries"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ServiceID      uuid.UUID
	SubjectIDs     []uuid.UUID
	UnitCount      int
	ScheduledStart time.Time
	ScheduledEnd   *time.Time
}

type RespondRequest struct {
	Decision booking.Decision
	Note     string
}

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest, requesterID uuid.UUID) (*queries.BookingView, error)
	Respond(ctx context.Context, bookingID uuid.UUID, req RespondRequest, actorID uuid.UUID) (*queries.BookingView, error)
	Cancel(ctx context.Context, bookingID, actorID uuid.UUID) (*queries.BookingView, error)
	Complete(ctx context.Context, bookingID, actorID uuid.UUID) (*queries.BookingView, error)
	Reprice(ctx context.Context, bookingID, actorID uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	catalog  shared.ServiceCatalog
	services *booking.Services
	policy   cancellation.Policy
	location *time.Location
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	catalog shared.ServiceCatalog,
	services *booking.Services,
	policy cancellation.Policy,
	location *time.Location,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		catalog:  catalog,
		services: services,
		policy:   policy,
		location: location,
	}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, req CreateBookingRequest, requesterID uuid.UUID) (*queries.BookingView, error) {
	if req.ServiceID == uuid.Nil {
		return nil, booking.ErrServiceRequired
	}
	svc, err := uc.catalog.FindByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := booking.New(uc.services, booking.NewBookingInput{
			RequesterID:    requesterID,
			ProviderID:     svc.ProviderID(),
			Service:        svc,
			SubjectIDs:     req.SubjectIDs,
			UnitCount:      req.UnitCount,
			ScheduledStart: req.ScheduledStart,
			ScheduledEnd:   req.ScheduledEnd,
		})
		if derr != nil {
			return derr
		}

		if svc.RequiresStaffing() {
			if derr = uc.ensureStaffable(ctx, tx, svc, b.ScheduledStart()); derr != nil {
				return derr
			}
		}

		if derr = tx.Bookings().Create(ctx, b); derr != nil {
			return derr
		}
		created = b
		return tx.Events().Append(ctx, b.PullEvents()...)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking created",
		"booking_id", created.ID(),
		"service_id", svc.ID(),
		"unit_count", created.UnitCount(),
		"total_cents", created.Total().Cents())
	return queries.NewBookingView(created), nil
}

func (uc *bookingCommandsImpl) ensureStaffable(ctx context.Context, tx shared.Tx, svc *pricing.ServiceDefinition, start time.Time) error {
	assignments, err := tx.Schedules().ListAssignments(ctx, svc.ProviderID(), svc.ID())
	if err != nil {
		return err
	}
	if !schedule.Staffable(assignments, start, uc.location, staffedDuration(svc)) {
		return booking.ErrNotStaffable
	}
	return nil
}

func (uc *bookingCommandsImpl) Respond(ctx context.Context, bookingID uuid.UUID, req RespondRequest, actorID uuid.UUID) (*queries.BookingView, error) {
	return uc.transition(ctx, bookingID, func(b *booking.Booking) error {
		if !b.IsProvider(actorID) {
			return shared.ErrNotProvider
		}
		return b.Respond(req.Decision, req.Note, uc.services.Clock.Now())
	})
}

func (uc *bookingCommandsImpl) Cancel(ctx context.Context, bookingID, actorID uuid.UUID) (*queries.BookingView, error) {
	return uc.transition(ctx, bookingID, func(b *booking.Booking) error {
		if !b.IsParticipant(actorID) {
			return shared.ErrNotParticipant
		}
		return b.Cancel(uc.policy, uc.services.Clock.Now())
	})
}

func (uc *bookingCommandsImpl) Complete(ctx context.Context, bookingID, actorID uuid.UUID) (*queries.BookingView, error) {
	return uc.transition(ctx, bookingID, func(b *booking.Booking) error {
		if !b.IsProvider(actorID) {
			return shared.ErrNotProvider
		}
		return b.Complete(uc.services.Clock.Now())
	})
}

func (uc *bookingCommandsImpl) Reprice(ctx context.Context, bookingID, actorID uuid.UUID) (*queries.BookingView, error) {
	return uc.transition(ctx, bookingID, func(b *booking.Booking) error {
		if !b.IsProvider(actorID) {
			return shared.ErrNotProvider
		}
		svc, err := uc.catalog.FindByID(ctx, b.ServiceID())
		if err != nil {
			return err
		}
		return b.Reprice(uc.services.Calculator, svc, uc.services.Clock.Now())
	})
}

// transition loads the booking under a row lock, applies fn and persists the
// result with its events. A stale version surfaces as an invalid transition.
func (uc *bookingCommandsImpl) transition(ctx context.Context, bookingID uuid.UUID, fn func(b *booking.Booking) error) (*queries.BookingView, error) {
	var updated *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		from := b.Status()
		if err = fn(b); err != nil {
			return err
		}
		if err = tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		if err = tx.Events().Append(ctx, b.PullEvents()...); err != nil {
			return err
		}

		slog.InfoContext(ctx, "booking transitioned",
			"booking_id", b.ID(),
			"from", from,
			"to", b.Status())
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	return queries.NewBookingView(updated), nil
}

// staffedDuration is how long staff must be available from the scheduled
// start. Stays only need someone at drop-off.
func staffedDuration(svc *pricing.ServiceDefinition) time.Duration {
	if svc.IsStay() {
		return 0
	}
	return svc.Duration()
}
