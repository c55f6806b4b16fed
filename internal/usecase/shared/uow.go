package shared

import (
	"context"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/event"
	"booking-core/internal/domain/pricing"
	"booking-core/internal/domain/schedule"
	"booking-core/internal/domain/verification"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Verifications() VerificationRepository
	Schedules() ScheduleRepository
	Events() EventOutbox
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// Update persists b only if the stored version still equals b.Version().
	Update(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListByParty(ctx context.Context, partyID uuid.UUID, limit, offset int) ([]*booking.Booking, error)
}

type VerificationRepository interface {
	// FindByBookingID returns verification.ErrCodeNotIssued when no code exists.
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*verification.Code, error)
	FindByBookingIDForUpdate(ctx context.Context, bookingID uuid.UUID) (*verification.Code, error)
	// InsertIfAbsent stores c unless a code already exists, and returns whichever is stored.
	InsertIfAbsent(ctx context.Context, c *verification.Code) (*verification.Code, error)
	Update(ctx context.Context, c *verification.Code) error
}

type ScheduleRepository interface {
	CreateAssignment(ctx context.Context, a *schedule.Assignment) error
	DeleteAssignment(ctx context.Context, id uuid.UUID) error
	FindAssignment(ctx context.Context, id uuid.UUID) (*schedule.Assignment, error)
	FindAssignmentForUpdate(ctx context.Context, id uuid.UUID) (*schedule.Assignment, error)
	FindAssignmentByWindow(ctx context.Context, windowID uuid.UUID) (*schedule.Assignment, error)
	// ListAssignments filters by service when serviceID is not uuid.Nil.
	ListAssignments(ctx context.Context, providerID, serviceID uuid.UUID) ([]*schedule.Assignment, error)
	AddWindow(ctx context.Context, w schedule.Window) error
	DeleteWindow(ctx context.Context, id uuid.UUID) error
}

type EventOutbox interface {
	Append(ctx context.Context, events ...event.Event) error
	FetchPending(ctx context.Context, limit int) ([]event.Event, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error
}

// ServiceCatalog resolves service definitions outside of booking transactions.
type ServiceCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (*pricing.ServiceDefinition, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*pricing.ServiceDefinition, error)
	Save(ctx context.Context, svc *pricing.ServiceDefinition) error
}
