//go:build unit || e2e

package builder

import (
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/pricing"
	reqdto "booking-core/internal/handler/dto/request"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

var DefaultNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC) // a Monday

type BookingBuilder struct {
	Now            time.Time
	RequesterID    uuid.UUID
	Service        *ServiceBuilder
	SubjectIDs     []uuid.UUID
	UnitCount      int
	ScheduledStart time.Time
	ScheduledEnd   *time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Now:            DefaultNow,
		RequesterID:    uuid.New(),
		Service:        NewServiceBuilder(),
		UnitCount:      1,
		ScheduledStart: DefaultNow.Add(72 * time.Hour),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Services() *booking.Services {
	return &booking.Services{
		Clock:      clock.NewMockClock(b.Now),
		Calculator: pricing.NewDefaultCalculator(),
	}
}

func (b *BookingBuilder) Input() (booking.NewBookingInput, error) {
	svc, err := b.Service.BuildDomain()
	if err != nil {
		return booking.NewBookingInput{}, err
	}
	return booking.NewBookingInput{
		RequesterID:    b.RequesterID,
		ProviderID:     b.Service.ProviderID,
		Service:        svc,
		SubjectIDs:     b.SubjectIDs,
		UnitCount:      b.UnitCount,
		ScheduledStart: b.ScheduledStart,
		ScheduledEnd:   b.ScheduledEnd,
	}, nil
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	in, err := b.Input()
	if err != nil {
		return nil, err
	}
	return booking.New(b.Services(), in)
}

// BuildAccepted returns a booking the provider has already accepted, with its
// creation events drained.
func (b *BookingBuilder) BuildAccepted() (*booking.Booking, error) {
	bk, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	if err := bk.Respond(booking.DecisionAccept, "", b.Now); err != nil {
		return nil, err
	}
	bk.PullEvents()
	return bk, nil
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ServiceID:      b.Service.ID,
		SubjectIDs:     b.SubjectIDs,
		UnitCount:      b.UnitCount,
		ScheduledStart: b.ScheduledStart,
		ScheduledEnd:   b.ScheduledEnd,
	}
}

// BuildView panics on invalid input; handler tests only need a well-formed view.
func (b *BookingBuilder) BuildView() *queries.BookingView {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return queries.NewBookingView(bk)
}

func (b *BookingBuilder) WithRequesterID(id uuid.UUID) *BookingBuilder {
	b.RequesterID = id
	return b
}

func (b *BookingBuilder) WithProviderID(id uuid.UUID) *BookingBuilder {
	b.Service.ProviderID = id
	return b
}

func (b *BookingBuilder) WithUnitCount(n int) *BookingBuilder {
	b.UnitCount = n
	return b
}

func (b *BookingBuilder) WithSubjects(ids ...uuid.UUID) *BookingBuilder {
	b.SubjectIDs = ids
	return b
}

func (b *BookingBuilder) WithStart(start time.Time) *BookingBuilder {
	b.ScheduledStart = start
	return b
}

func (b *BookingBuilder) WithEnd(end time.Time) *BookingBuilder {
	b.ScheduledEnd = &end
	return b
}

// AsBoardingStay books three dogs for three nights, day 1 09:00 to day 4 09:00.
func (b *BookingBuilder) AsBoardingStay() *BookingBuilder {
	b.Service.AsBoarding()
	start := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
	b.ScheduledStart = start
	b.WithEnd(start.Add(72 * time.Hour))
	b.SubjectIDs = []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	b.UnitCount = 0
	return b
}
