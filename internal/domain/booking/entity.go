package booking

import (
	"strings"
	"time"

	"booking-core/internal/domain/cancellation"
	"booking-core/internal/domain/event"
	"booking-core/internal/domain/pricing"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/ptr"

	"github.com/google/uuid"
)

type Services struct {
	Clock      clock.Clock
	Calculator pricing.Calculator
}

type Booking struct {
	id              uuid.UUID
	requesterID     uuid.UUID
	providerID      uuid.UUID
	serviceID       uuid.UUID
	subjectIDs      []uuid.UUID
	scheduledStart  time.Time
	scheduledEnd    *time.Time
	serviceDuration time.Duration
	unitCount       int
	total           pricing.Money
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
	respondedAt     *time.Time
	responseNote    *string
	declineReason   *string
	cancelledAt     *time.Time
	cancellationFee *pricing.Money
	completedAt     *time.Time
	version         int64

	events event.Recorder
}

type NewBookingInput struct {
	RequesterID    uuid.UUID
	ProviderID     uuid.UUID
	Service        *pricing.ServiceDefinition
	SubjectIDs     []uuid.UUID
	UnitCount      int
	ScheduledStart time.Time
	ScheduledEnd   *time.Time
}

func New(services *Services, in NewBookingInput) (*Booking, error) {
	if in.RequesterID == uuid.Nil {
		return nil, ErrRequesterRequired
	}
	if in.ProviderID == uuid.Nil {
		return nil, ErrProviderRequired
	}
	if in.RequesterID == in.ProviderID {
		return nil, ErrSelfBooking
	}
	if in.Service == nil {
		return nil, ErrServiceRequired
	}
	if in.Service.ProviderID() != in.ProviderID {
		return nil, ErrServiceProviderMismatch
	}
	if in.ScheduledStart.IsZero() {
		return nil, ErrScheduledStartRequired
	}

	subjects, err := normalizeSubjects(in.SubjectIDs)
	if err != nil {
		return nil, err
	}

	units := in.UnitCount
	if units == 0 {
		units = max(1, len(subjects))
	}
	if units < 1 {
		return nil, ErrInvalidUnitCount
	}

	now := services.Clock.Now()
	if !in.ScheduledStart.After(now) {
		return nil, ErrScheduledStartInPast
	}
	if in.ScheduledEnd != nil && !in.ScheduledEnd.After(in.ScheduledStart) {
		return nil, ErrScheduledEndNotAfter
	}
	if !in.Service.AllowsUnits(units) {
		return nil, ErrCapacityExceeded
	}

	total, err := services.Calculator.Price(in.Service, units, in.ScheduledStart, in.ScheduledEnd)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		id:              uuid.New(),
		requesterID:     in.RequesterID,
		providerID:      in.ProviderID,
		serviceID:       in.Service.ID(),
		subjectIDs:      subjects,
		scheduledStart:  in.ScheduledStart,
		scheduledEnd:    copyTime(in.ScheduledEnd),
		serviceDuration: in.Service.Duration(),
		unitCount:       units,
		total:           total,
		status:          StatusPending,
		createdAt:       now,
		updatedAt:       now,
	}
	b.record(event.BookingCreated, now, map[string]any{
		"requester_id":    b.requesterID,
		"provider_id":     b.providerID,
		"service_id":      b.serviceID,
		"scheduled_start": b.scheduledStart,
		"unit_count":      b.unitCount,
		"total_cents":     b.total.Cents(),
	})
	return b, nil
}

type ReconstructParams struct {
	ID                   uuid.UUID
	RequesterID          uuid.UUID
	ProviderID           uuid.UUID
	ServiceID            uuid.UUID
	SubjectIDs           []uuid.UUID
	ScheduledStart       time.Time
	ScheduledEnd         *time.Time
	ServiceDuration      time.Duration
	UnitCount            int
	TotalCents           int64
	Status               Status
	CreatedAt            time.Time
	UpdatedAt            time.Time
	RespondedAt          *time.Time
	ResponseNote         *string
	DeclineReason        *string
	CancelledAt          *time.Time
	CancellationFeeCents *int64
	CompletedAt          *time.Time
	Version              int64
}

// Reconstruct rebuilds a persisted booking without re-running creation rules.
func Reconstruct(p ReconstructParams) *Booking {
	b := &Booking{
		id:              p.ID,
		requesterID:     p.RequesterID,
		providerID:      p.ProviderID,
		serviceID:       p.ServiceID,
		subjectIDs:      append([]uuid.UUID(nil), p.SubjectIDs...),
		scheduledStart:  p.ScheduledStart,
		scheduledEnd:    copyTime(p.ScheduledEnd),
		serviceDuration: p.ServiceDuration,
		unitCount:       p.UnitCount,
		total:           pricing.Money{},
		status:          p.Status,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
		respondedAt:     copyTime(p.RespondedAt),
		responseNote:    p.ResponseNote,
		declineReason:   p.DeclineReason,
		cancelledAt:     copyTime(p.CancelledAt),
		completedAt:     copyTime(p.CompletedAt),
		version:         p.Version,
	}
	if total, err := pricing.NewMoney(p.TotalCents); err == nil {
		b.total = total
	}
	if p.CancellationFeeCents != nil {
		if fee, err := pricing.NewMoney(*p.CancellationFeeCents); err == nil {
			b.cancellationFee = &fee
		}
	}
	return b
}

// Respond records the provider's decision. Only a pending booking can be answered.
func (b *Booking) Respond(decision Decision, note string, now time.Time) error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	note = strings.TrimSpace(note)

	switch decision {
	case DecisionAccept:
		b.status = StatusAccepted
		b.responseNote = ptr.NonZero(note)
		b.record(event.BookingAccepted, now, map[string]any{"note": note})
	case DecisionDecline:
		if note == "" {
			return ErrDeclineReasonRequired
		}
		b.status = StatusDeclined
		b.declineReason = &note
		b.responseNote = &note
		b.record(event.BookingDeclined, now, map[string]any{"reason": note})
	default:
		return ErrInvalidDecision
	}

	b.respondedAt = &now
	b.updatedAt = now
	return nil
}

// Cancel applies the cancellation policy and freezes the fee on the booking.
func (b *Booking) Cancel(policy cancellation.Policy, cancelledAt time.Time) error {
	if b.status != StatusPending && b.status != StatusAccepted {
		return ErrNotCancellable
	}

	fee := policy.Fee(b.total, b.scheduledStart, cancelledAt)
	previous := b.status

	b.status = StatusCancelled
	b.cancelledAt = &cancelledAt
	b.cancellationFee = &fee
	b.updatedAt = cancelledAt
	b.record(event.BookingCancelled, cancelledAt, map[string]any{
		"previous_status": previous,
		"fee_cents":       fee.Cents(),
	})
	return nil
}

func (b *Booking) Complete(now time.Time) error {
	if b.status != StatusAccepted {
		return ErrNotAccepted
	}
	if now.Before(b.dueAt()) {
		return ErrAppointmentNotDue
	}

	b.status = StatusCompleted
	b.completedAt = &now
	b.updatedAt = now
	b.record(event.BookingCompleted, now, nil)
	return nil
}

// Reprice is the only way to change a frozen total. It is limited to pending
// bookings so the provider never accepts a price that later moves.
func (b *Booking) Reprice(calc pricing.Calculator, svc *pricing.ServiceDefinition, now time.Time) error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	if svc == nil || svc.ID() != b.serviceID {
		return ErrServiceRequired
	}
	if !svc.AllowsUnits(b.unitCount) {
		return ErrCapacityExceeded
	}

	total, err := calc.Price(svc, b.unitCount, b.scheduledStart, b.scheduledEnd)
	if err != nil {
		return err
	}

	previous := b.total
	b.total = total
	b.serviceDuration = svc.Duration()
	b.updatedAt = now
	b.record(event.BookingRepriced, now, map[string]any{
		"previous_total_cents": previous.Cents(),
		"total_cents":          total.Cents(),
	})
	return nil
}

// dueAt is when the appointment is considered delivered: the departure time for
// stays, otherwise the scheduled start.
func (b *Booking) dueAt() time.Time {
	if b.scheduledEnd != nil {
		return *b.scheduledEnd
	}
	return b.scheduledStart
}

// EndsAt is the end of the occupied interval, used for staffing checks.
func (b *Booking) EndsAt() time.Time {
	if b.scheduledEnd != nil {
		return *b.scheduledEnd
	}
	return b.scheduledStart.Add(b.serviceDuration)
}

func (b *Booking) IsRequester(partyID uuid.UUID) bool { return b.requesterID == partyID }
func (b *Booking) IsProvider(partyID uuid.UUID) bool  { return b.providerID == partyID }
func (b *Booking) IsParticipant(partyID uuid.UUID) bool {
	return b.IsRequester(partyID) || b.IsProvider(partyID)
}

// SetVersion is called by repositories after a successful optimistic write.
func (b *Booking) SetVersion(v int64) {
	b.version = v
}

func (b *Booking) PullEvents() []event.Event {
	return b.events.PullEvents()
}

func (b *Booking) record(t event.Type, at time.Time, payload map[string]any) {
	if payload == nil {
		payload = map[string]any{}
	}
	payload["status"] = b.status
	b.events.Record(event.New(t, b.id, at, payload))
}

func (b *Booking) ID() uuid.UUID                   { return b.id }
func (b *Booking) RequesterID() uuid.UUID          { return b.requesterID }
func (b *Booking) ProviderID() uuid.UUID           { return b.providerID }
func (b *Booking) ServiceID() uuid.UUID            { return b.serviceID }
func (b *Booking) SubjectIDs() []uuid.UUID         { return append([]uuid.UUID(nil), b.subjectIDs...) }
func (b *Booking) ScheduledStart() time.Time       { return b.scheduledStart }
func (b *Booking) ScheduledEnd() *time.Time        { return copyTime(b.scheduledEnd) }
func (b *Booking) ServiceDuration() time.Duration  { return b.serviceDuration }
func (b *Booking) UnitCount() int                  { return b.unitCount }
func (b *Booking) Total() pricing.Money            { return b.total }
func (b *Booking) Status() Status                  { return b.status }
func (b *Booking) CreatedAt() time.Time            { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time            { return b.updatedAt }
func (b *Booking) RespondedAt() *time.Time         { return copyTime(b.respondedAt) }
func (b *Booking) ResponseNote() *string           { return b.responseNote }
func (b *Booking) DeclineReason() *string          { return b.declineReason }
func (b *Booking) CancelledAt() *time.Time         { return copyTime(b.cancelledAt) }
func (b *Booking) CancellationFee() *pricing.Money { return b.cancellationFee }
func (b *Booking) CompletedAt() *time.Time         { return copyTime(b.completedAt) }
func (b *Booking) Version() int64                  { return b.version }

func normalizeSubjects(ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			return nil, ErrDuplicateSubject
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
