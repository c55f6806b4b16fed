package uow

import (
	"context"
	"sort"
	"sync"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/event"
	"booking-core/internal/domain/pricing"
	"booking-core/internal/domain/schedule"
	"booking-core/internal/domain/verification"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var errReadOnlyTx = errs.New("write attempted in read-only transaction")

// MemoryUoW keeps all state in process. Transactions are serialized by a
// single lock and run against a copy that replaces the live state on commit.
type MemoryUoW struct {
	mu    sync.RWMutex
	state *memState
}

func NewMemoryUoW() *MemoryUoW {
	return &MemoryUoW{state: newMemState()}
}

func (u *MemoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	work := u.state.clone()
	if err := fn(ctx, &memTx{state: work}); err != nil {
		return err
	}
	u.state = work
	return nil
}

func (u *MemoryUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, &memTx{state: u.state, readOnly: true})
}

type assignmentRecord struct {
	id, providerID, staffID, serviceID uuid.UUID
	createdAt                          time.Time
	windows                            []schedule.Window
}

type eventRecord struct {
	event       event.Event
	publishedAt *time.Time
}

type memState struct {
	bookings    map[uuid.UUID]booking.ReconstructParams
	codes       map[uuid.UUID]verification.ReconstructParams
	assignments map[uuid.UUID]assignmentRecord
	events      []eventRecord
}

func newMemState() *memState {
	return &memState{
		bookings:    map[uuid.UUID]booking.ReconstructParams{},
		codes:       map[uuid.UUID]verification.ReconstructParams{},
		assignments: map[uuid.UUID]assignmentRecord{},
	}
}

func (s *memState) clone() *memState {
	c := &memState{
		bookings:    make(map[uuid.UUID]booking.ReconstructParams, len(s.bookings)),
		codes:       make(map[uuid.UUID]verification.ReconstructParams, len(s.codes)),
		assignments: make(map[uuid.UUID]assignmentRecord, len(s.assignments)),
		events:      append([]eventRecord(nil), s.events...),
	}
	for k, v := range s.bookings {
		v.SubjectIDs = append([]uuid.UUID(nil), v.SubjectIDs...)
		c.bookings[k] = v
	}
	for k, v := range s.codes {
		c.codes[k] = v
	}
	for k, v := range s.assignments {
		v.windows = append([]schedule.Window(nil), v.windows...)
		c.assignments[k] = v
	}
	return c
}

type memTx struct {
	state    *memState
	readOnly bool
}

func (t *memTx) Bookings() shared.BookingRepository           { return &memBookings{t} }
func (t *memTx) Verifications() shared.VerificationRepository { return &memVerifications{t} }
func (t *memTx) Schedules() shared.ScheduleRepository         { return &memSchedules{t} }
func (t *memTx) Events() shared.EventOutbox                   { return &memEvents{t} }

func (t *memTx) writable() error {
	if t.readOnly {
		return errReadOnlyTx
	}
	return nil
}

type memBookings struct{ tx *memTx }

func (r *memBookings) Create(_ context.Context, b *booking.Booking) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	r.tx.state.bookings[b.ID()] = bookingParams(b)
	return nil
}

func (r *memBookings) Update(_ context.Context, b *booking.Booking) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	stored, ok := r.tx.state.bookings[b.ID()]
	if !ok {
		return booking.ErrBookingNotFound
	}
	if stored.Version != b.Version() {
		return booking.ErrConcurrentUpdate
	}
	b.SetVersion(b.Version() + 1)
	r.tx.state.bookings[b.ID()] = bookingParams(b)
	return nil
}

func (r *memBookings) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	p, ok := r.tx.state.bookings[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	return booking.Reconstruct(p), nil
}

func (r *memBookings) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.FindByID(ctx, id)
}

func (r *memBookings) ListByParty(_ context.Context, partyID uuid.UUID, limit, offset int) ([]*booking.Booking, error) {
	var matched []booking.ReconstructParams
	for _, p := range r.tx.state.bookings {
		if p.RequesterID == partyID || p.ProviderID == partyID {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].ScheduledStart.Equal(matched[j].ScheduledStart) {
			return matched[i].ScheduledStart.After(matched[j].ScheduledStart)
		}
		return matched[i].ID.String() < matched[j].ID.String()
	})

	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	result := make([]*booking.Booking, len(matched))
	for i, p := range matched {
		result[i] = booking.Reconstruct(p)
	}
	return result, nil
}

type memVerifications struct{ tx *memTx }

func (r *memVerifications) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*verification.Code, error) {
	p, ok := r.tx.state.codes[bookingID]
	if !ok {
		return nil, verification.ErrCodeNotIssued
	}
	return verification.Reconstruct(p), nil
}

func (r *memVerifications) FindByBookingIDForUpdate(ctx context.Context, bookingID uuid.UUID) (*verification.Code, error) {
	return r.FindByBookingID(ctx, bookingID)
}

func (r *memVerifications) InsertIfAbsent(_ context.Context, c *verification.Code) (*verification.Code, error) {
	if err := r.tx.writable(); err != nil {
		return nil, err
	}
	if p, ok := r.tx.state.codes[c.BookingID()]; ok {
		return verification.Reconstruct(p), nil
	}
	r.tx.state.codes[c.BookingID()] = codeParams(c)
	return c, nil
}

func (r *memVerifications) Update(_ context.Context, c *verification.Code) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if _, ok := r.tx.state.codes[c.BookingID()]; !ok {
		return verification.ErrCodeNotIssued
	}
	r.tx.state.codes[c.BookingID()] = codeParams(c)
	return nil
}

type memSchedules struct{ tx *memTx }

func (r *memSchedules) CreateAssignment(_ context.Context, a *schedule.Assignment) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	for _, rec := range r.tx.state.assignments {
		if rec.staffID == a.StaffID() && rec.serviceID == a.ServiceID() {
			return schedule.ErrAlreadyAssigned
		}
	}
	r.tx.state.assignments[a.ID()] = assignmentRecord{
		id:         a.ID(),
		providerID: a.ProviderID(),
		staffID:    a.StaffID(),
		serviceID:  a.ServiceID(),
		createdAt:  a.CreatedAt(),
		windows:    a.Windows(),
	}
	return nil
}

func (r *memSchedules) DeleteAssignment(_ context.Context, id uuid.UUID) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if _, ok := r.tx.state.assignments[id]; !ok {
		return schedule.ErrAssignmentNotFound
	}
	delete(r.tx.state.assignments, id)
	return nil
}

func (r *memSchedules) FindAssignment(_ context.Context, id uuid.UUID) (*schedule.Assignment, error) {
	rec, ok := r.tx.state.assignments[id]
	if !ok {
		return nil, schedule.ErrAssignmentNotFound
	}
	return rec.toDomain(), nil
}

func (r *memSchedules) FindAssignmentForUpdate(ctx context.Context, id uuid.UUID) (*schedule.Assignment, error) {
	return r.FindAssignment(ctx, id)
}

func (r *memSchedules) FindAssignmentByWindow(_ context.Context, windowID uuid.UUID) (*schedule.Assignment, error) {
	for _, rec := range r.tx.state.assignments {
		for _, w := range rec.windows {
			if w.ID == windowID {
				return rec.toDomain(), nil
			}
		}
	}
	return nil, schedule.ErrWindowNotFound
}

func (r *memSchedules) ListAssignments(_ context.Context, providerID, serviceID uuid.UUID) ([]*schedule.Assignment, error) {
	var matched []assignmentRecord
	for _, rec := range r.tx.state.assignments {
		if rec.providerID != providerID {
			continue
		}
		if serviceID != uuid.Nil && rec.serviceID != serviceID {
			continue
		}
		matched = append(matched, rec)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].createdAt.Equal(matched[j].createdAt) {
			return matched[i].createdAt.Before(matched[j].createdAt)
		}
		return matched[i].id.String() < matched[j].id.String()
	})

	result := make([]*schedule.Assignment, len(matched))
	for i, rec := range matched {
		result[i] = rec.toDomain()
	}
	return result, nil
}

func (r *memSchedules) AddWindow(_ context.Context, w schedule.Window) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	rec, ok := r.tx.state.assignments[w.AssignmentID]
	if !ok {
		return schedule.ErrAssignmentNotFound
	}
	rec.windows = append(rec.windows, w)
	r.tx.state.assignments[w.AssignmentID] = rec
	return nil
}

func (r *memSchedules) DeleteWindow(_ context.Context, id uuid.UUID) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	for key, rec := range r.tx.state.assignments {
		for i, w := range rec.windows {
			if w.ID == id {
				rec.windows = append(rec.windows[:i:i], rec.windows[i+1:]...)
				r.tx.state.assignments[key] = rec
				return nil
			}
		}
	}
	return schedule.ErrWindowNotFound
}

func (rec assignmentRecord) toDomain() *schedule.Assignment {
	return schedule.ReconstructAssignment(rec.id, rec.providerID, rec.staffID, rec.serviceID, rec.createdAt, rec.windows)
}

type memEvents struct{ tx *memTx }

func (r *memEvents) Append(_ context.Context, events ...event.Event) error {
	if len(events) == 0 {
		return nil
	}
	if err := r.tx.writable(); err != nil {
		return err
	}
	for _, e := range events {
		r.tx.state.events = append(r.tx.state.events, eventRecord{event: e})
	}
	return nil
}

func (r *memEvents) FetchPending(_ context.Context, limit int) ([]event.Event, error) {
	var out []event.Event
	for _, rec := range r.tx.state.events {
		if rec.publishedAt != nil {
			continue
		}
		out = append(out, rec.event)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memEvents) MarkPublished(_ context.Context, ids []uuid.UUID, at time.Time) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	published := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		published[id] = struct{}{}
	}
	for i, rec := range r.tx.state.events {
		if _, ok := published[rec.event.ID]; ok && rec.publishedAt == nil {
			at := at
			r.tx.state.events[i].publishedAt = &at
		}
	}
	return nil
}

// MemoryServiceCatalog is the in-process ServiceCatalog used with STORE_DRIVER=memory.
type MemoryServiceCatalog struct {
	mu       sync.RWMutex
	services map[uuid.UUID]pricing.ServiceDefinitionParams
}

func NewMemoryServiceCatalog() *MemoryServiceCatalog {
	return &MemoryServiceCatalog{services: map[uuid.UUID]pricing.ServiceDefinitionParams{}}
}

func (c *MemoryServiceCatalog) FindByID(_ context.Context, id uuid.UUID) (*pricing.ServiceDefinition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.services[id]
	if !ok {
		return nil, pricing.ErrServiceNotFound
	}
	return pricing.NewServiceDefinition(p)
}

func (c *MemoryServiceCatalog) ListByProvider(_ context.Context, providerID uuid.UUID) ([]*pricing.ServiceDefinition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var result []*pricing.ServiceDefinition
	for _, p := range c.services {
		if p.ProviderID != providerID {
			continue
		}
		svc, err := pricing.NewServiceDefinition(p)
		if err != nil {
			return nil, err
		}
		result = append(result, svc)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name() != result[j].Name() {
			return result[i].Name() < result[j].Name()
		}
		return result[i].ID().String() < result[j].ID().String()
	})
	return result, nil
}

func (c *MemoryServiceCatalog) Save(_ context.Context, svc *pricing.ServiceDefinition) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.services[svc.ID()] = pricing.ServiceDefinitionParams{
		ID:               svc.ID(),
		ProviderID:       svc.ProviderID(),
		Name:             svc.Name(),
		UnitPriceCents:   svc.UnitPrice().Cents(),
		BillingUnit:      svc.BillingUnit(),
		Duration:         svc.Duration(),
		Capacity:         svc.Capacity(),
		RequiresStaffing: svc.RequiresStaffing(),
	}
	return nil
}

func bookingParams(b *booking.Booking) booking.ReconstructParams {
	p := booking.ReconstructParams{
		ID:              b.ID(),
		RequesterID:     b.RequesterID(),
		ProviderID:      b.ProviderID(),
		ServiceID:       b.ServiceID(),
		SubjectIDs:      b.SubjectIDs(),
		ScheduledStart:  b.ScheduledStart(),
		ScheduledEnd:    b.ScheduledEnd(),
		ServiceDuration: b.ServiceDuration(),
		UnitCount:       b.UnitCount(),
		TotalCents:      b.Total().Cents(),
		Status:          b.Status(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
		RespondedAt:     b.RespondedAt(),
		ResponseNote:    b.ResponseNote(),
		DeclineReason:   b.DeclineReason(),
		CancelledAt:     b.CancelledAt(),
		CompletedAt:     b.CompletedAt(),
		Version:         b.Version(),
	}
	if fee := b.CancellationFee(); fee != nil {
		cents := fee.Cents()
		p.CancellationFeeCents = &cents
	}
	return p
}

func codeParams(c *verification.Code) verification.ReconstructParams {
	return verification.ReconstructParams{
		BookingID:      c.BookingID(),
		Value:          c.Value(),
		CreatedAt:      c.CreatedAt(),
		ExpiresAt:      c.ExpiresAt(),
		VerifiedAt:     c.VerifiedAt(),
		VerifiedBy:     c.VerifiedBy(),
		FailedAttempts: c.FailedAttempts(),
	}
}
