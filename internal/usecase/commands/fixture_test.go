//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/cancellation"
	"booking-core/internal/domain/event"
	"booking-core/internal/domain/pricing"
	"booking-core/internal/domain/verification"
	"booking-core/internal/infra/uow"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"
	"booking-core/internal/usecase/shared"
	"booking-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// sequenceGenerator hands out ABC001, ABC002, ... so tests can tell codes apart.
type sequenceGenerator struct {
	mu sync.Mutex
	n  int
}

func (g *sequenceGenerator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("ABC%03d", g.n), nil
}

type fixture struct {
	ctx     context.Context
	uow     *uow.MemoryUoW
	catalog *uow.MemoryServiceCatalog
	clock   *clock.MockClock

	bookings      commands.BookingCommands
	verifications commands.VerificationCommands
	schedules     commands.ScheduleCommands
	services      commands.ServiceCommands
	codeStatus    queries.VerificationQueries

	requesterID uuid.UUID
	providerID  uuid.UUID
	service     *pricing.ServiceDefinition
}

func newFixture(t *testing.T, mutate ...func(*builder.ServiceBuilder)) *fixture {
	t.Helper()

	f := &fixture{
		ctx:         context.Background(),
		uow:         uow.NewMemoryUoW(),
		catalog:     uow.NewMemoryServiceCatalog(),
		clock:       clock.NewMockClock(builder.DefaultNow),
		requesterID: uuid.New(),
		providerID:  uuid.New(),
	}
	services := &booking.Services{Clock: f.clock, Calculator: pricing.NewDefaultCalculator()}

	f.bookings = commands.NewBookingCommands(f.uow, f.catalog, services, cancellation.DefaultPolicy(), time.UTC)
	f.verifications = commands.NewVerificationCommands(f.uow, f.clock, verification.DefaultWindow(), &sequenceGenerator{})
	f.schedules = commands.NewScheduleCommands(f.uow, f.catalog, f.clock, time.UTC)
	f.services = commands.NewServiceCommands(f.catalog)
	f.codeStatus = queries.NewVerificationQueries(f.uow, f.clock)

	sb := builder.NewServiceBuilder().WithProviderID(f.providerID)
	for _, m := range mutate {
		sb.With(m)
	}
	f.service = sb.MustBuild()
	require.NoError(t, f.catalog.Save(f.ctx, f.service))
	return f
}

func (f *fixture) create(t *testing.T, units int, start time.Time) *queries.BookingView {
	t.Helper()
	view, err := f.bookings.Create(f.ctx, commands.CreateBookingRequest{
		ServiceID:      f.service.ID(),
		UnitCount:      units,
		ScheduledStart: start,
	}, f.requesterID)
	require.NoError(t, err)
	return view
}

func (f *fixture) createAccepted(t *testing.T, start time.Time) *queries.BookingView {
	t.Helper()
	view := f.create(t, 1, start)
	_, err := f.bookings.Respond(f.ctx, view.ID, commands.RespondRequest{Decision: booking.DecisionAccept}, f.providerID)
	require.NoError(t, err)
	return view
}

func (f *fixture) pendingEvents(t *testing.T) []event.Event {
	t.Helper()
	var events []event.Event
	require.NoError(t, f.uow.WithinReadOnly(f.ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		events, err = tx.Events().FetchPending(ctx, 100)
		return err
	}))
	return events
}

func eventTypes(events []event.Event) []event.Type {
	out := make([]event.Type, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}

// concurrently runs fn n times at once and returns the errors in no particular order.
func concurrently(n int, fn func(i int) error) []error {
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make([]error, n)
	)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			errs[i] = fn(i)
		}()
	}
	close(start)
	wg.Wait()
	return errs
}
