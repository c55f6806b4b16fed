package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"booking-core/internal/domain/event"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// Relay drains the event outbox to a Publisher. Events are marked published in
// the same transaction that fetched them, so a failed publish leaves them queued.
type Relay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	interval  time.Duration
	batchSize int
	now       func() time.Time

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRelay(uow shared.UnitOfWork, publisher Publisher, interval time.Duration, batchSize int) *Relay {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Relay{
		uow:       uow,
		publisher: publisher,
		interval:  interval,
		batchSize: batchSize,
		now:       time.Now,
	}
}

func (r *Relay) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(ctx)
	}()
}

func (r *Relay) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

func (r *Relay) run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for {
				n, err := r.Flush(ctx)
				if err != nil {
					if ctx.Err() == nil {
						slog.ErrorContext(ctx, "outbox relay flush failed", "error", err)
					}
					break
				}
				if n < r.batchSize {
					break
				}
			}
		}
	}
}

// Flush publishes one batch of pending events and returns how many were sent.
func (r *Relay) Flush(ctx context.Context) (int, error) {
	var sent int
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pending, err := tx.Events().FetchPending(ctx, r.batchSize)
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			return nil
		}
		if err := r.publisher.Publish(ctx, pending); err != nil {
			return err
		}
		if err := tx.Events().MarkPublished(ctx, eventIDs(pending), r.now()); err != nil {
			return err
		}
		sent = len(pending)
		return nil
	})
	if err != nil {
		return 0, err
	}
	if sent > 0 {
		slog.DebugContext(ctx, "outbox events published", "count", sent)
	}
	return sent, nil
}

func eventIDs(events []event.Event) []uuid.UUID {
	ids := make([]uuid.UUID, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}
