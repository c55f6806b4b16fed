package repository

import (
	"context"
	"encoding/json"
	"time"

	"booking-core/internal/domain/event"
	"booking-core/internal/infra"
	"booking-core/internal/infra/db"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	insertEventSQL = `INSERT INTO booking_events (id, booking_id, type, payload, occurred_at)
	VALUES ($1, $2, $3, $4, $5)`

	// SKIP LOCKED lets several relay instances drain the outbox without
	// publishing the same row twice.
	fetchPendingEventsSQL = `SELECT id, booking_id, type, payload, occurred_at FROM booking_events
	WHERE published_at IS NULL
	ORDER BY occurred_at, id
	LIMIT $1
	FOR UPDATE SKIP LOCKED`

	markEventsPublishedSQL = `UPDATE booking_events SET published_at = $2 WHERE id = ANY($1)`
)

type OutboxRepository struct {
	db db.DBTX
}

func NewOutboxRepository(dbtx db.DBTX) *OutboxRepository {
	return &OutboxRepository{db: dbtx}
}

func (r *OutboxRepository) Append(ctx context.Context, events ...event.Event) error {
	if len(events) == 0 {
		return nil
	}
	for _, e := range events {
		payload, err := json.Marshal(e.Payload)
		if err != nil {
			return errs.Wrapf(err, "failed to encode %s payload", e.Type)
		}
		if _, err = r.db.Exec(ctx, insertEventSQL, e.ID, e.BookingID, e.Type.String(), payload, e.OccurredAt); err != nil {
			return infra.WrapRepoErr("failed to append booking event", err)
		}
	}
	return nil
}

func (r *OutboxRepository) FetchPending(ctx context.Context, limit int) ([]event.Event, error) {
	rows, err := r.db.Query(ctx, fetchPendingEventsSQL, int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch pending events", err)
	}
	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (event.Event, error) {
		var (
			e       event.Event
			typ     string
			payload []byte
		)
		if err := row.Scan(&e.ID, &e.BookingID, &typ, &payload, &e.OccurredAt); err != nil {
			return event.Event{}, err
		}
		e.Type = event.Type(typ)
		if err := json.Unmarshal(payload, &e.Payload); err != nil {
			return event.Event{}, err
		}
		return e, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan pending events", err)
	}
	return events, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.db.Exec(ctx, markEventsPublishedSQL, pgconv.UUIDsToPgtype(ids), at); err != nil {
		return infra.WrapRepoErr("failed to mark events published", err)
	}
	return nil
}
