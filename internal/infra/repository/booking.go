package repository

import (
	"context"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/infra"
	"booking-core/internal/infra/db"
	"booking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, requester_id, provider_id, service_id, subject_ids, scheduled_start, scheduled_end,
	service_duration_minutes, unit_count, total_cents, status, responded_at, response_note, decline_reason,
	cancelled_at, cancellation_fee_cents, completed_at, version, created_at, updated_at`

const (
	insertBookingSQL = `INSERT INTO bookings (` + bookingColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	updateBookingSQL = `UPDATE bookings SET
		total_cents = $2,
		service_duration_minutes = $3,
		status = $4,
		responded_at = $5,
		response_note = $6,
		decline_reason = $7,
		cancelled_at = $8,
		cancellation_fee_cents = $9,
		completed_at = $10,
		updated_at = $11,
		version = version + 1
	WHERE id = $1 AND version = $12`

	selectBookingSQL          = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	selectBookingForUpdateSQL = selectBookingSQL + ` FOR UPDATE`

	listBookingsByPartySQL = `SELECT ` + bookingColumns + ` FROM bookings
	WHERE requester_id = $1 OR provider_id = $1
	ORDER BY scheduled_start DESC, id
	LIMIT $2 OFFSET $3`
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, insertBookingSQL,
		b.ID(),
		b.RequesterID(),
		b.ProviderID(),
		b.ServiceID(),
		pgconv.UUIDsToPgtype(b.SubjectIDs()),
		b.ScheduledStart(),
		pgconv.TimePtrToPgtype(b.ScheduledEnd()),
		int32(b.ServiceDuration()/time.Minute),
		int32(b.UnitCount()),
		b.Total().Cents(),
		b.Status().String(),
		pgconv.TimePtrToPgtype(b.RespondedAt()),
		pgconv.StringPtrToPgtype(b.ResponseNote()),
		pgconv.StringPtrToPgtype(b.DeclineReason()),
		pgconv.TimePtrToPgtype(b.CancelledAt()),
		pgconv.Int64PtrToPgtype(feeCents(b)),
		pgconv.TimePtrToPgtype(b.CompletedAt()),
		b.Version(),
		b.CreatedAt(),
		b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, updateBookingSQL,
		b.ID(),
		b.Total().Cents(),
		int32(b.ServiceDuration()/time.Minute),
		b.Status().String(),
		pgconv.TimePtrToPgtype(b.RespondedAt()),
		pgconv.StringPtrToPgtype(b.ResponseNote()),
		pgconv.StringPtrToPgtype(b.DeclineReason()),
		pgconv.TimePtrToPgtype(b.CancelledAt()),
		pgconv.Int64PtrToPgtype(feeCents(b)),
		pgconv.TimePtrToPgtype(b.CompletedAt()),
		b.UpdatedAt(),
		b.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return booking.ErrConcurrentUpdate
	}
	b.SetVersion(b.Version() + 1)
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.findOne(ctx, selectBookingSQL, id)
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.findOne(ctx, selectBookingForUpdateSQL, id)
}

func (r *BookingRepository) ListByParty(ctx context.Context, partyID uuid.UUID, limit, offset int) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, listBookingsByPartySQL, partyID, int32(limit), int32(offset))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return result, nil
}

func (r *BookingRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*booking.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return b, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		p               booking.ReconstructParams
		subjects        []pgtype.UUID
		scheduledEnd    pgtype.Timestamptz
		durationMinutes int32
		unitCount       int32
		status          string
		respondedAt     pgtype.Timestamptz
		responseNote    pgtype.Text
		declineReason   pgtype.Text
		cancelledAt     pgtype.Timestamptz
		feeCents        pgtype.Int8
		completedAt     pgtype.Timestamptz
	)
	err := row.Scan(
		&p.ID,
		&p.RequesterID,
		&p.ProviderID,
		&p.ServiceID,
		&subjects,
		&p.ScheduledStart,
		&scheduledEnd,
		&durationMinutes,
		&unitCount,
		&p.TotalCents,
		&status,
		&respondedAt,
		&responseNote,
		&declineReason,
		&cancelledAt,
		&feeCents,
		&completedAt,
		&p.Version,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.SubjectIDs = pgconv.UUIDsFromPgtype(subjects)
	p.ScheduledEnd = pgconv.TimePtrFromPgtype(scheduledEnd)
	p.ServiceDuration = time.Duration(durationMinutes) * time.Minute
	p.UnitCount = int(unitCount)
	p.Status = booking.Status(status)
	p.RespondedAt = pgconv.TimePtrFromPgtype(respondedAt)
	p.ResponseNote = pgconv.StringPtrFromPgtype(responseNote)
	p.DeclineReason = pgconv.StringPtrFromPgtype(declineReason)
	p.CancelledAt = pgconv.TimePtrFromPgtype(cancelledAt)
	p.CancellationFeeCents = pgconv.Int64PtrFromPgtype(feeCents)
	p.CompletedAt = pgconv.TimePtrFromPgtype(completedAt)
	return booking.Reconstruct(p), nil
}

func feeCents(b *booking.Booking) *int64 {
	fee := b.CancellationFee()
	if fee == nil {
		return nil
	}
	cents := fee.Cents()
	return &cents
}
