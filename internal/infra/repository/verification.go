package repository

import (
	"context"

	"booking-core/internal/domain/verification"
	"booking-core/internal/infra"
	"booking-core/internal/infra/db"
	"booking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	verificationColumns = `booking_id, code, created_at, expires_at, verified_at, verified_by, failed_attempts`

	selectCodeSQL          = `SELECT ` + verificationColumns + ` FROM verification_codes WHERE booking_id = $1`
	selectCodeForUpdateSQL = selectCodeSQL + ` FOR UPDATE`

	insertCodeIfAbsentSQL = `INSERT INTO verification_codes (` + verificationColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (booking_id) DO NOTHING`

	updateCodeSQL = `UPDATE verification_codes SET
		verified_at = $2,
		verified_by = $3,
		failed_attempts = $4
	WHERE booking_id = $1`
)

type VerificationRepository struct {
	db db.DBTX
}

func NewVerificationRepository(dbtx db.DBTX) *VerificationRepository {
	return &VerificationRepository{db: dbtx}
}

func (r *VerificationRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*verification.Code, error) {
	return r.findOne(ctx, selectCodeSQL, bookingID)
}

func (r *VerificationRepository) FindByBookingIDForUpdate(ctx context.Context, bookingID uuid.UUID) (*verification.Code, error) {
	return r.findOne(ctx, selectCodeForUpdateSQL, bookingID)
}

// InsertIfAbsent relies on the booking_id primary key: a concurrent issuer that
// inserted first wins and its code is returned.
func (r *VerificationRepository) InsertIfAbsent(ctx context.Context, c *verification.Code) (*verification.Code, error) {
	_, err := r.db.Exec(ctx, insertCodeIfAbsentSQL,
		c.BookingID(),
		c.Value(),
		c.CreatedAt(),
		c.ExpiresAt(),
		pgconv.TimePtrToPgtype(c.VerifiedAt()),
		pgconv.UUIDPtrToPgtype(c.VerifiedBy()),
		int32(c.FailedAttempts()),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert verification code", err)
	}

	stored, err := r.findOne(ctx, selectCodeSQL, c.BookingID())
	if err != nil {
		return nil, err
	}
	if stored.Value() == c.Value() {
		return c, nil
	}
	return stored, nil
}

func (r *VerificationRepository) Update(ctx context.Context, c *verification.Code) error {
	tag, err := r.db.Exec(ctx, updateCodeSQL,
		c.BookingID(),
		pgconv.TimePtrToPgtype(c.VerifiedAt()),
		pgconv.UUIDPtrToPgtype(c.VerifiedBy()),
		int32(c.FailedAttempts()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update verification code", err)
	}
	if tag.RowsAffected() == 0 {
		return verification.ErrCodeNotIssued
	}
	return nil
}

func (r *VerificationRepository) findOne(ctx context.Context, query string, bookingID uuid.UUID) (*verification.Code, error) {
	c, err := scanCode(r.db.QueryRow(ctx, query, bookingID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, verification.ErrCodeNotIssued
		}
		return nil, infra.WrapRepoErr("failed to find verification code", err)
	}
	return c, nil
}

func scanCode(row pgx.Row) (*verification.Code, error) {
	var (
		p          verification.ReconstructParams
		verifiedAt pgtype.Timestamptz
		verifiedBy pgtype.UUID
		attempts   int32
	)
	if err := row.Scan(&p.BookingID, &p.Value, &p.CreatedAt, &p.ExpiresAt, &verifiedAt, &verifiedBy, &attempts); err != nil {
		return nil, err
	}
	p.VerifiedAt = pgconv.TimePtrFromPgtype(verifiedAt)
	p.VerifiedBy = pgconv.UUIDPtrFromPgtype(verifiedBy)
	p.FailedAttempts = int(attempts)
	return verification.Reconstruct(p), nil
}
