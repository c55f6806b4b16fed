package verification

import (
	"crypto/subtle"
	"strings"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/event"

	"github.com/google/uuid"
)

type State string

const (
	StateUnissued State = "UNISSUED"
	StateIssued   State = "ISSUED"
	StateVerified State = "VERIFIED"
	StateExpired  State = "EXPIRED"
)

type Code struct {
	bookingID      uuid.UUID
	value          string
	createdAt      time.Time
	expiresAt      time.Time
	verifiedAt     *time.Time
	verifiedBy     *uuid.UUID
	failedAttempts int

	events event.Recorder
}

// Result is returned from every verification attempt, including mismatches,
// so callers can enforce their own attempt limit.
type Result struct {
	BookingID      uuid.UUID
	Verified       bool
	VerifiedAt     *time.Time
	FailedAttempts int
}

// Issue returns the code to deliver for b. An unexpired existing code is
// reused; issued reports whether a new one was minted.
func Issue(existing *Code, b *booking.Booking, w Window, gen Generator, now time.Time) (code *Code, issued bool, err error) {
	if b.Status() != booking.StatusAccepted {
		return nil, false, ErrBookingNotAccepted
	}
	if existing != nil && existing.IsVerified() {
		return nil, false, ErrCodeAlreadyVerified
	}
	if !w.CanIssue(b.ScheduledStart(), now) {
		return nil, false, ErrCodeWindowClosed
	}
	if existing != nil && !existing.IsExpired(now) {
		return existing, false, nil
	}

	value, err := gen.Generate()
	if err != nil {
		return nil, false, err
	}

	c := &Code{
		bookingID: b.ID(),
		value:     value,
		createdAt: now,
		expiresAt: w.ExpiresAt(b.ScheduledStart()),
	}
	c.events.Record(event.New(event.CodeIssued, c.bookingID, now, map[string]any{
		"expires_at": c.expiresAt,
	}))
	return c, true, nil
}

type ReconstructParams struct {
	BookingID      uuid.UUID
	Value          string
	CreatedAt      time.Time
	ExpiresAt      time.Time
	VerifiedAt     *time.Time
	VerifiedBy     *uuid.UUID
	FailedAttempts int
}

func Reconstruct(p ReconstructParams) *Code {
	return &Code{
		bookingID:      p.BookingID,
		value:          p.Value,
		createdAt:      p.CreatedAt,
		expiresAt:      p.ExpiresAt,
		verifiedAt:     p.VerifiedAt,
		verifiedBy:     p.VerifiedBy,
		failedAttempts: p.FailedAttempts,
	}
}

// Verify checks supplied against the stored value. A mismatch only bumps the
// attempt counter; the code stays ISSUED.
func (c *Code) Verify(supplied string, actor uuid.UUID, now time.Time) (Result, error) {
	if c.IsVerified() {
		return c.result(), ErrCodeAlreadyVerified
	}
	if c.IsExpired(now) {
		return c.result(), ErrCodeWindowClosed
	}

	supplied = strings.TrimSpace(supplied)
	if supplied == "" {
		return c.result(), ErrCodeRequired
	}
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(c.value)) != 1 {
		c.failedAttempts++
		return c.result(), ErrCodeMismatch
	}

	c.verifiedAt = &now
	c.verifiedBy = &actor
	c.events.Record(event.New(event.CodeVerified, c.bookingID, now, map[string]any{
		"verified_by":     actor,
		"failed_attempts": c.failedAttempts,
	}))
	return c.result(), nil
}

// Resend returns the live code for redelivery without minting a new one.
func (c *Code) Resend(now time.Time) (string, error) {
	if c.IsVerified() {
		return "", ErrCodeAlreadyVerified
	}
	if c.IsExpired(now) {
		return "", ErrCodeWindowClosed
	}
	return c.value, nil
}

func (c *Code) State(now time.Time) State {
	switch {
	case c.IsVerified():
		return StateVerified
	case c.IsExpired(now):
		return StateExpired
	default:
		return StateIssued
	}
}

func (c *Code) IsVerified() bool { return c.verifiedAt != nil }

func (c *Code) IsExpired(now time.Time) bool {
	return now.After(c.expiresAt)
}

func (c *Code) result() Result {
	return Result{
		BookingID:      c.bookingID,
		Verified:       c.IsVerified(),
		VerifiedAt:     c.verifiedAt,
		FailedAttempts: c.failedAttempts,
	}
}

func (c *Code) PullEvents() []event.Event { return c.events.PullEvents() }

func (c *Code) BookingID() uuid.UUID   { return c.bookingID }
func (c *Code) Value() string          { return c.value }
func (c *Code) CreatedAt() time.Time   { return c.createdAt }
func (c *Code) ExpiresAt() time.Time   { return c.expiresAt }
func (c *Code) VerifiedAt() *time.Time { return c.verifiedAt }
func (c *Code) VerifiedBy() *uuid.UUID { return c.verifiedBy }
func (c *Code) FailedAttempts() int    { return c.failedAttempts }
