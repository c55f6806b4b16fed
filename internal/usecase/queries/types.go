package queries

import (
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/pricing"
	"booking-core/internal/domain/schedule"
	"booking-core/internal/domain/verification"
	"booking-core/internal/pkg/ptr"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// BookingView represents read-optimized booking data
type BookingView struct {
	ID                   uuid.UUID   `json:"id"`
	RequesterID          uuid.UUID   `json:"requester_id"`
	ProviderID           uuid.UUID   `json:"provider_id"`
	ServiceID            uuid.UUID   `json:"service_id"`
	SubjectIDs           []uuid.UUID `json:"subject_ids"`
	ScheduledStart       time.Time   `json:"scheduled_start"`
	ScheduledEnd         *time.Time  `json:"scheduled_end,omitempty"`
	UnitCount            int         `json:"unit_count"`
	TotalCents           int64       `json:"total_cents"`
	Status               string      `json:"status"`
	RespondedAt          *time.Time  `json:"responded_at,omitempty"`
	ResponseNote         *string     `json:"response_note,omitempty"`
	DeclineReason        *string     `json:"decline_reason,omitempty"`
	CancelledAt          *time.Time  `json:"cancelled_at,omitempty"`
	CancellationFeeCents *int64      `json:"cancellation_fee_cents,omitempty"`
	CompletedAt          *time.Time  `json:"completed_at,omitempty"`
	Version              int64       `json:"version"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

func NewBookingView(b *booking.Booking) *BookingView {
	v := &BookingView{
		ID:             b.ID(),
		RequesterID:    b.RequesterID(),
		ProviderID:     b.ProviderID(),
		ServiceID:      b.ServiceID(),
		SubjectIDs:     b.SubjectIDs(),
		ScheduledStart: b.ScheduledStart(),
		ScheduledEnd:   b.ScheduledEnd(),
		UnitCount:      b.UnitCount(),
		TotalCents:     b.Total().Cents(),
		Status:         b.Status().String(),
		RespondedAt:    b.RespondedAt(),
		ResponseNote:   b.ResponseNote(),
		DeclineReason:  b.DeclineReason(),
		CancelledAt:    b.CancelledAt(),
		CompletedAt:    b.CompletedAt(),
		Version:        b.Version(),
		CreatedAt:      b.CreatedAt(),
		UpdatedAt:      b.UpdatedAt(),
	}
	if fee := b.CancellationFee(); fee != nil {
		v.CancellationFeeCents = ptr.Of(fee.Cents())
	}
	if v.SubjectIDs == nil {
		v.SubjectIDs = []uuid.UUID{}
	}
	return v
}

// VerificationStatusView never carries the code itself.
type VerificationStatusView struct {
	BookingID      uuid.UUID  `json:"booking_id"`
	State          string     `json:"state"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	VerifiedAt     *time.Time `json:"verified_at,omitempty"`
	FailedAttempts int        `json:"failed_attempts"`
}

func NewVerificationStatusView(bookingID uuid.UUID, c *verification.Code, now time.Time) *VerificationStatusView {
	if c == nil {
		return &VerificationStatusView{BookingID: bookingID, State: string(verification.StateUnissued)}
	}
	expiresAt := c.ExpiresAt()
	return &VerificationStatusView{
		BookingID:      bookingID,
		State:          string(c.State(now)),
		ExpiresAt:      &expiresAt,
		VerifiedAt:     c.VerifiedAt(),
		FailedAttempts: c.FailedAttempts(),
	}
}

type WindowView struct {
	ID           uuid.UUID `json:"id"`
	AssignmentID uuid.UUID `json:"assignment_id"`
	DayOfWeek    int       `json:"day_of_week"`
	Start        string    `json:"start"`
	End          string    `json:"end"`
	IsAvailable  bool      `json:"is_available"`
}

func NewWindowView(w schedule.Window) *WindowView {
	return &WindowView{
		ID:           w.ID,
		AssignmentID: w.AssignmentID,
		DayOfWeek:    int(w.DayOfWeek),
		Start:        w.Start.String(),
		End:          w.End.String(),
		IsAvailable:  w.IsAvailable,
	}
}

type AssignmentView struct {
	ID         uuid.UUID     `json:"id"`
	ProviderID uuid.UUID     `json:"provider_id"`
	StaffID    uuid.UUID     `json:"staff_id"`
	ServiceID  uuid.UUID     `json:"service_id"`
	Windows    []*WindowView `json:"windows"`
	CreatedAt  time.Time     `json:"created_at"`
}

func NewAssignmentView(a *schedule.Assignment) *AssignmentView {
	windows := a.Windows()
	v := &AssignmentView{
		ID:         a.ID(),
		ProviderID: a.ProviderID(),
		StaffID:    a.StaffID(),
		ServiceID:  a.ServiceID(),
		Windows:    make([]*WindowView, len(windows)),
		CreatedAt:  a.CreatedAt(),
	}
	for i, w := range windows {
		v.Windows[i] = NewWindowView(w)
	}
	return v
}

type ServiceView struct {
	ID               uuid.UUID `json:"id"`
	ProviderID       uuid.UUID `json:"provider_id"`
	Name             string    `json:"name"`
	UnitPriceCents   int64     `json:"unit_price_cents"`
	BillingUnit      string    `json:"billing_unit"`
	DurationMinutes  int       `json:"duration_minutes"`
	Capacity         int       `json:"capacity"`
	RequiresStaffing bool      `json:"requires_staffing"`
}

func NewServiceView(s *pricing.ServiceDefinition) *ServiceView {
	return &ServiceView{
		ID:               s.ID(),
		ProviderID:       s.ProviderID(),
		Name:             s.Name(),
		UnitPriceCents:   s.UnitPrice().Cents(),
		BillingUnit:      s.BillingUnit().String(),
		DurationMinutes:  int(s.Duration() / time.Minute),
		Capacity:         s.Capacity(),
		RequiresStaffing: s.RequiresStaffing(),
	}
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
