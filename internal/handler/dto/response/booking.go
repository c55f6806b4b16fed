package response

import (
	"fmt"
	"time"

	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                    uuid.UUID   `json:"id"`
	RequesterID           uuid.UUID   `json:"requester_id"`
	ProviderID            uuid.UUID   `json:"provider_id"`
	ServiceID             uuid.UUID   `json:"service_id"`
	SubjectIDs            []uuid.UUID `json:"subject_ids"`
	ScheduledStart        time.Time   `json:"scheduled_start"`
	ScheduledEnd          *time.Time  `json:"scheduled_end,omitempty"`
	UnitCount             int         `json:"unit_count"`
	TotalCents            int64       `json:"total_cents"`
	TotalAmount           string      `json:"total_amount"`
	Status                string      `json:"status"`
	RespondedAt           *time.Time  `json:"responded_at,omitempty"`
	ResponseNote          *string     `json:"response_note,omitempty"`
	DeclineReason         *string     `json:"decline_reason,omitempty"`
	CancelledAt           *time.Time  `json:"cancelled_at,omitempty"`
	CancellationFeeCents  *int64      `json:"cancellation_fee_cents,omitempty"`
	CancellationFeeAmount *string     `json:"cancellation_fee_amount,omitempty"`
	CompletedAt           *time.Time  `json:"completed_at,omitempty"`
	Version               int64       `json:"version"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := &BookingResponse{}
	_ = copier.Copy(res, v)
	res.TotalAmount = formatAmount(v.TotalCents)
	if v.CancellationFeeCents != nil {
		amount := formatAmount(*v.CancellationFeeCents)
		res.CancellationFeeAmount = &amount
	}
	return res
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		res[i] = FromBookingView(v)
	}
	return res
}

func formatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
