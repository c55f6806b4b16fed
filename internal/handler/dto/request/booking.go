package request

import (
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ServiceID      uuid.UUID   `json:"service_id" binding:"required"`
	SubjectIDs     []uuid.UUID `json:"subject_ids" binding:"max=50"`
	UnitCount      int         `json:"unit_count" binding:"min=0"`
	ScheduledStart time.Time   `json:"scheduled_start" binding:"required"`
	ScheduledEnd   *time.Time  `json:"scheduled_end"`
}

func (r *CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ServiceID:      r.ServiceID,
		SubjectIDs:     r.SubjectIDs,
		UnitCount:      r.UnitCount,
		ScheduledStart: r.ScheduledStart,
		ScheduledEnd:   r.ScheduledEnd,
	}
}

type RespondRequest struct {
	Decision string `json:"decision" binding:"required"`
	Note     string `json:"note" binding:"max=1000"`
}

func (r *RespondRequest) ToCommand() (commands.RespondRequest, error) {
	d, err := booking.ParseDecision(r.Decision)
	if err != nil {
		return commands.RespondRequest{}, err
	}
	return commands.RespondRequest{Decision: d, Note: r.Note}, nil
}

type ListBookingsQuery struct {
	Limit  int `form:"limit" binding:"min=0"`
	Offset int `form:"offset" binding:"min=0"`
}
