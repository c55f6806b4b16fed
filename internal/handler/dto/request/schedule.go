package request

import (
	"time"

	"booking-core/internal/pkg/patch"
	"booking-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type AssignStaffRequest struct {
	StaffID   uuid.UUID `json:"staff_id" binding:"required"`
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
}

func (r *AssignStaffRequest) ToCommand() commands.AssignStaffRequest {
	return commands.AssignStaffRequest{StaffID: r.StaffID, ServiceID: r.ServiceID}
}

// DayOfWeek is 0 (Sunday) to 6; Start and End are "HH:MM".
type SetWindowRequest struct {
	DayOfWeek   *int   `json:"day_of_week" binding:"required,min=0,max=6"`
	Start       string `json:"start" binding:"required"`
	End         string `json:"end" binding:"required"`
	IsAvailable *bool  `json:"is_available"`
}

func (r *SetWindowRequest) ToCommand() commands.SetWindowRequest {
	return commands.SetWindowRequest{
		DayOfWeek:   *r.DayOfWeek,
		Start:       r.Start,
		End:         r.End,
		IsAvailable: patch.Coalesce(r.IsAvailable, true),
	}
}

type StaffableQuery struct {
	ProviderID string    `form:"provider_id" binding:"required,uuid"`
	ServiceID  string    `form:"service_id" binding:"required,uuid"`
	At         time.Time `form:"at" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type ListAssignmentsQuery struct {
	ServiceID string `form:"service_id" binding:"omitempty,uuid"`
}

// ServiceUUID returns uuid.Nil when no filter was given.
func (q *ListAssignmentsQuery) ServiceUUID() uuid.UUID {
	id, _ := uuid.Parse(q.ServiceID)
	return id
}
