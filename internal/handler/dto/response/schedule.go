package response

import (
	"time"

	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type WindowResponse struct {
	ID           uuid.UUID `json:"id"`
	AssignmentID uuid.UUID `json:"assignment_id"`
	DayOfWeek    int       `json:"day_of_week"`
	Start        string    `json:"start"`
	End          string    `json:"end"`
	IsAvailable  bool      `json:"is_available"`
}

func FromWindowView(v *queries.WindowView) *WindowResponse {
	res := &WindowResponse{}
	_ = copier.Copy(res, v)
	return res
}

type AssignmentResponse struct {
	ID         uuid.UUID         `json:"id"`
	ProviderID uuid.UUID         `json:"provider_id"`
	StaffID    uuid.UUID         `json:"staff_id"`
	ServiceID  uuid.UUID         `json:"service_id"`
	Windows    []*WindowResponse `json:"windows"`
	CreatedAt  time.Time         `json:"created_at"`
}

func FromAssignmentView(v *queries.AssignmentView) *AssignmentResponse {
	res := &AssignmentResponse{}
	_ = copier.CopyWithOption(res, v, copier.Option{DeepCopy: true})
	if res.Windows == nil {
		res.Windows = []*WindowResponse{}
	}
	return res
}

func FromAssignmentViews(vs []*queries.AssignmentView) []*AssignmentResponse {
	res := make([]*AssignmentResponse, len(vs))
	for i, v := range vs {
		res[i] = FromAssignmentView(v)
	}
	return res
}

type StaffableResponse struct {
	ProviderID uuid.UUID `json:"provider_id"`
	ServiceID  uuid.UUID `json:"service_id"`
	At         time.Time `json:"at"`
	Staffable  bool      `json:"staffable"`
}
