package request

import (
	"booking-core/internal/pkg/patch"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"
)

type RegisterServiceRequest struct {
	Name             string `json:"name" binding:"required,max=200"`
	UnitPriceCents   int64  `json:"unit_price_cents" binding:"min=0"`
	BillingUnit      string `json:"billing_unit" binding:"required"`
	DurationMinutes  int    `json:"duration_minutes" binding:"min=0"`
	Capacity         int    `json:"capacity" binding:"min=0"`
	RequiresStaffing bool   `json:"requires_staffing"`
}

func (r *RegisterServiceRequest) ToCommand() commands.RegisterServiceRequest {
	return commands.RegisterServiceRequest{
		Name:             r.Name,
		UnitPriceCents:   r.UnitPriceCents,
		BillingUnit:      r.BillingUnit,
		DurationMinutes:  r.DurationMinutes,
		Capacity:         r.Capacity,
		RequiresStaffing: r.RequiresStaffing,
	}
}

type UpdateServiceRequest struct {
	Name             *string `json:"name" binding:"omitempty,max=200"`
	UnitPriceCents   *int64  `json:"unit_price_cents" binding:"omitempty,min=0"`
	BillingUnit      *string `json:"billing_unit"`
	DurationMinutes  *int    `json:"duration_minutes" binding:"omitempty,min=0"`
	Capacity         *int    `json:"capacity" binding:"omitempty,min=0"`
	RequiresStaffing *bool   `json:"requires_staffing"`
}

// Merge fills absent fields from the current definition.
func (r *UpdateServiceRequest) Merge(existing *queries.ServiceView) commands.RegisterServiceRequest {
	return commands.RegisterServiceRequest{
		Name:             patch.Coalesce(r.Name, existing.Name),
		UnitPriceCents:   patch.Coalesce(r.UnitPriceCents, existing.UnitPriceCents),
		BillingUnit:      patch.Coalesce(r.BillingUnit, existing.BillingUnit),
		DurationMinutes:  patch.Coalesce(r.DurationMinutes, existing.DurationMinutes),
		Capacity:         patch.Coalesce(r.Capacity, existing.Capacity),
		RequiresStaffing: patch.Coalesce(r.RequiresStaffing, existing.RequiresStaffing),
	}
}

type ListServicesQuery struct {
	ProviderID string `form:"provider_id" binding:"required,uuid"`
}
