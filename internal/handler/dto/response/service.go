package response

import (
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID               uuid.UUID `json:"id"`
	ProviderID       uuid.UUID `json:"provider_id"`
	Name             string    `json:"name"`
	UnitPriceCents   int64     `json:"unit_price_cents"`
	UnitPriceAmount  string    `json:"unit_price_amount"`
	BillingUnit      string    `json:"billing_unit"`
	DurationMinutes  int       `json:"duration_minutes"`
	Capacity         int       `json:"capacity"`
	RequiresStaffing bool      `json:"requires_staffing"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	res := &ServiceResponse{}
	_ = copier.Copy(res, v)
	res.UnitPriceAmount = formatAmount(v.UnitPriceCents)
	return res
}

func FromServiceViews(vs []*queries.ServiceView) []*ServiceResponse {
	res := make([]*ServiceResponse, len(vs))
	for i, v := range vs {
		res[i] = FromServiceView(v)
	}
	return res
}
