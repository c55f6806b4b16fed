package commands

//go:generate mockgen -source=service.go -destination=../../../tests/mock/commands/service.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"booking-core/internal/domain/pricing"
	"booking-core/internal/usecase/queries"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterServiceRequest struct {
	Name             string
	UnitPriceCents   int64
	BillingUnit      string
	DurationMinutes  int
	Capacity         int
	RequiresStaffing bool
}

// ServiceCommands lets providers publish the definitions bookings are priced from.
type ServiceCommands interface {
	Register(ctx context.Context, req RegisterServiceRequest, providerID uuid.UUID) (*queries.ServiceView, error)
	Update(ctx context.Context, serviceID uuid.UUID, req RegisterServiceRequest, providerID uuid.UUID) (*queries.ServiceView, error)
}

type serviceCommandsImpl struct {
	catalog shared.ServiceCatalog
}

func NewServiceCommands(catalog shared.ServiceCatalog) ServiceCommands {
	return &serviceCommandsImpl{catalog: catalog}
}

func (uc *serviceCommandsImpl) Register(ctx context.Context, req RegisterServiceRequest, providerID uuid.UUID) (*queries.ServiceView, error) {
	svc, err := buildService(uuid.Nil, req, providerID)
	if err != nil {
		return nil, err
	}
	if err = uc.catalog.Save(ctx, svc); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "service registered", "service_id", svc.ID(), "provider_id", providerID, "billing_unit", svc.BillingUnit())
	return queries.NewServiceView(svc), nil
}

// Update replaces a definition in place. Existing bookings keep their stored
// totals until the provider reprices them.
func (uc *serviceCommandsImpl) Update(ctx context.Context, serviceID uuid.UUID, req RegisterServiceRequest, providerID uuid.UUID) (*queries.ServiceView, error) {
	existing, err := uc.catalog.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if existing.ProviderID() != providerID {
		return nil, shared.ErrNotOwner
	}
	svc, err := buildService(serviceID, req, providerID)
	if err != nil {
		return nil, err
	}
	if err = uc.catalog.Save(ctx, svc); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "service updated", "service_id", serviceID, "provider_id", providerID)
	return queries.NewServiceView(svc), nil
}

func buildService(id uuid.UUID, req RegisterServiceRequest, providerID uuid.UUID) (*pricing.ServiceDefinition, error) {
	unit, err := pricing.ParseBillingUnit(req.BillingUnit)
	if err != nil {
		return nil, err
	}
	return pricing.NewServiceDefinition(pricing.ServiceDefinitionParams{
		ID:               id,
		ProviderID:       providerID,
		Name:             req.Name,
		UnitPriceCents:   req.UnitPriceCents,
		BillingUnit:      unit,
		Duration:         time.Duration(req.DurationMinutes) * time.Minute,
		Capacity:         req.Capacity,
		RequiresStaffing: req.RequiresStaffing,
	})
}
