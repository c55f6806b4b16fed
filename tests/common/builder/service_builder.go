//go:build unit || e2e

package builder

import (
	"time"

	"booking-core/internal/domain/pricing"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ID               uuid.UUID
	ProviderID       uuid.UUID
	Name             string
	UnitPriceCents   int64
	BillingUnit      pricing.BillingUnit
	Duration         time.Duration
	Capacity         int
	RequiresStaffing bool
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:             uuid.New(),
		ProviderID:     uuid.New(),
		Name:           "Dog Walking",
		UnitPriceCents: 15000,
		BillingUnit:    pricing.BillingPerVisit,
		Duration:       time.Hour,
		Capacity:       4,
	}
}

func (s *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(s)
	return s
}

func (s *ServiceBuilder) BuildDomain() (*pricing.ServiceDefinition, error) {
	return pricing.NewServiceDefinition(s.Params())
}

// MustBuild is for fixtures whose validity is not under test.
func (s *ServiceBuilder) MustBuild() *pricing.ServiceDefinition {
	svc, err := s.BuildDomain()
	if err != nil {
		panic(err)
	}
	return svc
}

func (s *ServiceBuilder) Params() pricing.ServiceDefinitionParams {
	return pricing.ServiceDefinitionParams{
		ID:               s.ID,
		ProviderID:       s.ProviderID,
		Name:             s.Name,
		UnitPriceCents:   s.UnitPriceCents,
		BillingUnit:      s.BillingUnit,
		Duration:         s.Duration,
		Capacity:         s.Capacity,
		RequiresStaffing: s.RequiresStaffing,
	}
}

func (s *ServiceBuilder) WithProviderID(id uuid.UUID) *ServiceBuilder {
	s.ProviderID = id
	return s
}

func (s *ServiceBuilder) WithUnitPrice(cents int64) *ServiceBuilder {
	s.UnitPriceCents = cents
	return s
}

func (s *ServiceBuilder) WithCapacity(capacity int) *ServiceBuilder {
	s.Capacity = capacity
	return s
}

func (s *ServiceBuilder) WithDuration(d time.Duration) *ServiceBuilder {
	s.Duration = d
	return s
}

func (s *ServiceBuilder) RequiringStaff() *ServiceBuilder {
	s.RequiresStaffing = true
	return s
}

// AsBoarding is the overnight stay service: R500 per night, up to 5 dogs.
func (s *ServiceBuilder) AsBoarding() *ServiceBuilder {
	s.Name = "Boarding"
	s.UnitPriceCents = 50000
	s.BillingUnit = pricing.BillingPerNight
	s.Duration = 0
	s.Capacity = 5
	return s
}
