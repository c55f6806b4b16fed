package pricing

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type BillingUnit string

const (
	BillingPerVisit BillingUnit = "PER_VISIT"
	BillingPerNight BillingUnit = "PER_NIGHT"
)

func ParseBillingUnit(s string) (BillingUnit, error) {
	u := BillingUnit(strings.ToUpper(strings.TrimSpace(s)))
	if !u.IsValid() {
		return "", ErrInvalidBillingUnit
	}
	return u, nil
}

func (u BillingUnit) IsValid() bool {
	switch u {
	case BillingPerVisit, BillingPerNight:
		return true
	default:
		return false
	}
}

func (u BillingUnit) String() string {
	return string(u)
}

// ServiceDefinition is resolved by the catalog collaborator and treated as
// immutable input for the lifetime of a booking.
type ServiceDefinition struct {
	id               uuid.UUID
	providerID       uuid.UUID
	name             string
	unitPrice        Money
	billingUnit      BillingUnit
	duration         time.Duration
	capacity         int
	requiresStaffing bool
}

type ServiceDefinitionParams struct {
	ID               uuid.UUID
	ProviderID       uuid.UUID
	Name             string
	UnitPriceCents   int64
	BillingUnit      BillingUnit
	Duration         time.Duration
	Capacity         int
	RequiresStaffing bool
}

func NewServiceDefinition(p ServiceDefinitionParams) (*ServiceDefinition, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyServiceName
	}
	price, err := NewMoney(p.UnitPriceCents)
	if err != nil {
		return nil, err
	}
	if !p.BillingUnit.IsValid() {
		return nil, ErrInvalidBillingUnit
	}
	if p.Capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	if p.Duration < 0 {
		return nil, ErrNegativeDuration
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &ServiceDefinition{
		id:               id,
		providerID:       p.ProviderID,
		name:             name,
		unitPrice:        price,
		billingUnit:      p.BillingUnit,
		duration:         p.Duration,
		capacity:         p.Capacity,
		requiresStaffing: p.RequiresStaffing,
	}, nil
}

// AllowsUnits reports whether n units fit the provider's capacity. Zero capacity is unlimited.
func (s *ServiceDefinition) AllowsUnits(n int) bool {
	return s.capacity == 0 || n <= s.capacity
}

func (s *ServiceDefinition) IsStay() bool {
	return s.billingUnit == BillingPerNight
}

func (s *ServiceDefinition) ID() uuid.UUID            { return s.id }
func (s *ServiceDefinition) ProviderID() uuid.UUID    { return s.providerID }
func (s *ServiceDefinition) Name() string             { return s.name }
func (s *ServiceDefinition) UnitPrice() Money         { return s.unitPrice }
func (s *ServiceDefinition) BillingUnit() BillingUnit { return s.billingUnit }
func (s *ServiceDefinition) Duration() time.Duration  { return s.duration }
func (s *ServiceDefinition) Capacity() int            { return s.capacity }
func (s *ServiceDefinition) RequiresStaffing() bool   { return s.requiresStaffing }
