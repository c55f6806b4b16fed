package pricing

import "booking-core/internal/pkg/errs"

var (
	ErrServiceNotFound = errs.Category("service definition not found", errs.ErrNotFound)

	ErrNegativeAmount     = errs.Category("amount cannot be negative", errs.ErrValidation)
	ErrInvalidBillingUnit = errs.Category("billing unit must be PER_VISIT or PER_NIGHT", errs.ErrValidation)
	ErrEmptyServiceName   = errs.Category("service name cannot be empty", errs.ErrValidation)
	ErrNegativeCapacity   = errs.Category("capacity cannot be negative", errs.ErrValidation)
	ErrNegativeDuration   = errs.Category("duration cannot be negative", errs.ErrValidation)
	ErrInvalidUnitCount   = errs.Category("unit count must be at least 1", errs.ErrValidation)
	ErrStayEndRequired    = errs.Category("a per-night service requires a departure time", errs.ErrValidation)
	ErrStayEndNotAfter    = errs.Category("departure time must be after the scheduled start", errs.ErrValidation)
)
