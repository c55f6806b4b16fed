package schedule

import "booking-core/internal/pkg/errs"

var (
	ErrAssignmentNotFound = errs.Category("schedule assignment not found", errs.ErrNotFound)
	ErrWindowNotFound     = errs.Category("availability window not found", errs.ErrNotFound)

	ErrProviderRequired = errs.Category("provider id is required", errs.ErrValidation)
	ErrStaffRequired    = errs.Category("staff id is required", errs.ErrValidation)
	ErrServiceRequired  = errs.Category("service id is required", errs.ErrValidation)
	ErrAlreadyAssigned  = errs.Category("staff member is already assigned to this service", errs.ErrValidation)
	ErrInvalidDay       = errs.Category("day of week must be between 0 (Sunday) and 6 (Saturday)", errs.ErrValidation)
	ErrInvalidTimeOfDay = errs.Category("time of day must be formatted as HH:MM", errs.ErrValidation)
	ErrInvalidWindow    = errs.Category("window start must be before window end", errs.ErrValidation)
	ErrWindowOverlap    = errs.Category("window overlaps an existing window on the same day", errs.ErrOverlap)
)
