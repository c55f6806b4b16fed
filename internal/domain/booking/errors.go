package booking

import "booking-core/internal/pkg/errs"

var (
	ErrBookingNotFound = errs.Category("booking not found", errs.ErrNotFound)

	ErrRequesterRequired       = errs.Category("requester id is required", errs.ErrValidation)
	ErrProviderRequired        = errs.Category("provider id is required", errs.ErrValidation)
	ErrServiceRequired         = errs.Category("service definition is required", errs.ErrValidation)
	ErrServiceProviderMismatch = errs.Category("service does not belong to provider", errs.ErrValidation)
	ErrSelfBooking             = errs.Category("requester and provider must differ", errs.ErrValidation)
	ErrScheduledStartRequired  = errs.Category("scheduled start is required", errs.ErrValidation)
	ErrScheduledStartInPast    = errs.Category("scheduled start must be in the future", errs.ErrValidation)
	ErrScheduledEndNotAfter    = errs.Category("scheduled end must be after scheduled start", errs.ErrValidation)
	ErrInvalidUnitCount        = errs.Category("unit count must be at least 1", errs.ErrValidation)
	ErrDuplicateSubject        = errs.Category("subject ids must be unique", errs.ErrValidation)
	ErrInvalidDecision         = errs.Category("decision must be ACCEPT or DECLINE", errs.ErrValidation)
	ErrDeclineReasonRequired   = errs.Category("a reason is required when declining", errs.ErrValidation)
	ErrNotStaffable            = errs.Category("no staff member is available for the requested time", errs.ErrValidation)

	ErrCapacityExceeded = errs.Category("unit count exceeds service capacity", errs.ErrCapacity)

	ErrNotPending        = errs.Category("booking is not pending", errs.ErrInvalidTransition)
	ErrNotCancellable    = errs.Category("booking can no longer be cancelled", errs.ErrInvalidTransition)
	ErrNotAccepted       = errs.Category("booking is not accepted", errs.ErrInvalidTransition)
	ErrAppointmentNotDue = errs.Category("appointment has not taken place yet", errs.ErrInvalidTransition)
	ErrConcurrentUpdate  = errs.Category("booking was modified concurrently", errs.ErrInvalidTransition)
)
