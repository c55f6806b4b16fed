package verification

import "booking-core/internal/pkg/errs"

var (
	ErrCodeNotIssued       = errs.Category("no verification code has been issued for this booking", errs.ErrNotFound)
	ErrCodeWindowClosed    = errs.Category("verification window is closed", errs.ErrWindowClosed)
	ErrCodeAlreadyVerified = errs.Category("verification code has already been used", errs.ErrAlreadyVerified)
	ErrCodeMismatch        = errs.Category("verification code does not match", errs.ErrCodeMismatch)
	ErrBookingNotAccepted  = errs.Category("verification codes are only issued for accepted bookings", errs.ErrInvalidTransition)
	ErrCodeRequired        = errs.Category("verification code is required", errs.ErrValidation)
	ErrInvalidCodeLength   = errs.Category("verification code length must be between 4 and 12", errs.ErrValidation)
	ErrInvalidWindow       = errs.Category("verification window durations must not be negative", errs.ErrValidation)
)
