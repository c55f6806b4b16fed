package errs

// Error categories. Every domain sentinel is marked with exactly one of these so
// callers can render a precise message without knowing every concrete error.
var (
	ErrValidation        = New("validation error")
	ErrInvalidTransition = New("invalid state transition")
	ErrCapacity          = New("capacity exceeded")
	ErrWindowClosed      = New("verification window closed")
	ErrAlreadyVerified   = New("verification code already used")
	ErrCodeMismatch      = New("verification code mismatch")
	ErrOverlap           = New("availability window overlaps")

	ErrNotFound  = New("not found")
	ErrForbidden = New("forbidden")

	ErrDatabaseOperationFailed = New("database operation failed")
)

// Category returns a sentinel error marked with the given category.
func Category(msg string, category error) error {
	return Mark(New(msg), category)
}
