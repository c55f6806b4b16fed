package response

import (
	"time"

	"booking-core/internal/domain/verification"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// IssuedCodeResponse omits Code for anyone but the provider.
type IssuedCodeResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	Code      string    `json:"code,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
	Issued    bool      `json:"issued"`
}

func FromIssuedCode(c *commands.IssuedCode) *IssuedCodeResponse {
	res := &IssuedCodeResponse{}
	_ = copier.Copy(res, c)
	return res
}

type VerificationResultResponse struct {
	BookingID      uuid.UUID  `json:"booking_id"`
	Verified       bool       `json:"verified"`
	VerifiedAt     *time.Time `json:"verified_at,omitempty"`
	FailedAttempts int        `json:"failed_attempts"`
}

func FromVerificationResult(r *verification.Result) *VerificationResultResponse {
	res := &VerificationResultResponse{}
	_ = copier.Copy(res, r)
	return res
}

type VerificationStatusResponse struct {
	BookingID      uuid.UUID  `json:"booking_id"`
	State          string     `json:"state"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	VerifiedAt     *time.Time `json:"verified_at,omitempty"`
	FailedAttempts int        `json:"failed_attempts"`
}

func FromVerificationStatusView(v *queries.VerificationStatusView) *VerificationStatusResponse {
	res := &VerificationStatusResponse{}
	_ = copier.Copy(res, v)
	return res
}
