package shared

import "booking-core/internal/pkg/errs"

var (
	ErrNotParticipant = errs.Category("party does not participate in this booking", errs.ErrForbidden)
	ErrNotRequester   = errs.Category("only the requester may perform this action", errs.ErrForbidden)
	ErrNotProvider    = errs.Category("only the provider may perform this action", errs.ErrForbidden)
	ErrNotOwner       = errs.Category("resource belongs to another provider", errs.ErrForbidden)
)
