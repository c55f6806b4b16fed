package cancellation

import (
	"time"

	"booking-core/internal/domain/pricing"
	"booking-core/internal/pkg/errs"
)

var ErrInvalidPolicy = errs.Category("cancellation policy percentages must be between 0 and 100", errs.ErrValidation)

const (
	DefaultFreeWindow       = 48 * time.Hour
	DefaultLateFeePercent   = 50
	DefaultNoShowFeePercent = 100
)

// Policy is the fee schedule applied when a booking is cancelled.
//
//	hoursUntil >= FreeWindow     -> no fee
//	0 <= hoursUntil < FreeWindow -> LateFeePercent of the total
//	hoursUntil < 0               -> NoShowFeePercent of the total
type Policy struct {
	FreeWindow       time.Duration
	LateFeePercent   int64
	NoShowFeePercent int64
}

func NewPolicy(freeWindow time.Duration, latePercent, noShowPercent int64) (Policy, error) {
	if latePercent < 0 || latePercent > 100 || noShowPercent < 0 || noShowPercent > 100 || freeWindow < 0 {
		return Policy{}, ErrInvalidPolicy
	}
	return Policy{
		FreeWindow:       freeWindow,
		LateFeePercent:   latePercent,
		NoShowFeePercent: noShowPercent,
	}, nil
}

func DefaultPolicy() Policy {
	return Policy{
		FreeWindow:       DefaultFreeWindow,
		LateFeePercent:   DefaultLateFeePercent,
		NoShowFeePercent: DefaultNoShowFeePercent,
	}
}

func (p Policy) Fee(total pricing.Money, scheduledStart, cancelledAt time.Time) pricing.Money {
	until := scheduledStart.Sub(cancelledAt)
	switch {
	case until >= p.FreeWindow:
		return pricing.Zero()
	case until >= 0:
		return total.Percent(p.LateFeePercent)
	default:
		return total.Percent(p.NoShowFeePercent)
	}
}
