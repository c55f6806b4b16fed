package pricing

import "time"

const night = 24 * time.Hour

type Calculator interface {
	Price(svc *ServiceDefinition, unitCount int, start time.Time, end *time.Time) (Money, error)
}

type DefaultCalculator struct{}

func NewDefaultCalculator() *DefaultCalculator {
	return &DefaultCalculator{}
}

// Price chooses the formula from the declared billing unit only.
func (DefaultCalculator) Price(svc *ServiceDefinition, unitCount int, start time.Time, end *time.Time) (Money, error) {
	if unitCount < 1 {
		return Money{}, ErrInvalidUnitCount
	}

	switch svc.BillingUnit() {
	case BillingPerVisit:
		return svc.UnitPrice().Times(int64(unitCount)), nil
	case BillingPerNight:
		if end == nil {
			return Money{}, ErrStayEndRequired
		}
		if !end.After(start) {
			return Money{}, ErrStayEndNotAfter
		}
		return svc.UnitPrice().Times(Nights(start, *end) * int64(unitCount)), nil
	default:
		return Money{}, ErrInvalidBillingUnit
	}
}

// Nights counts started 24h periods, with a minimum of one.
func Nights(start, end time.Time) int64 {
	d := end.Sub(start)
	if d <= 0 {
		return 1
	}
	n := int64(d / night)
	if d%night != 0 {
		n++
	}
	return n
}
