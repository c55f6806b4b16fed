package pricing

import "fmt"

// Money is an amount in minor currency units (cents).
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func Zero() Money {
	return Money{}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Times(n int64) Money {
	return Money{cents: m.cents * n}
}

// Percent returns p percent of m, rounded half up to the cent.
func (m Money) Percent(p int64) Money {
	return Money{cents: (m.cents*p + 50) / 100}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
