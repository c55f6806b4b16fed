//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"booking-core/internal/domain/pricing"
	"booking-core/internal/pkg/errs"
	"booking-core/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCalculator_Price(t *testing.T) {
	calc := pricing.NewDefaultCalculator()
	start := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		end := start.Add(d)
		return &end
	}

	tests := []struct {
		name      string
		service   *builder.ServiceBuilder
		unitCount int
		end       *time.Time
		want      int64
		errIs     error
	}{
		{
			name:      "per visit multiplies by unit count",
			service:   builder.NewServiceBuilder().WithUnitPrice(15000),
			unitCount: 3,
			want:      45000,
		},
		{
			name:      "per visit ignores scheduled end",
			service:   builder.NewServiceBuilder().WithUnitPrice(15000),
			unitCount: 1,
			end:       at(5 * time.Hour),
			want:      15000,
		},
		{
			name:      "stay of exactly three nights",
			service:   builder.NewServiceBuilder().AsBoarding(),
			unitCount: 3,
			end:       at(72 * time.Hour),
			want:      450000,
		},
		{
			name:      "stay of 25 hours bills two nights",
			service:   builder.NewServiceBuilder().AsBoarding(),
			unitCount: 1,
			end:       at(25 * time.Hour),
			want:      100000,
		},
		{
			name:      "partial day bills one night",
			service:   builder.NewServiceBuilder().AsBoarding(),
			unitCount: 2,
			end:       at(3 * time.Hour),
			want:      100000,
		},
		{
			name:      "stay without end",
			service:   builder.NewServiceBuilder().AsBoarding(),
			unitCount: 1,
			errIs:     pricing.ErrStayEndRequired,
		},
		{
			name:      "stay ending at start",
			service:   builder.NewServiceBuilder().AsBoarding(),
			unitCount: 1,
			end:       at(0),
			errIs:     pricing.ErrStayEndNotAfter,
		},
		{
			name:      "stay ending before start",
			service:   builder.NewServiceBuilder().AsBoarding(),
			unitCount: 1,
			end:       at(-time.Hour),
			errIs:     pricing.ErrStayEndNotAfter,
		},
		{
			name:      "zero units",
			service:   builder.NewServiceBuilder(),
			unitCount: 0,
			errIs:     pricing.ErrInvalidUnitCount,
		},
		{
			name:      "free service",
			service:   builder.NewServiceBuilder().WithUnitPrice(0),
			unitCount: 2,
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := tt.service.BuildDomain()
			require.NoError(t, err)

			got, err := calc.Price(svc, tt.unitCount, start, tt.end)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Cents())
		})
	}
}

func TestPricingProperties(t *testing.T) {
	calc := pricing.NewDefaultCalculator()
	start := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)

	t.Run("per visit total equals unit price times units", func(t *testing.T) {
		for _, price := range []int64{1, 999, 15000, 123457} {
			for units := 1; units <= 6; units++ {
				svc := builder.NewServiceBuilder().WithUnitPrice(price).WithCapacity(0).MustBuild()
				got, err := calc.Price(svc, units, start, nil)
				require.NoError(t, err)
				assert.Equal(t, price*int64(units), got.Cents())
			}
		}
	})

	t.Run("stay total equals unit price times started nights times units", func(t *testing.T) {
		svc := builder.NewServiceBuilder().AsBoarding().WithCapacity(0).MustBuild()
		for hours := 1; hours <= 24*5; hours += 7 {
			end := start.Add(time.Duration(hours) * time.Hour)
			nights := int64((hours + 23) / 24)
			for units := 1; units <= 3; units++ {
				got, err := calc.Price(svc, units, start, &end)
				require.NoError(t, err)
				assert.Equal(t, 50000*nights*int64(units), got.Cents(), "hours=%d units=%d", hours, units)
			}
		}
	})
}

func TestNights(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(1), pricing.Nights(start, start.Add(time.Minute)))
	assert.Equal(t, int64(1), pricing.Nights(start, start.Add(24*time.Hour)))
	assert.Equal(t, int64(2), pricing.Nights(start, start.Add(24*time.Hour+time.Second)))
	assert.Equal(t, int64(1), pricing.Nights(start, start))
}

func TestServiceDefinition(t *testing.T) {
	t.Run("valid definition", func(t *testing.T) {
		svc, err := builder.NewServiceBuilder().BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, pricing.BillingPerVisit, svc.BillingUnit())
		assert.False(t, svc.IsStay())
		assert.True(t, svc.AllowsUnits(4))
		assert.False(t, svc.AllowsUnits(5))
	})

	t.Run("zero capacity is unlimited", func(t *testing.T) {
		svc := builder.NewServiceBuilder().WithCapacity(0).MustBuild()
		assert.True(t, svc.AllowsUnits(1000))
	})

	cases := []struct {
		name   string
		mutate func(*builder.ServiceBuilder)
		errIs  error
	}{
		{"empty name", func(b *builder.ServiceBuilder) { b.Name = "  " }, pricing.ErrEmptyServiceName},
		{"negative price", func(b *builder.ServiceBuilder) { b.UnitPriceCents = -1 }, pricing.ErrNegativeAmount},
		{"unknown billing unit", func(b *builder.ServiceBuilder) { b.BillingUnit = "PER_HOUR" }, pricing.ErrInvalidBillingUnit},
		{"negative capacity", func(b *builder.ServiceBuilder) { b.Capacity = -1 }, pricing.ErrNegativeCapacity},
		{"negative duration", func(b *builder.ServiceBuilder) { b.Duration = -time.Minute }, pricing.ErrNegativeDuration},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc, err := builder.NewServiceBuilder().With(c.mutate).BuildDomain()
			require.Nil(t, svc)
			require.ErrorIs(t, err, c.errIs)
		})
	}

	t.Run("billing unit parsing", func(t *testing.T) {
		u, err := pricing.ParseBillingUnit(" per_night ")
		require.NoError(t, err)
		assert.Equal(t, pricing.BillingPerNight, u)

		_, err = pricing.ParseBillingUnit("boarding")
		require.ErrorIs(t, err, pricing.ErrInvalidBillingUnit)
	})
}

func TestMoney(t *testing.T) {
	m, err := pricing.NewMoney(450000)
	require.NoError(t, err)
	assert.Equal(t, int64(225000), m.Percent(50).Cents())
	assert.Equal(t, "4500.00", m.String())

	odd, err := pricing.NewMoney(101)
	require.NoError(t, err)
	assert.Equal(t, int64(51), odd.Percent(50).Cents())

	_, err = pricing.NewMoney(-5)
	require.ErrorIs(t, err, pricing.ErrNegativeAmount)
}
