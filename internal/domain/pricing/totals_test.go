//go:build unit

package pricing_test

import (
	"math"
	"testing"

	"autoparts-pos/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalsCalculator_Compute(t *testing.T) {
	calc := pricing.NewTotalsCalculator(pricing.DefaultTaxRate)

	t.Run("aggregates lines", func(t *testing.T) {
		items := []pricing.LineItem{
			pricing.NewLineItem(2, 1500),
			pricing.NewLineItem(3, 990),
		}

		actual := calc.Compute(items)

		assert.Equal(t, pricing.Money(5970), actual.Net)
		assert.Equal(t, pricing.Money(1134), actual.Tax)
		assert.Equal(t, pricing.Money(7104), actual.Total)

		want := []pricing.LineTotal{
			{Item: items[0], Subtotal: 3000},
			{Item: items[1], Subtotal: 2970},
		}
		if diff := cmp.Diff(want, actual.Lines); diff != "" {
			t.Errorf("lines mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty purchase", func(t *testing.T) {
		actual := calc.Compute(nil)

		assert.Zero(t, actual.Net)
		assert.Zero(t, actual.Tax)
		assert.Zero(t, actual.Total)
		assert.NotNil(t, actual.Lines)
		assert.Empty(t, actual.Lines)
	})

	t.Run("tax rounds half up", func(t *testing.T) {
		actual := calc.Compute([]pricing.LineItem{pricing.NewLineItem(1, 50)})

		assert.Equal(t, pricing.Money(10), actual.Tax)
		assert.Equal(t, pricing.Money(60), actual.Total)
	})

	t.Run("invalid lines count as zero", func(t *testing.T) {
		items := []pricing.LineItem{
			pricing.NewLineItem(-4, 1000),
			pricing.NewLineItem(2, -300),
			pricing.NewLineItem(1, 100),
		}

		actual := calc.Compute(items)

		assert.Equal(t, pricing.Money(0), actual.Lines[0].Subtotal)
		assert.Equal(t, pricing.Money(0), actual.Lines[1].Subtotal)
		assert.Equal(t, pricing.Money(100), actual.Net)
	})

	t.Run("line subtotals sum to net", func(t *testing.T) {
		var items []pricing.LineItem
		for i := int64(1); i <= 40; i++ {
			items = append(items, pricing.NewLineItem(i%7, i*137+3))
		}

		actual := calc.Compute(items)

		var sum pricing.Money
		for _, line := range actual.Lines {
			require.Equal(t, line.Item.Subtotal(), line.Subtotal)
			sum = sum.Add(line.Subtotal)
		}
		assert.Equal(t, actual.Net, sum)
		assert.Equal(t, calc.TaxOn(actual.Net), actual.Tax)
		assert.Equal(t, actual.Net+actual.Tax, actual.Total)
	})

	t.Run("without tax", func(t *testing.T) {
		actual := calc.Compute([]pricing.LineItem{pricing.NewLineItem(1, 10000)}).WithoutTax()

		assert.Equal(t, pricing.Money(10000), actual.Net)
		assert.Zero(t, actual.Tax)
		assert.Equal(t, pricing.Money(10000), actual.Total)
		assert.Len(t, actual.Lines, 1)
	})
}

func TestTotalsCalculator_TaxOn(t *testing.T) {
	calc := pricing.NewTotalsCalculator(pricing.DefaultTaxRate)

	assert.Equal(t, pricing.Money(1900), calc.TaxOn(10000))
	assert.Equal(t, pricing.Money(3), calc.TaxOn(15))
	assert.Equal(t, pricing.Money(0), calc.TaxOn(2))
	assert.Equal(t, pricing.Money(0), calc.TaxOn(-10))
}

func TestTotalsCalculator_Compute_LargeAmounts(t *testing.T) {
	calc := pricing.NewTotalsCalculator(pricing.DefaultTaxRate)

	tests := []struct {
		name  string
		items []pricing.LineItem
	}{
		{"single line product overflows", []pricing.LineItem{pricing.NewLineItem(1e10, 1e10)}},
		{"sum of lines overflows", []pricing.LineItem{
			pricing.NewLineItem(1, math.MaxInt64),
			pricing.NewLineItem(1, math.MaxInt64),
		}},
		{"tax pushes total past the limit", []pricing.LineItem{pricing.NewLineItem(1, int64(pricing.MaxMoney))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := calc.Compute(tt.items)

			assert.Equal(t, pricing.MaxMoney, actual.Net)
			assert.GreaterOrEqual(t, actual.Tax, pricing.Money(0))
			assert.Equal(t, pricing.MaxMoney, actual.Total)
			for _, line := range actual.Lines {
				assert.GreaterOrEqual(t, line.Subtotal, pricing.Money(0))
			}
		})
	}
}

func TestConverter_LargeAmounts(t *testing.T) {
	conv := pricing.NewConverter(pricing.DefaultTaxRate)

	gross := conv.GrossFromNet(pricing.MaxMoney)
	assert.Equal(t, pricing.MaxMoney, gross)
	assert.Greater(t, conv.NetFromGross(pricing.MaxMoney), pricing.Money(0))
}
