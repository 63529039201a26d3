package pricing

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidTaxRate = errors.New("tax rate must be at least 0 and below 1")

// DefaultTaxRate is the Chilean IVA (19%).
var DefaultTaxRate = TaxRate{value: decimal.RequireFromString("0.19")}

type TaxRate struct {
	value decimal.Decimal
}

func NewTaxRate(v decimal.Decimal) (TaxRate, error) {
	if v.IsNegative() || v.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return TaxRate{}, ErrInvalidTaxRate
	}
	return TaxRate{value: v}, nil
}

func ParseTaxRate(s string) (TaxRate, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return TaxRate{}, ErrInvalidTaxRate
	}
	return NewTaxRate(v)
}

func (r TaxRate) Decimal() decimal.Decimal { return r.value }

// Factor is 1 + rate, the multiplier from net to gross.
func (r TaxRate) Factor() decimal.Decimal {
	return decimal.NewFromInt(1).Add(r.value)
}

func (r TaxRate) Float64() float64 { return r.value.InexactFloat64() }

func (r TaxRate) String() string { return r.value.String() }
