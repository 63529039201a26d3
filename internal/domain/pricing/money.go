package pricing

import (
	"errors"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("amount must be a non-negative integer")

// Money is an amount in Chilean pesos. There is no fractional subunit.
// Values stay within [0, MaxMoney]; arithmetic saturates at MaxMoney.
type Money int64

// MaxMoney leaves room for net plus tax at any rate below 1.
const MaxMoney = Money(math.MaxInt64 / 2)

func NewMoney(amount int64) Money {
	switch {
	case amount < 0:
		return 0
	case amount > int64(MaxMoney):
		return MaxMoney
	}
	return Money(amount)
}

func (m Money) Int64() int64 { return int64(m) }

func (m Money) Add(other Money) Money {
	if other > MaxMoney-m {
		return MaxMoney
	}
	return m + other
}

func (m Money) Times(quantity int64) Money {
	if quantity <= 0 || m <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(m), uint64(quantity))
	if hi != 0 || lo > uint64(MaxMoney) {
		return MaxMoney
	}
	return Money(lo)
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(m))
}

// ParseMoney is the strict counterpart of ParseMoneyOrZero.
func ParseMoney(s string) (Money, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return 0, ErrInvalidAmount
	}
	return NewMoney(n), nil
}

// ParseMoneyOrZero reads the leading integer of s. Anything unparsable or
// negative yields 0.
func ParseMoneyOrZero(s string) Money {
	return NewMoney(parseIntPrefix(s))
}

func ParseQuantityOrZero(s string) int64 {
	n := parseIntPrefix(s)
	if n < 0 {
		return 0
	}
	return n
}

func parseIntPrefix(s string) int64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
