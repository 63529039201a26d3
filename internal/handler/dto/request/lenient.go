package request

import (
	"bytes"
	"encoding/json"

	"autoparts-pos/internal/domain/pricing"
)

// LenientInt accepts a JSON number, a numeric string, "" or null for amounts,
// quantities and stock counts. Input without a leading integer reads as 0,
// and so do negatives.
type LenientInt int64

func (n *LenientInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = LenientInt(pricing.ParseMoneyOrZero(s))
		return nil
	}
	// null, numbers, and anything else a form might send
	*n = LenientInt(pricing.ParseMoneyOrZero(string(b)))
	return nil
}

func (n LenientInt) Int64() int64 { return int64(n) }

func (n LenientInt) Int() int { return int(n) }

func (n LenientInt) Money() pricing.Money { return pricing.NewMoney(int64(n)) }
