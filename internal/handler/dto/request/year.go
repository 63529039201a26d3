package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidYear = errors.New("year must be an integer")

// YearInput is a model year from a form. null, "" or a missing key leave it
// unset. Anything else must be a whole number and is kept as sent, negatives
// included, so range validation decides whether it is acceptable.
type YearInput struct {
	value int
	set   bool
}

func NewYearInput(year int) YearInput {
	return YearInput{value: year, set: true}
}

func (y *YearInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*y = YearInput{}
		return nil
	}

	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*y = YearInput{}
			return nil
		}
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return ErrInvalidYear
	}
	*y = NewYearInput(n)
	return nil
}

func (y YearInput) MarshalJSON() ([]byte, error) {
	if !y.set {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(y.value)), nil
}

func (y YearInput) IsSet() bool { return y.set }

// Int is 0 when unset.
func (y YearInput) Int() int { return y.value }

// Ptr is nil when unset.
func (y YearInput) Ptr() *int {
	if !y.set {
		return nil
	}
	v := y.value
	return &v
}
