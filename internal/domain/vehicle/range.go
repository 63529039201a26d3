package vehicle

import (
	"strings"

	"autoparts-pos/internal/pkg/patch"
)

const (
	MinYear = 1900
	MaxYear = 2100
)

// Range is a brand/model over an inclusive span of model years.
type Range struct {
	brand     string
	model     string
	yearStart int
	yearEnd   int
}

// NewRange normalizes brand and model to trimmed upper case. A nil yearEnd
// means the single year yearStart.
func NewRange(brand, model string, yearStart int, yearEnd *int) (Range, error) {
	brand = normalizeName(brand)
	if brand == "" {
		return Range{}, ErrBrandRequired
	}
	model = normalizeName(model)
	if model == "" {
		return Range{}, ErrModelRequired
	}
	if yearStart < MinYear || yearStart > MaxYear {
		return Range{}, ErrYearOutOfRange
	}
	end := patch.Coalesce(yearEnd, yearStart)
	if end < yearStart {
		return Range{}, ErrInvalidYearRange
	}
	if end > MaxYear {
		return Range{}, ErrYearOutOfRange
	}
	return Range{
		brand:     brand,
		model:     model,
		yearStart: yearStart,
		yearEnd:   end,
	}, nil
}

func (r Range) Brand() string  { return r.brand }
func (r Range) Model() string  { return r.model }
func (r Range) YearStart() int { return r.yearStart }
func (r Range) YearEnd() int   { return r.yearEnd }

func (r Range) Len() int {
	if r.yearEnd < r.yearStart {
		return 0
	}
	return r.yearEnd - r.yearStart + 1
}

// Years lists the range in ascending order.
func (r Range) Years() []int {
	years := make([]int, 0, r.Len())
	for y := r.yearStart; y <= r.yearEnd; y++ {
		years = append(years, y)
	}
	return years
}

func normalizeName(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
