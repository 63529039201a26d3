package stock

import (
	"errors"
	"strings"
)

var ErrUnknownFilter = errors.New("unknown stock filter")

type Status string

const (
	StatusOK  Status = "ok"
	StatusLow Status = "low"
	StatusOut Status = "out"
)

func (s Status) String() string {
	return string(s)
}

// Level is the current stock of a product against its configured minimum.
// Negative values are read as 0.
type Level struct {
	Current int
	Minimum int
}

func NewLevel(current, minimum int) Level {
	return Level{Current: max(current, 0), Minimum: max(minimum, 0)}
}

func Classify(l Level) Status {
	switch {
	case l.Current <= 0:
		return StatusOut
	case l.Current <= l.Minimum:
		return StatusLow
	default:
		return StatusOK
	}
}

func (l Level) Status() Status { return Classify(l) }

// Alert reports whether the level is at or below the minimum, out of stock included.
func (l Level) Alert() bool { return l.Current <= l.Minimum }

func (l Level) Sellable() bool { return l.Current > 0 }

type Filter string

const (
	FilterAll Filter = "all"
	FilterLow Filter = "low"
	FilterOut Filter = "out"
)

func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FilterAll, nil
	}
	switch f {
	case FilterAll, FilterLow, FilterOut:
		return f, nil
	default:
		return "", ErrUnknownFilter
	}
}

func (f Filter) Match(l Level) bool {
	switch f {
	case FilterLow:
		return l.Alert()
	case FilterOut:
		return !l.Sellable()
	default:
		return true
	}
}

type Item struct {
	SKU   string
	Name  string
	Level Level
}

// Apply keeps the items matching f in their original order.
func Apply(f Filter, items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if f.Match(it.Level) {
			out = append(out, it)
		}
	}
	return out
}
