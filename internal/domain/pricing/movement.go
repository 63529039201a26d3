package pricing

import (
	"errors"
	"strings"
)

var (
	ErrUnknownMovementKind = errors.New("unknown counter movement kind")
	ErrSellerRequired      = errors.New("seller is required for sales")
)

type MovementKind string

const (
	MovementSale        MovementKind = "VENTA"
	MovementLoss        MovementKind = "PERDIDA"
	MovementInternalUse MovementKind = "USO_INTERNO"
)

func ParseMovementKind(s string) (MovementKind, error) {
	k := MovementKind(strings.ToUpper(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", ErrUnknownMovementKind
	}
	return k, nil
}

func (k MovementKind) String() string {
	return string(k)
}

func (k MovementKind) IsValid() bool {
	switch k {
	case MovementSale, MovementLoss, MovementInternalUse:
		return true
	default:
		return false
	}
}

// CounterMovement is a sale, loss or internal use registered at the counter.
// Only sales carry money.
type CounterMovement struct {
	kind   MovementKind
	seller string
	items  []LineItem
}

func NewCounterMovement(kind MovementKind, seller string, items []LineItem) (*CounterMovement, error) {
	if !kind.IsValid() {
		return nil, ErrUnknownMovementKind
	}
	seller = strings.TrimSpace(seller)
	if kind == MovementSale && seller == "" {
		return nil, ErrSellerRequired
	}
	if kind != MovementSale {
		seller = ""
	}
	return &CounterMovement{
		kind:   kind,
		seller: seller,
		items:  append([]LineItem(nil), items...),
	}, nil
}

func (m *CounterMovement) Kind() MovementKind { return m.kind }
func (m *CounterMovement) Seller() string     { return m.seller }
func (m *CounterMovement) Items() []LineItem  { return append([]LineItem(nil), m.items...) }

func (m *CounterMovement) Total() Money {
	if m.kind != MovementSale {
		return 0
	}
	var total Money
	for _, item := range m.items {
		total = total.Add(item.Subtotal())
	}
	return total
}
