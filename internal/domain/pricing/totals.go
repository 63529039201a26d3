package pricing

type LineItem struct {
	Quantity  int64
	UnitPrice Money
}

func NewLineItem(quantity int64, unitPrice int64) LineItem {
	if quantity < 0 {
		quantity = 0
	}
	return LineItem{Quantity: quantity, UnitPrice: NewMoney(unitPrice)}
}

func (li LineItem) Subtotal() Money {
	return li.UnitPrice.Times(li.Quantity)
}

type LineTotal struct {
	Item     LineItem
	Subtotal Money
}

// PurchaseTotals is derived from line items and never stored on its own.
type PurchaseTotals struct {
	Lines []LineTotal
	Net   Money
	Tax   Money
	Total Money
}

// WithoutTax is the same purchase registered without IVA.
func (t PurchaseTotals) WithoutTax() PurchaseTotals {
	t.Tax = 0
	t.Total = t.Net
	return t
}

type TotalsCalculator struct {
	rate TaxRate
}

func NewTotalsCalculator(rate TaxRate) *TotalsCalculator {
	return &TotalsCalculator{rate: rate}
}

func (c *TotalsCalculator) Rate() TaxRate { return c.rate }

func (c *TotalsCalculator) Compute(items []LineItem) PurchaseTotals {
	totals := PurchaseTotals{Lines: make([]LineTotal, 0, len(items))}
	for _, item := range items {
		sub := item.Subtotal()
		totals.Lines = append(totals.Lines, LineTotal{Item: item, Subtotal: sub})
		totals.Net = totals.Net.Add(sub)
	}
	totals.Tax = c.TaxOn(totals.Net)
	totals.Total = totals.Net.Add(totals.Tax)
	return totals
}

func (c *TotalsCalculator) TaxOn(net Money) Money {
	if net <= 0 {
		return 0
	}
	return NewMoney(net.Decimal().Mul(c.rate.Decimal()).Round(0).IntPart())
}
