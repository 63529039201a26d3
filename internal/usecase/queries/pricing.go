package queries

import (
	"autoparts-pos/internal/domain/pricing"
	"autoparts-pos/internal/pkg/errs"
)

//go:generate mockgen -source=pricing.go -destination=../../../tests/mock/queries/pricing_mock.go -package=queriesmock

type PriceConversionView struct {
	Net     pricing.Money
	Gross   pricing.Money
	TaxRate pricing.TaxRate
}

type CounterMovementView struct {
	Kind   pricing.MovementKind
	Seller string
	Lines  []pricing.LineTotal
	Total  pricing.Money
}

type PricingQueries interface {
	GrossFromNet(net pricing.Money) PriceConversionView
	NetFromGross(gross pricing.Money) PriceConversionView
	PurchaseTotals(items []pricing.LineItem, includeTax bool) pricing.PurchaseTotals
	CounterMovementTotal(kind, seller string, items []pricing.LineItem) (*CounterMovementView, error)
}

type pricingQueriesImpl struct {
	converter *pricing.Converter
	totals    *pricing.TotalsCalculator
}

// NewPricingQueries builds both calculators from the same rate.
func NewPricingQueries(rate pricing.TaxRate) PricingQueries {
	return &pricingQueriesImpl{
		converter: pricing.NewConverter(rate),
		totals:    pricing.NewTotalsCalculator(rate),
	}
}

func (q *pricingQueriesImpl) GrossFromNet(net pricing.Money) PriceConversionView {
	net = pricing.NewMoney(net.Int64())
	return PriceConversionView{
		Net:     net,
		Gross:   q.converter.GrossFromNet(net),
		TaxRate: q.converter.Rate(),
	}
}

// NetFromGross also serves the suggested purchase cost of a product sold at gross.
func (q *pricingQueriesImpl) NetFromGross(gross pricing.Money) PriceConversionView {
	gross = pricing.NewMoney(gross.Int64())
	return PriceConversionView{
		Net:     q.converter.NetFromGross(gross),
		Gross:   gross,
		TaxRate: q.converter.Rate(),
	}
}

func (q *pricingQueriesImpl) PurchaseTotals(items []pricing.LineItem, includeTax bool) pricing.PurchaseTotals {
	totals := q.totals.Compute(items)
	if !includeTax {
		return totals.WithoutTax()
	}
	return totals
}

func (q *pricingQueriesImpl) CounterMovementTotal(kind, seller string, items []pricing.LineItem) (*CounterMovementView, error) {
	k, err := pricing.ParseMovementKind(kind)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	movement, err := pricing.NewCounterMovement(k, seller, items)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	lines := make([]pricing.LineTotal, 0, len(items))
	for _, item := range movement.Items() {
		lines = append(lines, pricing.LineTotal{Item: item, Subtotal: item.Subtotal()})
	}

	return &CounterMovementView{
		Kind:   movement.Kind(),
		Seller: movement.Seller(),
		Lines:  lines,
		Total:  movement.Total(),
	}, nil
}
