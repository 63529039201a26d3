package response

import (
	"autoparts-pos/internal/domain/pricing"
	"autoparts-pos/internal/usecase/queries"
)

type PriceConversionResponse struct {
	Net     int64   `json:"net"`
	Gross   int64   `json:"gross"`
	TaxRate float64 `json:"tax_rate"`
}

func FromPriceConversion(v queries.PriceConversionView) *PriceConversionResponse {
	return &PriceConversionResponse{
		Net:     v.Net.Int64(),
		Gross:   v.Gross.Int64(),
		TaxRate: v.TaxRate.Float64(),
	}
}

type LineTotalResponse struct {
	SKU       string `json:"sku,omitempty"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Subtotal  int64  `json:"subtotal"`
}

type PurchaseTotalsResponse struct {
	Lines      []LineTotalResponse `json:"lines"`
	Net        int64               `json:"net"`
	Tax        int64               `json:"tax"`
	Total      int64               `json:"total"`
	IncludeTax bool                `json:"include_tax"`
}

// FromPurchaseTotals pairs each computed line with the SKU sent at the same position.
func FromPurchaseTotals(t pricing.PurchaseTotals, skus []string, includeTax bool) *PurchaseTotalsResponse {
	return &PurchaseTotalsResponse{
		Lines:      fromLineTotals(t.Lines, skus),
		Net:        t.Net.Int64(),
		Tax:        t.Tax.Int64(),
		Total:      t.Total.Int64(),
		IncludeTax: includeTax,
	}
}

type CounterMovementResponse struct {
	Kind   string              `json:"kind"`
	Seller string              `json:"seller,omitempty"`
	Lines  []LineTotalResponse `json:"lines"`
	Total  int64               `json:"total"`
}

func FromCounterMovement(v *queries.CounterMovementView, skus []string) *CounterMovementResponse {
	return &CounterMovementResponse{
		Kind:   v.Kind.String(),
		Seller: v.Seller,
		Lines:  fromLineTotals(v.Lines, skus),
		Total:  v.Total.Int64(),
	}
}

func fromLineTotals(lines []pricing.LineTotal, skus []string) []LineTotalResponse {
	res := make([]LineTotalResponse, len(lines))
	for i, l := range lines {
		res[i] = LineTotalResponse{
			Quantity:  l.Item.Quantity,
			UnitPrice: l.Item.UnitPrice.Int64(),
			Subtotal:  l.Subtotal.Int64(),
		}
		if i < len(skus) {
			res[i].SKU = skus[i]
		}
	}
	return res
}
