//go:build unit || e2e

package builder

import (
	"autoparts-pos/internal/domain/pricing"
	reqdto "autoparts-pos/internal/handler/dto/request"
)

type PurchaseBuilder struct {
	Items      []reqdto.LineItemRequest
	IncludeTax *bool
}

// NewPurchaseBuilder starts from two lines: 2 x 1500 and 3 x 990 (net 5970).
func NewPurchaseBuilder() *PurchaseBuilder {
	return &PurchaseBuilder{
		Items: []reqdto.LineItemRequest{
			{SKU: "FIL-001", Quantity: 2, UnitPrice: 1500},
			{SKU: "BUJ-014", Quantity: 3, UnitPrice: 990},
		},
	}
}

func (b *PurchaseBuilder) WithItem(sku string, quantity, unitPrice int64) *PurchaseBuilder {
	b.Items = append(b.Items, reqdto.LineItemRequest{SKU: sku, Quantity: reqdto.LenientInt(quantity), UnitPrice: reqdto.LenientInt(unitPrice)})
	return b
}

func (b *PurchaseBuilder) WithoutTax() *PurchaseBuilder {
	includeTax := false
	b.IncludeTax = &includeTax
	return b
}

// Build methods
func (b *PurchaseBuilder) BuildRequestDTO() reqdto.PurchaseTotalsRequest {
	return reqdto.PurchaseTotalsRequest{Items: b.Items, IncludeTax: b.IncludeTax}
}

func (b *PurchaseBuilder) BuildCounterMovementDTO(kind, seller string) reqdto.CounterMovementRequest {
	return reqdto.CounterMovementRequest{Kind: kind, Seller: seller, Items: b.Items}
}

func (b *PurchaseBuilder) BuildLineItems() []pricing.LineItem {
	return reqdto.ToLineItems(b.Items)
}
