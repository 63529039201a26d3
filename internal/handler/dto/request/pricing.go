package request

import (
	"autoparts-pos/internal/domain/pricing"
	"autoparts-pos/internal/pkg/patch"
)

type GrossFromNetRequest struct {
	Net LenientInt `json:"net"`
}

type NetFromGrossRequest struct {
	Gross LenientInt `json:"gross"`
}

type LineItemRequest struct {
	SKU       string     `json:"sku"`
	Quantity  LenientInt `json:"quantity"`
	UnitPrice LenientInt `json:"unit_price"`
}

type PurchaseTotalsRequest struct {
	Items      []LineItemRequest `json:"items" binding:"dive"`
	IncludeTax *bool             `json:"include_tax"`
}

type CounterMovementRequest struct {
	Kind   string            `json:"kind" binding:"required"`
	Seller string            `json:"seller"`
	Items  []LineItemRequest `json:"items" binding:"dive"`
}

func ToLineItems(items []LineItemRequest) []pricing.LineItem {
	out := make([]pricing.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, pricing.NewLineItem(it.Quantity.Int64(), it.UnitPrice.Int64()))
	}
	return out
}

// IncludesTax defaults to true when include_tax is omitted.
func (r *PurchaseTotalsRequest) IncludesTax() bool {
	return patch.Coalesce(r.IncludeTax, true)
}
