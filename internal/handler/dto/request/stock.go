package request

import "autoparts-pos/internal/domain/stock"

type StockClassifyRequest struct {
	Current LenientInt `json:"current"`
	Minimum LenientInt `json:"minimum"`
}

type StockProductRequest struct {
	SKU     string     `json:"sku" binding:"required"`
	Name    string     `json:"name"`
	Current LenientInt `json:"current"`
	Minimum LenientInt `json:"minimum"`
}

type StockFilterRequest struct {
	Filter   string                `json:"filter"`
	Products []StockProductRequest `json:"products" binding:"dive"`
}

func (r *StockFilterRequest) ToItems() []stock.Item {
	items := make([]stock.Item, 0, len(r.Products))
	for _, p := range r.Products {
		items = append(items, stock.Item{
			SKU:   p.SKU,
			Name:  p.Name,
			Level: stock.NewLevel(p.Current.Int(), p.Minimum.Int()),
		})
	}
	return items
}
