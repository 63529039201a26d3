package response

import "autoparts-pos/internal/usecase/queries"

type StockStatusResponse struct {
	Status   string `json:"status"`
	Alert    bool   `json:"alert"`
	Sellable bool   `json:"sellable"`
}

func FromStockStatus(v queries.StockStatusView) *StockStatusResponse {
	return &StockStatusResponse{
		Status:   v.Status.String(),
		Alert:    v.Alert,
		Sellable: v.Sellable,
	}
}

type StockProductResponse struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Current  int    `json:"current"`
	Minimum  int    `json:"minimum"`
	Status   string `json:"status"`
	Alert    bool   `json:"alert"`
	Sellable bool   `json:"sellable"`
}

type StockFilterResponse struct {
	Products []StockProductResponse `json:"products"`
	Count    int                    `json:"count"`
}

func FromStockItems(items []queries.StockItemView) *StockFilterResponse {
	products := make([]StockProductResponse, len(items))
	for i, it := range items {
		products[i] = StockProductResponse{
			SKU:      it.SKU,
			Name:     it.Name,
			Current:  it.Level.Current,
			Minimum:  it.Level.Minimum,
			Status:   it.Status.String(),
			Alert:    it.Alert,
			Sellable: it.Sellable,
		}
	}
	return &StockFilterResponse{Products: products, Count: len(products)}
}
