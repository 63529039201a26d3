package queries

import (
	"autoparts-pos/internal/domain/stock"
	"autoparts-pos/internal/pkg/errs"
)

//go:generate mockgen -source=stock.go -destination=../../../tests/mock/queries/stock_mock.go -package=queriesmock

type StockStatusView struct {
	Status   stock.Status
	Alert    bool
	Sellable bool
}

type StockItemView struct {
	SKU   string
	Name  string
	Level stock.Level
	StockStatusView
}

type StockQueries interface {
	Classify(current, minimum int) StockStatusView
	Filter(filter string, items []stock.Item) ([]StockItemView, error)
}

type stockQueriesImpl struct{}

func NewStockQueries() StockQueries {
	return &stockQueriesImpl{}
}

func (q *stockQueriesImpl) Classify(current, minimum int) StockStatusView {
	return statusView(stock.NewLevel(current, minimum))
}

func (q *stockQueriesImpl) Filter(filter string, items []stock.Item) ([]StockItemView, error) {
	f, err := stock.ParseFilter(filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	kept := stock.Apply(f, items)
	views := make([]StockItemView, 0, len(kept))
	for _, it := range kept {
		views = append(views, StockItemView{
			SKU:             it.SKU,
			Name:            it.Name,
			Level:           it.Level,
			StockStatusView: statusView(it.Level),
		})
	}
	return views, nil
}

func statusView(l stock.Level) StockStatusView {
	return StockStatusView{
		Status:   l.Status(),
		Alert:    l.Alert(),
		Sellable: l.Sellable(),
	}
}
