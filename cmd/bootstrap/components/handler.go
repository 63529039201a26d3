package components

import (
	"autoparts-pos/internal/handler"
	"autoparts-pos/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingHandler,
		api.NewStockHandler,
		api.NewCompatibilityHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
