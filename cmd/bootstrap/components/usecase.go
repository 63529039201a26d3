package components

import (
	"log/slog"

	"autoparts-pos/internal/pkg/config"
	"autoparts-pos/internal/usecase/commands"
	"autoparts-pos/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewCompatibilityCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPricingQueries,
		queries.NewStockQueries,
	),
)

func NewCompatibilityCommands(catalog commands.VehicleModelCatalog, logger *slog.Logger, cfg config.Config) commands.CompatibilityCommands {
	return commands.NewCompatibilityUseCase(catalog, logger, cfg.Catalog.RequestTimeout)
}
