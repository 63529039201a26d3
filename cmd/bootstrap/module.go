package bootstrap

import (
	"autoparts-pos/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	CatalogModule,
	components.UseCaseModule,
	components.HandlerModule,
)
