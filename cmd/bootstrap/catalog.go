package bootstrap

import (
	"log/slog"

	"autoparts-pos/internal/infra/cache"
	"autoparts-pos/internal/infra/catalogclient"
	"autoparts-pos/internal/infra/repository"
	"autoparts-pos/internal/pkg/config"
	"autoparts-pos/internal/usecase/commands"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewVehicleModelCatalog,
	),
)

// NewVehicleModelCatalog picks the adapter named by CATALOG_DRIVER and wraps it
// with the redis cache when CATALOG_CACHE_REDIS_URL is set.
func NewVehicleModelCatalog(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.VehicleModelCatalog, error) {
	var catalog commands.VehicleModelCatalog
	switch cfg.Catalog.Driver {
	case config.CatalogDriverPostgres:
		pool, err := NewDB(lc, cfg)
		if err != nil {
			return nil, err
		}
		catalog = repository.NewVehicleModelRepository(pool, logger)
	default:
		catalog = catalogclient.New(cfg.Catalog.BaseURL, cfg.Catalog.RequestTimeout, logger)
	}

	if cfg.Catalog.CacheRedisURL == "" {
		return catalog, nil
	}

	client, err := NewRedis(lc, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("vehicle model cache enabled", "ttl", cfg.Catalog.CacheTTL)
	return cache.NewVehicleModelCatalog(catalog, client, cfg.Catalog.CacheTTL, logger), nil
}
