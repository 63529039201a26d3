package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"autoparts-pos/internal/domain/vehicle"

	"github.com/redis/go-redis/v9"
)

const vehicleModelKeyPrefix = "vehicle-model:"

// Store is the subset of redis.Cmdable the cache needs.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

type Catalog interface {
	CreateOrGet(ctx context.Context, brand, model string, year int) (vehicle.Model, error)
}

// VehicleModelCatalog memoizes create-or-get results. Redis errors are logged
// and the call goes through to the wrapped catalog.
type VehicleModelCatalog struct {
	next   Catalog
	store  Store
	ttl    time.Duration
	logger *slog.Logger
}

func NewVehicleModelCatalog(next Catalog, store Store, ttl time.Duration, logger *slog.Logger) *VehicleModelCatalog {
	return &VehicleModelCatalog{next: next, store: store, ttl: ttl, logger: logger}
}

func (c *VehicleModelCatalog) CreateOrGet(ctx context.Context, brand, model string, year int) (vehicle.Model, error) {
	key := vehicleModelKey(brand, model, year)

	if m, ok := c.lookup(ctx, key); ok {
		return m, nil
	}

	m, err := c.next.CreateOrGet(ctx, brand, model, year)
	if err != nil {
		return vehicle.Model{}, err
	}

	c.remember(ctx, key, m)
	return m, nil
}

func (c *VehicleModelCatalog) lookup(ctx context.Context, key string) (vehicle.Model, bool) {
	raw, err := c.store.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("vehicle model cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return vehicle.Model{}, false
	}

	var m vehicle.Model
	if err := json.Unmarshal(raw, &m); err != nil || m.ID == "" {
		c.logger.Warn("vehicle model cache entry is corrupt", slog.String("key", key))
		return vehicle.Model{}, false
	}
	return m, true
}

func (c *VehicleModelCatalog) remember(ctx context.Context, key string, m vehicle.Model) {
	raw, err := json.Marshal(m)
	if err != nil {
		return
	}
	if err := c.store.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("vehicle model cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// vehicleModelKey length-prefixes brand and model so no pair of names can
// produce the same key.
func vehicleModelKey(brand, model string, year int) string {
	return fmt.Sprintf("%s%d:%s|%d:%s|%d", vehicleModelKeyPrefix, len(brand), brand, len(model), model, year)
}
