package commands

import (
	"context"

	"autoparts-pos/internal/domain/vehicle"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// VehicleModelCatalog creates a brand/model/year variant or returns the one that already exists.
// Implementations must be idempotent per (brand, model, year).
type VehicleModelCatalog interface {
	CreateOrGet(ctx context.Context, brand, model string, year int) (vehicle.Model, error)
}
