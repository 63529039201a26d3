package repository

import (
	"context"
	"log/slog"

	"autoparts-pos/internal/domain/vehicle"
	"autoparts-pos/internal/infra"
	"autoparts-pos/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// The no-op update makes RETURNING yield the existing row on conflict.
const createOrGetVehicleModelSQL = `
INSERT INTO vehicle_models (id, brand, model, year)
VALUES ($1, $2, $3, $4)
ON CONFLICT (brand, model, year) DO UPDATE SET updated_at = now()
RETURNING id, brand, model, year`

type VehicleModelRepository struct {
	db     DBTX
	logger *slog.Logger
	newID  func() uuid.UUID
}

func NewVehicleModelRepository(db DBTX, logger *slog.Logger) *VehicleModelRepository {
	return &VehicleModelRepository{
		db:     db,
		logger: logger,
		newID:  uuid.New,
	}
}

func (r *VehicleModelRepository) CreateOrGet(ctx context.Context, brand, model string, year int) (vehicle.Model, error) {
	row := r.db.QueryRow(ctx, createOrGetVehicleModelSQL,
		pgconv.UUIDToPgtype(r.newID()), brand, model, int32(year))

	m, err := scanVehicleModel(row)
	if err != nil {
		return vehicle.Model{}, r.classify(err, "failed to create or get vehicle model")
	}
	return m, nil
}

// classify maps pgx errors to adapter kinds, all marked as database failures.
func (r *VehicleModelRepository) classify(err error, msg string) error {
	var kind infra.ErrorKind
	switch {
	case pgconv.IsNoRows(err):
		kind, msg = infra.KindNotFound, "vehicle model not found"
	case pgconv.PgErrorCode(err) == pgconv.CodeUniqueViolation:
		kind = infra.KindDuplicateKey
	case pgconv.PgErrorCode(err) == pgconv.CodeForeignKeyViolation:
		kind = infra.KindForeignKeyViolated
	default:
		kind = infra.KindDBFailure
	}
	return infra.WrapAdapterErr(r.logger, kind, msg, err)
}

func scanVehicleModel(row pgx.Row) (vehicle.Model, error) {
	var (
		id           pgtype.UUID
		brand, model string
		year         int32
	)
	if err := row.Scan(&id, &brand, &model, &year); err != nil {
		return vehicle.Model{}, err
	}
	return vehicle.Model{
		ID:    pgconv.UUIDStringFromPgtype(id),
		Brand: brand,
		Model: model,
		Year:  int(year),
	}, nil
}
