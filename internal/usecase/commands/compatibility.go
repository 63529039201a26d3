package commands

import (
	"context"
	"log/slog"
	"time"

	"autoparts-pos/internal/domain/vehicle"
	"autoparts-pos/internal/pkg/errs"
)

type AddRangeRequest struct {
	Brand     string
	Model     string
	YearStart int
	YearEnd   *int
	Selected  []vehicle.Model
}

// YearFailure records a year whose create-or-get call failed. The rest of the range still ran.
type YearFailure struct {
	Year int
	Err  error
}

type AddRangeResult struct {
	Added      []vehicle.Model
	AddedCount int
	Failures   []YearFailure
	Selection  vehicle.Selection
}

//go:generate mockgen -source=compatibility.go -destination=../../../tests/mock/commands/compatibility_mock.go -package=commandsmock

type CompatibilityCommands interface {
	AddRange(ctx context.Context, req AddRangeRequest) (*AddRangeResult, error)
	RemoveFromSelection(selected []vehicle.Model, id string) vehicle.Selection
	ClearSelection() vehicle.Selection
}

type compatibilityUseCaseImpl struct {
	catalog     VehicleModelCatalog
	logger      *slog.Logger
	callTimeout time.Duration
}

func NewCompatibilityUseCase(catalog VehicleModelCatalog, logger *slog.Logger, callTimeout time.Duration) CompatibilityCommands {
	return &compatibilityUseCaseImpl{
		catalog:     catalog,
		logger:      logger,
		callTimeout: callTimeout,
	}
}

// AddRange validates the range, then resolves each year in ascending order,
// one call at a time. Years already in the selection are not added twice.
func (uc *compatibilityUseCaseImpl) AddRange(ctx context.Context, req AddRangeRequest) (*AddRangeResult, error) {
	r, err := vehicle.NewRange(req.Brand, req.Model, req.YearStart, req.YearEnd)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	resolved := make([]vehicle.Model, 0, r.Len())
	var failures []YearFailure

	for _, year := range r.Years() {
		if ctxErr := ctx.Err(); ctxErr != nil {
			failures = append(failures, YearFailure{Year: year, Err: ctxErr})
			continue
		}

		m, err := uc.createOrGet(ctx, r, year)
		if err != nil {
			uc.logger.Warn("vehicle model create-or-get failed",
				slog.String("brand", r.Brand()),
				slog.String("model", r.Model()),
				slog.Int("year", year),
				slog.String("error", err.Error()),
			)
			failures = append(failures, YearFailure{Year: year, Err: err})
			continue
		}
		resolved = append(resolved, m)
	}

	selection, added := vehicle.NewSelection(req.Selected...).Merge(resolved)

	return &AddRangeResult{
		Added:      added,
		AddedCount: len(added),
		Failures:   failures,
		Selection:  selection,
	}, nil
}

func (uc *compatibilityUseCaseImpl) createOrGet(ctx context.Context, r vehicle.Range, year int) (vehicle.Model, error) {
	if uc.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.callTimeout)
		defer cancel()
	}

	m, err := uc.catalog.CreateOrGet(ctx, r.Brand(), r.Model(), year)
	if err != nil {
		return vehicle.Model{}, err
	}
	if m.ID == "" {
		return vehicle.Model{}, errs.Mark(errs.New("catalog returned a model without id"), errs.ErrCatalogRejected)
	}
	return m, nil
}

func (uc *compatibilityUseCaseImpl) RemoveFromSelection(selected []vehicle.Model, id string) vehicle.Selection {
	return vehicle.NewSelection(selected...).Remove(id)
}

func (uc *compatibilityUseCaseImpl) ClearSelection() vehicle.Selection {
	return vehicle.NewSelection()
}
