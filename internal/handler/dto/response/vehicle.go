package response

import (
	"context"
	"errors"

	"autoparts-pos/internal/domain/vehicle"
	"autoparts-pos/internal/pkg/errs"
	"autoparts-pos/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

const (
	FailureCatalogUnavailable = "catalog_unavailable"
	FailureCatalogRejected    = "catalog_rejected"
	FailureStorage            = "storage_failure"
	FailureCancelled          = "cancelled"
	FailureUnknown            = "unknown"
)

type VehicleModelResponse struct {
	ID    string `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

type YearFailureResponse struct {
	Year   int    `json:"year"`
	Reason string `json:"reason"`
}

type AddVehicleRangeResponse struct {
	Added      []VehicleModelResponse `json:"added"`
	AddedCount int                    `json:"added_count"`
	Failures   []YearFailureResponse  `json:"failures"`
	Selected   []VehicleModelResponse `json:"selected"`
}

type SelectionResponse struct {
	Selected []VehicleModelResponse `json:"selected"`
	Count    int                    `json:"count"`
}

func FromVehicleModels(models []vehicle.Model) []VehicleModelResponse {
	res := make([]VehicleModelResponse, 0, len(models))
	if len(models) == 0 {
		return res
	}
	_ = copier.Copy(&res, &models)
	return res
}

func FromAddRangeResult(r *commands.AddRangeResult) *AddVehicleRangeResponse {
	failures := make([]YearFailureResponse, len(r.Failures))
	for i, f := range r.Failures {
		failures[i] = YearFailureResponse{Year: f.Year, Reason: FailureReason(f.Err)}
	}
	return &AddVehicleRangeResponse{
		Added:      FromVehicleModels(r.Added),
		AddedCount: r.AddedCount,
		Failures:   failures,
		Selected:   FromVehicleModels(r.Selection.Models()),
	}
}

func FromSelection(s vehicle.Selection) *SelectionResponse {
	return &SelectionResponse{
		Selected: FromVehicleModels(s.Models()),
		Count:    s.Len(),
	}
}

func FailureReason(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return FailureCancelled
	case errs.Is(err, errs.ErrCatalogRejected):
		return FailureCatalogRejected
	case errs.Is(err, errs.ErrDatabaseOperationFailed):
		return FailureStorage
	case errs.Is(err, errs.ErrCatalogUnavailable), errors.Is(err, context.DeadlineExceeded):
		return FailureCatalogUnavailable
	default:
		return FailureUnknown
	}
}
