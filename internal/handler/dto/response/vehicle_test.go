//go:build unit

package response_test

import (
	"context"
	"testing"

	"autoparts-pos/internal/domain/vehicle"
	"autoparts-pos/internal/handler/dto/response"
	"autoparts-pos/internal/pkg/errs"
	"autoparts-pos/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
)

func TestFailureReason(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "rejected", err: errs.Mark(errs.New("422"), errs.ErrCatalogRejected), want: response.FailureCatalogRejected},
		{name: "unavailable", err: errs.Wrap(errs.Mark(errs.New("502"), errs.ErrCatalogUnavailable), "post"), want: response.FailureCatalogUnavailable},
		{name: "deadline", err: context.DeadlineExceeded, want: response.FailureCatalogUnavailable},
		{name: "storage", err: errs.Mark(errs.New("pg down"), errs.ErrDatabaseOperationFailed), want: response.FailureStorage},
		{name: "cancelled", err: context.Canceled, want: response.FailureCancelled},
		{name: "other", err: assert.AnError, want: response.FailureUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, response.FailureReason(tt.err))
		})
	}
}

func TestFromAddRangeResult(t *testing.T) {
	a := vehicle.Model{ID: "a", Brand: "TOYOTA", Model: "YARIS", Year: 2018}
	c := vehicle.Model{ID: "c", Brand: "TOYOTA", Model: "YARIS", Year: 2020}
	selection := vehicle.NewSelection(a, c)

	res := response.FromAddRangeResult(&commands.AddRangeResult{
		Added:      []vehicle.Model{a, c},
		AddedCount: 2,
		Failures:   []commands.YearFailure{{Year: 2019, Err: context.DeadlineExceeded}},
		Selection:  selection,
	})

	assert.Equal(t, 2, res.AddedCount)
	assert.Equal(t, []response.VehicleModelResponse{
		{ID: "a", Brand: "TOYOTA", Model: "YARIS", Year: 2018},
		{ID: "c", Brand: "TOYOTA", Model: "YARIS", Year: 2020},
	}, res.Selected)
	assert.Equal(t, []response.YearFailureResponse{{Year: 2019, Reason: response.FailureCatalogUnavailable}}, res.Failures)
}

func TestFromVehicleModels_Empty(t *testing.T) {
	res := response.FromVehicleModels(nil)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}
