//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"autoparts-pos/internal/domain/vehicle"
	"autoparts-pos/internal/pkg/errs"
	"autoparts-pos/internal/pkg/patch"
	"autoparts-pos/internal/usecase/commands"
	commandsmock "autoparts-pos/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCompatibilityUseCase(t *testing.T) (commands.CompatibilityCommands, *commandsmock.MockVehicleModelCatalog) {
	t.Helper()
	ctrl := gomock.NewController(t)
	catalog := commandsmock.NewMockVehicleModelCatalog(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return commands.NewCompatibilityUseCase(catalog, logger, time.Second), catalog
}

func yaris(year int, id string) vehicle.Model {
	return vehicle.Model{ID: id, Brand: "TOYOTA", Model: "YARIS", Year: year}
}

func TestAddRange_ResolvesEachYearInOrder(t *testing.T) {
	uc, catalog := newCompatibilityUseCase(t)

	gomock.InOrder(
		catalog.EXPECT().CreateOrGet(gomock.Any(), "TOYOTA", "YARIS", 2018).Return(yaris(2018, "a"), nil),
		catalog.EXPECT().CreateOrGet(gomock.Any(), "TOYOTA", "YARIS", 2019).Return(yaris(2019, "b"), nil),
		catalog.EXPECT().CreateOrGet(gomock.Any(), "TOYOTA", "YARIS", 2020).Return(yaris(2020, "c"), nil),
	)

	res, err := uc.AddRange(context.Background(), commands.AddRangeRequest{
		Brand:     " toyota ",
		Model:     "Yaris",
		YearStart: 2018,
		YearEnd:   patch.Ptr(2020),
	})

	require.NoError(t, err)
	assert.Equal(t, 3, res.AddedCount)
	assert.Equal(t, []vehicle.Model{yaris(2018, "a"), yaris(2019, "b"), yaris(2020, "c")}, res.Added)
	assert.Equal(t, []string{"a", "b", "c"}, res.Selection.IDs())
	assert.Empty(t, res.Failures)
}

func TestAddRange_SingleYearWhenEndOmitted(t *testing.T) {
	uc, catalog := newCompatibilityUseCase(t)

	catalog.EXPECT().CreateOrGet(gomock.Any(), "NISSAN", "V16", 2005).Return(vehicle.Model{ID: "n", Brand: "NISSAN", Model: "V16", Year: 2005}, nil).Times(1)

	res, err := uc.AddRange(context.Background(), commands.AddRangeRequest{Brand: "Nissan", Model: "V16", YearStart: 2005})

	require.NoError(t, err)
	assert.Equal(t, 1, res.AddedCount)
}

func TestAddRange_ValidationFailsBeforeAnyCall(t *testing.T) {
	tests := []struct {
		name    string
		req     commands.AddRangeRequest
		wantErr error
	}{
		{name: "year start below minimum", req: commands.AddRangeRequest{Brand: "Toyota", Model: "Yaris", YearStart: 1899}, wantErr: vehicle.ErrYearOutOfRange},
		{name: "year start above maximum", req: commands.AddRangeRequest{Brand: "Toyota", Model: "Yaris", YearStart: 2101}, wantErr: vehicle.ErrYearOutOfRange},
		{name: "end before start", req: commands.AddRangeRequest{Brand: "Toyota", Model: "Yaris", YearStart: 2020, YearEnd: patch.Ptr(2018)}, wantErr: vehicle.ErrInvalidYearRange},
		{name: "blank brand", req: commands.AddRangeRequest{Brand: "  ", Model: "Yaris", YearStart: 2020}, wantErr: vehicle.ErrBrandRequired},
		{name: "blank model", req: commands.AddRangeRequest{Brand: "Toyota", Model: "", YearStart: 2020}, wantErr: vehicle.ErrModelRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no expectations: any catalog call fails the test
			uc, _ := newCompatibilityUseCase(t)

			res, err := uc.AddRange(context.Background(), tt.req)

			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, vehicle.ErrValidation)
			assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		})
	}
}

func TestAddRange_AlreadySelectedYearsAreNotAddedTwice(t *testing.T) {
	uc, catalog := newCompatibilityUseCase(t)
	selected := []vehicle.Model{yaris(2018, "a"), yaris(2019, "b"), yaris(2020, "c")}

	catalog.EXPECT().CreateOrGet(gomock.Any(), "TOYOTA", "YARIS", 2018).Return(yaris(2018, "a"), nil)
	catalog.EXPECT().CreateOrGet(gomock.Any(), "TOYOTA", "YARIS", 2019).Return(yaris(2019, "b"), nil)
	catalog.EXPECT().CreateOrGet(gomock.Any(), "TOYOTA", "YARIS", 2020).Return(yaris(2020, "c"), nil)

	res, err := uc.AddRange(context.Background(), commands.AddRangeRequest{
		Brand: "Toyota", Model: "Yaris", YearStart: 2018, YearEnd: patch.Ptr(2020), Selected: selected,
	})

	require.NoError(t, err)
	assert.Zero(t, res.AddedCount)
	assert.Empty(t, res.Added)
	assert.Equal(t, selected, res.Selection.Models())
}

func TestAddRange_ContinuesPastFailedYear(t *testing.T) {
	uc, catalog := newCompatibilityUseCase(t)
	upstream := errors.New("catalog returned 500")

	gomock.InOrder(
		catalog.EXPECT().CreateOrGet(gomock.Any(), "TOYOTA", "YARIS", 2018).Return(yaris(2018, "a"), nil),
		catalog.EXPECT().CreateOrGet(gomock.Any(), "TOYOTA", "YARIS", 2019).Return(vehicle.Model{}, upstream),
		catalog.EXPECT().CreateOrGet(gomock.Any(), "TOYOTA", "YARIS", 2020).Return(yaris(2020, "c"), nil),
	)

	res, err := uc.AddRange(context.Background(), commands.AddRangeRequest{
		Brand: "Toyota", Model: "Yaris", YearStart: 2018, YearEnd: patch.Ptr(2020),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, res.AddedCount)
	assert.Equal(t, []string{"a", "c"}, res.Selection.IDs())
	require.Len(t, res.Failures, 1)
	assert.Equal(t, 2019, res.Failures[0].Year)
	assert.ErrorIs(t, res.Failures[0].Err, upstream)
}

func TestAddRange_ModelWithoutIDIsAFailure(t *testing.T) {
	uc, catalog := newCompatibilityUseCase(t)

	catalog.EXPECT().CreateOrGet(gomock.Any(), "TOYOTA", "YARIS", 2018).Return(vehicle.Model{Brand: "TOYOTA"}, nil)

	res, err := uc.AddRange(context.Background(), commands.AddRangeRequest{Brand: "Toyota", Model: "Yaris", YearStart: 2018})

	require.NoError(t, err)
	assert.Zero(t, res.AddedCount)
	require.Len(t, res.Failures, 1)
	assert.True(t, errs.Is(res.Failures[0].Err, errs.ErrCatalogRejected))
}

func TestAddRange_CancelledContextSkipsRemainingYears(t *testing.T) {
	uc, catalog := newCompatibilityUseCase(t)
	ctx, cancel := context.WithCancel(context.Background())

	catalog.EXPECT().CreateOrGet(gomock.Any(), "TOYOTA", "YARIS", 2018).
		DoAndReturn(func(context.Context, string, string, int) (vehicle.Model, error) {
			cancel()
			return yaris(2018, "a"), nil
		})

	res, err := uc.AddRange(ctx, commands.AddRangeRequest{
		Brand: "Toyota", Model: "Yaris", YearStart: 2018, YearEnd: patch.Ptr(2020),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, res.AddedCount)
	require.Len(t, res.Failures, 2)
	assert.Equal(t, 2019, res.Failures[0].Year)
	assert.Equal(t, 2020, res.Failures[1].Year)
	assert.ErrorIs(t, res.Failures[0].Err, context.Canceled)
}

func TestAddRange_PerCallTimeout(t *testing.T) {
	uc, catalog := newCompatibilityUseCase(t)

	catalog.EXPECT().CreateOrGet(gomock.Any(), "TOYOTA", "YARIS", 2018).
		DoAndReturn(func(ctx context.Context, _, _ string, _ int) (vehicle.Model, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return yaris(2018, "a"), nil
		})

	_, err := uc.AddRange(context.Background(), commands.AddRangeRequest{Brand: "Toyota", Model: "Yaris", YearStart: 2018})
	require.NoError(t, err)
}

func TestRemoveFromSelection(t *testing.T) {
	uc, _ := newCompatibilityUseCase(t)
	selected := []vehicle.Model{yaris(2018, "a"), yaris(2019, "b")}

	got := uc.RemoveFromSelection(selected, "a")

	assert.Equal(t, []string{"b"}, got.IDs())
	assert.Len(t, selected, 2)
	assert.Equal(t, []string{"a", "b"}, uc.RemoveFromSelection(selected, "missing").IDs())
	assert.Zero(t, uc.ClearSelection().Len())
}
