//go:build unit

package vehicle_test

import (
	"testing"

	"autoparts-pos/internal/domain/vehicle"
	"autoparts-pos/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rangeCase struct {
	name      string
	brand     string
	model     string
	yearStart int
	yearEnd   *int
	errIs     error
}

func TestNewRange(t *testing.T) {
	t.Run("expands ascending years", func(t *testing.T) {
		r, err := vehicle.NewRange("Toyota", "Yaris", 2018, patch.Ptr(2020))
		require.NoError(t, err)

		assert.Equal(t, []int{2018, 2019, 2020}, r.Years())
		assert.Equal(t, 3, r.Len())
	})

	t.Run("normalizes names", func(t *testing.T) {
		r, err := vehicle.NewRange("  toyota ", "yaris sport", 2018, nil)
		require.NoError(t, err)

		assert.Equal(t, "TOYOTA", r.Brand())
		assert.Equal(t, "YARIS SPORT", r.Model())
	})

	t.Run("end year defaults to start year", func(t *testing.T) {
		r, err := vehicle.NewRange("Toyota", "Yaris", 2018, nil)
		require.NoError(t, err)

		assert.Equal(t, 2018, r.YearEnd())
		assert.Equal(t, []int{2018}, r.Years())
	})

	runRangeCases(t, []rangeCase{
		{name: "missing brand", brand: "", model: "Yaris", yearStart: 2018, errIs: vehicle.ErrBrandRequired},
		{name: "blank brand", brand: "   ", model: "Yaris", yearStart: 2018, errIs: vehicle.ErrBrandRequired},
		{name: "missing model", brand: "Toyota", model: "", yearStart: 2018, errIs: vehicle.ErrModelRequired},
		{name: "start below minimum", brand: "Toyota", model: "Yaris", yearStart: 1899, yearEnd: patch.Ptr(2000), errIs: vehicle.ErrYearOutOfRange},
		{name: "start above maximum", brand: "Toyota", model: "Yaris", yearStart: 2101, errIs: vehicle.ErrYearOutOfRange},
		{name: "end before start", brand: "Toyota", model: "Yaris", yearStart: 2020, yearEnd: patch.Ptr(2018), errIs: vehicle.ErrInvalidYearRange},
		{name: "end above maximum", brand: "Toyota", model: "Yaris", yearStart: 2099, yearEnd: patch.Ptr(2200), errIs: vehicle.ErrYearOutOfRange},
		{name: "minimum year", brand: "Ford", model: "T", yearStart: 1900},
		{name: "maximum year", brand: "Ford", model: "T", yearStart: 2100, yearEnd: patch.Ptr(2100)},
	})
}

func runRangeCases(t *testing.T, cases []rangeCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := vehicle.NewRange(c.brand, c.model, c.yearStart, c.yearEnd)
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.errIs)
			require.ErrorIs(t, err, vehicle.ErrValidation)
		})
	}
}
