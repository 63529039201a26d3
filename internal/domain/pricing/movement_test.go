//go:build unit

package pricing_test

import (
	"testing"

	"autoparts-pos/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterMovement(t *testing.T) {
	items := []pricing.LineItem{
		pricing.NewLineItem(2, 4990),
		pricing.NewLineItem(1, 12000),
	}

	t.Run("sale totals its lines", func(t *testing.T) {
		mv, err := pricing.NewCounterMovement(pricing.MovementSale, "  Juan  ", items)
		require.NoError(t, err)

		assert.Equal(t, pricing.Money(21980), mv.Total())
		assert.Equal(t, "Juan", mv.Seller())
		assert.Len(t, mv.Items(), 2)
	})

	t.Run("sale requires seller", func(t *testing.T) {
		mv, err := pricing.NewCounterMovement(pricing.MovementSale, "   ", items)
		require.ErrorIs(t, err, pricing.ErrSellerRequired)
		assert.Nil(t, mv)
	})

	t.Run("loss and internal use carry no money", func(t *testing.T) {
		for _, kind := range []pricing.MovementKind{pricing.MovementLoss, pricing.MovementInternalUse} {
			mv, err := pricing.NewCounterMovement(kind, "Juan", items)
			require.NoError(t, err)
			assert.Zero(t, mv.Total(), kind.String())
			assert.Empty(t, mv.Seller(), kind.String())
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := pricing.NewCounterMovement("DEVOLUCION", "Juan", items)
		require.ErrorIs(t, err, pricing.ErrUnknownMovementKind)
	})
}

func TestParseMovementKind(t *testing.T) {
	k, err := pricing.ParseMovementKind(" venta ")
	require.NoError(t, err)
	assert.Equal(t, pricing.MovementSale, k)

	k, err = pricing.ParseMovementKind("uso_interno")
	require.NoError(t, err)
	assert.Equal(t, pricing.MovementInternalUse, k)

	_, err = pricing.ParseMovementKind("")
	assert.ErrorIs(t, err, pricing.ErrUnknownMovementKind)
}
