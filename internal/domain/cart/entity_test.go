//go:build unit

package cart_test

import (
	"testing"

	"cellar-shop/internal/domain/cart"
	"cellar-shop/internal/domain/product"
	"cellar-shop/internal/domain/stock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizedProduct(t *testing.T) *product.Product {
	t.Helper()
	p, err := product.NewSizedProduct("Rioja", 1500, stock.Ledger{stock.Size75cl: 5})
	require.NoError(t, err)
	return p
}

func TestReserve(t *testing.T) {
	t.Run("fill to stock then one more fails with available and requested", func(t *testing.T) {
		p := sizedProduct(t)

		size, qty, err := cart.Reserve(p, stock.Size75cl, 0, 5)
		require.NoError(t, err)
		assert.Equal(t, stock.Size75cl, size)
		assert.Equal(t, 5, qty)

		_, _, err = cart.Reserve(p, stock.Size75cl, qty, 1)
		var insufficient *stock.InsufficientStockError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 5, insufficient.Available)
		assert.Equal(t, 6, insufficient.Requested)
	})

	t.Run("sized product without size", func(t *testing.T) {
		_, _, err := cart.Reserve(sizedProduct(t), stock.SizeNone, 0, 1)
		assert.ErrorIs(t, err, stock.ErrSizeRequired)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		_, _, err := cart.Reserve(sizedProduct(t), stock.Size75cl, 0, 0)
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
	})

	t.Run("held plus requested over the line cap", func(t *testing.T) {
		_, _, err := cart.Reserve(sizedProduct(t), stock.Size75cl, stock.MaxLineQuantity, 1)
		assert.ErrorIs(t, err, cart.ErrQuantityTooLarge)
	})

	t.Run("sizeless product checks the scalar total", func(t *testing.T) {
		p, err := product.NewUnsizedProduct("Gift box", 500, 2)
		require.NoError(t, err)

		size, qty, err := cart.Reserve(p, stock.Size75cl, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, stock.SizeNone, size)
		assert.Equal(t, 2, qty)

		_, _, err = cart.Reserve(p, stock.SizeNone, 2, 1)
		var insufficient *stock.InsufficientStockError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 2, insufficient.Available)
		assert.Equal(t, 3, insufficient.Requested)
	})
}

func TestResize(t *testing.T) {
	p := sizedProduct(t)

	assert.NoError(t, cart.Resize(p, stock.Size75cl, 5))
	assert.NoError(t, cart.Resize(p, stock.Size75cl, 0))
	assert.ErrorIs(t, cart.Resize(p, stock.Size75cl, -1), cart.ErrNegativeQuantity)
	assert.ErrorIs(t, cart.Resize(p, stock.Size75cl, stock.MaxLineQuantity+1), cart.ErrQuantityTooLarge)

	var insufficient *stock.InsufficientStockError
	require.ErrorAs(t, cart.Resize(p, stock.Size75cl, 6), &insufficient)
	assert.Equal(t, 6, insufficient.Requested)
}

func TestItemOwnership(t *testing.T) {
	session := uuid.New()
	item := cart.ReconstructItem(uuid.New(), session, uuid.New(), stock.Size75cl, 1)

	assert.NoError(t, item.EnsureOwnedBy(session))
	assert.ErrorIs(t, item.EnsureOwnedBy(uuid.New()), cart.ErrNotOwner)
}

func TestSumCents(t *testing.T) {
	lines := []cart.Line{
		{Quantity: 2, UnitPriceCents: 1500},
		{Quantity: 1, UnitPriceCents: 999},
	}
	assert.Equal(t, int64(3999), cart.SumCents(lines))
	assert.Equal(t, int64(0), cart.SumCents(nil))
}
