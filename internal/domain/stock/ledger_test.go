//go:build unit

package stock_test

import (
	"encoding/json"
	"testing"

	"cellar-shop/internal/domain/stock"
	"cellar-shop/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSizeLabel(t *testing.T) {
	t.Run("spellings of the same size collapse to one key", func(t *testing.T) {
		groups := map[stock.SizeKey][]string{
			stock.Size75cl: {"75cl", "75 CL", "750ml", "750 mL", "0.75L", "0,75 litre", "0.75 Liter"},
			stock.Size1L:   {"1L", "1 l", "1 Litre", "1000ml", "100cl", "1.0L"},
			stock.Size1_5L: {"1.5L", "1,5 l", "1-5L", "1500ML", "magnum"},
			stock.Size5cl:  {"5cl", "50ml", "0.05L"},
			stock.Size70cl: {"70cl", "700 ml", "0.7 litres"},
		}
		for want, labels := range groups {
			for _, label := range labels {
				got, err := stock.NormalizeSizeLabel(label)
				require.NoError(t, err, label)
				assert.Equal(t, want, got, label)
			}
		}
	})

	t.Run("unrecognised labels are rejected", func(t *testing.T) {
		for _, label := range []string{"", "   ", "2L", "jeroboam", "75", "cl"} {
			_, err := stock.NormalizeSizeLabel(label)
			require.Error(t, err, label)
			assert.ErrorIs(t, err, stock.ErrUnknownSize)

			var unknown *stock.UnknownSizeError
			require.ErrorAs(t, err, &unknown)
			assert.Equal(t, label, unknown.Label)
		}
	})

	t.Run("every vocabulary key normalizes to itself", func(t *testing.T) {
		for _, key := range stock.Vocabulary() {
			got, err := stock.NormalizeSizeLabel(string(key))
			require.NoError(t, err)
			assert.Equal(t, key, got)
		}
	})
}

func TestParseStockMap(t *testing.T) {
	testCases := []struct {
		name     string
		input    any
		opts     stock.ParseOptions
		expected stock.Ledger
		errIs    error
	}{
		{
			name:  "mapping with mixed spellings, filled",
			input: map[string]any{"75cl": 3, "1 Litre": 2.9},
			opts:  stock.StrictFull,
			expected: stock.Ledger{
				stock.Size5cl: 0, stock.Size20cl: 0, stock.Size35cl: 0, stock.Size50cl: 0,
				stock.Size70cl: 0, stock.Size75cl: 3, stock.Size1L: 2, stock.Size1_5L: 0,
			},
		},
		{
			name:     "list of pairs, not filled",
			input:    []any{map[string]any{"key": "70cl", "quantity": 4}, map[string]any{"size": "50 cl", "qty": "6"}},
			opts:     stock.StrictPartial,
			expected: stock.Ledger{stock.Size70cl: 4, stock.Size50cl: 6},
		},
		{
			name:     "typed entries",
			input:    []stock.Entry{{Key: "magnum", Quantity: 1}},
			opts:     stock.StrictPartial,
			expected: stock.Ledger{stock.Size1_5L: 1},
		},
		{
			name:     "nested legacy wrapper",
			input:    map[string]any{"stockBySize": map[string]any{"75cl": map[string]any{"quantity": 7}}},
			opts:     stock.StrictPartial,
			expected: stock.Ledger{stock.Size75cl: 7},
		},
		{
			name:  "wrapper with a total alongside, strict",
			input: map[string]any{"sizes": map[string]any{"75cl": 3}, "total": 3},
			opts:  stock.StrictFull,
			expected: stock.Ledger{
				stock.Size5cl: 0, stock.Size20cl: 0, stock.Size35cl: 0, stock.Size50cl: 0,
				stock.Size70cl: 0, stock.Size75cl: 3, stock.Size1L: 0, stock.Size1_5L: 0,
			},
		},
		{
			name:  "wrapper with a total alongside, tolerant",
			input: json.RawMessage(`{"total":5,"stock_by_size":{"75cl":3,"1L":2}}`),
			opts:  stock.Tolerant,
			expected: stock.Ledger{
				stock.Size5cl: 0, stock.Size20cl: 0, stock.Size35cl: 0, stock.Size50cl: 0,
				stock.Size70cl: 0, stock.Size75cl: 3, stock.Size1L: 2, stock.Size1_5L: 0,
			},
		},
		{
			name:     "flat mapping with a total field",
			input:    map[string]any{"70cl": 2, "totalStock": 2},
			opts:     stock.StrictPartial,
			expected: stock.Ledger{stock.Size70cl: 2},
		},
		{
			name:     "raw json",
			input:    json.RawMessage(`{"sizes":[{"key":"20cl","quantity":2}]}`),
			opts:     stock.StrictPartial,
			expected: stock.Ledger{stock.Size20cl: 2},
		},
		{
			name:  "unknown key rejected",
			input: map[string]any{"75cl": 1, "jeroboam": 2},
			opts:  stock.StrictPartial,
			errIs: stock.ErrUnknownSize,
		},
		{
			name:     "unknown key dropped when tolerant",
			input:    map[string]any{"75cl": 1, "jeroboam": 2},
			opts:     stock.ParseOptions{RejectUnknown: false, Coercion: stock.CoercionStrict},
			expected: stock.Ledger{stock.Size75cl: 1},
		},
		{
			name:  "negative rejected in strict mode",
			input: map[string]any{"75cl": -1},
			opts:  stock.StrictPartial,
			errIs: stock.ErrInvalidQuantity,
		},
		{
			name:  "non-numeric rejected in strict mode",
			input: map[string]any{"75cl": "lots"},
			opts:  stock.StrictPartial,
			errIs: stock.ErrInvalidQuantity,
		},
		{
			name:     "bad quantities coerced to zero in soft mode",
			input:    map[string]any{"75cl": "lots", "70cl": -4, "1L": nil},
			opts:     stock.ParseOptions{RejectUnknown: true, Coercion: stock.CoercionSoft},
			expected: stock.Ledger{stock.Size75cl: 0, stock.Size70cl: 0, stock.Size1L: 0},
		},
		{
			name:  "duplicate canonical key rejected in strict mode",
			input: map[string]any{"75cl": 1, "750ml": 2},
			opts:  stock.StrictPartial,
			errIs: stock.ErrDuplicateSize,
		},
		{
			name:     "duplicate canonical key summed in soft mode",
			input:    map[string]any{"75cl": 1, "750ml": 2},
			opts:     stock.ParseOptions{RejectUnknown: true, Coercion: stock.CoercionSoft},
			expected: stock.Ledger{stock.Size75cl: 3},
		},
		{
			name:  "unsupported shape",
			input: 42,
			opts:  stock.StrictPartial,
			errIs: stock.ErrUnsupportedForm,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := stock.ParseStockMap(tc.input, tc.opts)
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, actual); diff != "" {
				t.Errorf("ledger mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeTotalStock(t *testing.T) {
	t.Run("total equals the supplied quantities when filled", func(t *testing.T) {
		inputs := []map[string]any{
			{},
			{"75cl": 5},
			{"75cl": 5, "1L": 3, "5cl": 12},
			{"20cl": 1, "35cl": 1, "50cl": 1, "70cl": 1, "75cl": 1, "1L": 1, "1.5L": 1, "5cl": 1},
		}
		for _, in := range inputs {
			sum := 0
			for _, v := range in {
				sum += v.(int)
			}
			ledger, err := stock.ParseStockMap(in, stock.StrictFull)
			require.NoError(t, err)
			assert.Len(t, ledger, len(stock.Vocabulary()))
			assert.Equal(t, sum, stock.ComputeTotalStock(ledger))
			assert.Equal(t, sum, ledger.Total())
		}
	})

	t.Run("absent keys count as zero", func(t *testing.T) {
		assert.Equal(t, 4, stock.ComputeTotalStock(stock.Ledger{stock.Size75cl: 4}))
		assert.Equal(t, 0, stock.ComputeTotalStock(nil))
	})

	t.Run("merge overwrites only the patched sizes", func(t *testing.T) {
		base := stock.NewLedger().Merge(stock.Ledger{stock.Size75cl: 4, stock.Size1L: 2})
		merged := base.Merge(stock.Ledger{stock.Size1L: 9})
		assert.Equal(t, 4, merged.Quantity(stock.Size75cl))
		assert.Equal(t, 9, merged.Quantity(stock.Size1L))
		assert.Equal(t, 13, merged.Total())
		assert.Equal(t, 2, base.Quantity(stock.Size1L), "merge must not mutate the receiver")
	})
}

type fakeChecker struct {
	sized  bool
	ledger stock.Ledger
	total  int
}

func (f fakeChecker) HasSizes() bool { return f.sized }
func (f fakeChecker) Available(size stock.SizeKey) int {
	if f.sized {
		return f.ledger.Quantity(size)
	}
	return f.total
}

func TestCheckAvailability(t *testing.T) {
	sized := fakeChecker{sized: true, ledger: stock.Ledger{stock.Size75cl: 5}}

	t.Run("sized product requires a size", func(t *testing.T) {
		_, err := stock.ResolveSize(sized, stock.SizeNone)
		assert.ErrorIs(t, err, stock.ErrSizeRequired)
	})

	t.Run("sizeless product ignores the size", func(t *testing.T) {
		size, err := stock.ResolveSize(fakeChecker{total: 3}, stock.Size75cl)
		require.NoError(t, err)
		assert.Equal(t, stock.SizeNone, size)
	})

	t.Run("request within stock passes", func(t *testing.T) {
		assert.NoError(t, stock.CheckAvailability(sized, stock.Size75cl, 5))
	})

	t.Run("request beyond stock carries available and requested", func(t *testing.T) {
		err := stock.CheckAvailability(sized, stock.Size75cl, 6)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInsufficientStock))

		var insufficient *stock.InsufficientStockError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 5, insufficient.Available)
		assert.Equal(t, 6, insufficient.Requested)
	})

	t.Run("sizeless product checks the scalar total", func(t *testing.T) {
		err := stock.CheckAvailability(fakeChecker{total: 2}, stock.SizeNone, 3)
		var insufficient *stock.InsufficientStockError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 2, insufficient.Available)
	})
}
