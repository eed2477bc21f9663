package stock

import (
	"fmt"

	"cellar-shop/internal/pkg/errs"
)

// MaxLineQuantity caps the units one order line or cart reservation may ask for.
const MaxLineQuantity = 9999

// InsufficientStockError carries what the ledger could satisfy for display.
type InsufficientStockError struct {
	Size      SizeKey
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	if e.Size == SizeNone {
		return fmt.Sprintf("insufficient stock: available %d, requested %d", e.Available, e.Requested)
	}
	return fmt.Sprintf("insufficient stock for %s: available %d, requested %d", e.Size, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == errs.ErrInsufficientStock
}

// Checker is the read view a reservation is validated against.
type Checker interface {
	HasSizes() bool
	Available(size SizeKey) int
}

// ResolveSize applies the size rules for a product: sized products require a
// size, sizeless products ignore any given size.
func ResolveSize(c Checker, size SizeKey) (SizeKey, error) {
	if !c.HasSizes() {
		return SizeNone, nil
	}
	if size == SizeNone {
		return SizeNone, ErrSizeRequired
	}
	if !size.IsValid() {
		return SizeNone, &UnknownSizeError{Label: string(size)}
	}
	return size, nil
}

// CheckAvailability fails when requested exceeds the quantity held for size.
func CheckAvailability(c Checker, size SizeKey, requested int) error {
	available := c.Available(size)
	if requested > available {
		return &InsufficientStockError{Size: size, Available: available, Requested: requested}
	}
	return nil
}
