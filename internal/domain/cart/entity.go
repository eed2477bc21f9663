package cart

import (
	"errors"
	"fmt"

	"cellar-shop/internal/domain/stock"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
	ErrQuantityTooLarge = fmt.Errorf("quantity cannot exceed %d", stock.MaxLineQuantity)
	ErrNotOwner         = errors.New("cart item belongs to another session")
)

// Item is one reservation of a product (and size) in a shopping session.
type Item struct {
	id        uuid.UUID
	sessionID uuid.UUID
	productID uuid.UUID
	size      stock.SizeKey
	quantity  int
}

func ReconstructItem(id, sessionID, productID uuid.UUID, size stock.SizeKey, quantity int) *Item {
	return &Item{
		id:        id,
		sessionID: sessionID,
		productID: productID,
		size:      size,
		quantity:  quantity,
	}
}

func (i *Item) EnsureOwnedBy(sessionID uuid.UUID) error {
	if i.sessionID != sessionID {
		return ErrNotOwner
	}
	return nil
}

func (i *Item) ID() uuid.UUID        { return i.id }
func (i *Item) SessionID() uuid.UUID { return i.sessionID }
func (i *Item) ProductID() uuid.UUID { return i.productID }
func (i *Item) Size() stock.SizeKey  { return i.size }
func (i *Item) Quantity() int        { return i.quantity }

// Reserve validates adding quantity on top of what the session already holds
// for the same product and size. It returns the resolved size and the new
// absolute quantity.
func Reserve(p stock.Checker, size stock.SizeKey, current, quantity int) (stock.SizeKey, int, error) {
	if quantity <= 0 {
		return stock.SizeNone, 0, ErrInvalidQuantity
	}
	resolved, err := stock.ResolveSize(p, size)
	if err != nil {
		return stock.SizeNone, 0, err
	}
	requested := current + quantity
	if requested > stock.MaxLineQuantity {
		return stock.SizeNone, 0, ErrQuantityTooLarge
	}
	if err := stock.CheckAvailability(p, resolved, requested); err != nil {
		return stock.SizeNone, 0, err
	}
	return resolved, requested, nil
}

// Resize validates an absolute quantity for an existing reservation. Zero
// means the reservation is to be removed and is never checked against stock.
func Resize(p stock.Checker, size stock.SizeKey, quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	if quantity == 0 {
		return nil
	}
	if quantity > stock.MaxLineQuantity {
		return ErrQuantityTooLarge
	}
	return stock.CheckAvailability(p, size, quantity)
}
