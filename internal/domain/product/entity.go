package product

import (
	"errors"
	"strings"
	"time"

	"cellar-shop/internal/domain/stock"

	"github.com/google/uuid"
)

var (
	ErrEmptyProductName   = errors.New("product name cannot be empty")
	ErrProductNameTooLong = errors.New("product name is too long (max 255 characters)")
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrNegativeStock      = errors.New("stock cannot be negative")
	ErrScalarStockOnSized = errors.New("stock is derived from sizes for sized products")
	ErrSizesOnUnsized     = errors.New("product has no size breakdown")
)

const MaxProductNameLength = 255

// Product is a catalogue entry. A sized product keeps a full ledger and its
// total is derived from it. A sizeless product keeps a single quantity.
type Product struct {
	id           uuid.UUID
	name         string
	priceCents   int64
	hasSizes     bool
	ledger       stock.Ledger
	unsizedStock int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewSizedProduct(name string, priceCents int64, ledger stock.Ledger) (*Product, error) {
	if err := validate(name, priceCents); err != nil {
		return nil, err
	}
	return &Product{
		id:         uuid.New(),
		name:       strings.TrimSpace(name),
		priceCents: priceCents,
		hasSizes:   true,
		ledger:     stock.NewLedger().Merge(ledger),
	}, nil
}

func NewUnsizedProduct(name string, priceCents int64, quantity int) (*Product, error) {
	if err := validate(name, priceCents); err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, ErrNegativeStock
	}
	return &Product{
		id:           uuid.New(),
		name:         strings.TrimSpace(name),
		priceCents:   priceCents,
		unsizedStock: quantity,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	name string,
	priceCents int64,
	hasSizes bool,
	ledger stock.Ledger,
	unsizedStock int,
	createdAt, updatedAt time.Time,
) *Product {
	p := &Product{
		id:           id,
		name:         name,
		priceCents:   priceCents,
		hasSizes:     hasSizes,
		unsizedStock: unsizedStock,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
	if hasSizes {
		p.ledger = stock.NewLedger().Merge(ledger)
		p.unsizedStock = 0
	}
	return p
}

// ReplaceLedger overwrites every size of a sized product.
func (p *Product) ReplaceLedger(ledger stock.Ledger) error {
	if !p.hasSizes {
		return ErrSizesOnUnsized
	}
	p.ledger = stock.NewLedger().Merge(ledger)
	return nil
}

// MergeSizes overwrites only the sizes present in patch.
func (p *Product) MergeSizes(patch stock.Ledger) error {
	if !p.hasSizes {
		return ErrSizesOnUnsized
	}
	p.ledger = p.ledger.Merge(patch)
	return nil
}

func (p *Product) SetUnsizedStock(quantity int) error {
	if p.hasSizes {
		return ErrScalarStockOnSized
	}
	if quantity < 0 {
		return ErrNegativeStock
	}
	p.unsizedStock = quantity
	return nil
}

func (p *Product) HasSizes() bool { return p.hasSizes }

func (p *Product) Available(size stock.SizeKey) int {
	if p.hasSizes {
		return p.ledger.Quantity(size)
	}
	return p.unsizedStock
}

func (p *Product) TotalStock() int {
	if p.hasSizes {
		return p.ledger.Total()
	}
	return p.unsizedStock
}

// Ledger returns a copy; nil for sizeless products.
func (p *Product) Ledger() stock.Ledger {
	if !p.hasSizes {
		return nil
	}
	return p.ledger.Clone()
}

func (p *Product) ID() uuid.UUID        { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) PriceCents() int64    { return p.priceCents }
func (p *Product) UnsizedStock() int    { return p.unsizedStock }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

var _ stock.Checker = (*Product)(nil)

func validate(name string, priceCents int64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyProductName
	}
	if len(name) > MaxProductNameLength {
		return ErrProductNameTooLong
	}
	if priceCents < 0 {
		return ErrNegativePrice
	}
	return nil
}
