package commands

import (
	"context"

	"cellar-shop/internal/domain/product"
	"cellar-shop/internal/domain/stock"
	"cellar-shop/internal/infra"
	"cellar-shop/internal/pkg/errs"
	"cellar-shop/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrProductNotFound = errs.Mark(errs.New("product not found"), errs.ErrNotFound)

type CreateProductRequest struct {
	Name       string
	PriceCents int64
	// raw size-to-quantity payload in any accepted shape
	Sizes      []byte
	Stock      *int
}

type ReplaceStockRequest struct {
	Sizes []byte
	Stock *int
}

type CreateProductResult struct {
	ProductID  uuid.UUID
	TotalStock int
}

type ProductCommands interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*CreateProductResult, error)
	ReplaceStock(ctx context.Context, productID uuid.UUID, req ReplaceStockRequest) error
	AdjustSizes(ctx context.Context, productID uuid.UUID, sizes []byte) error
}

type productCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewProductCommands(uow shared.UnitOfWork) ProductCommands {
	return &productCommandsImpl{uow: uow}
}

func (uc *productCommandsImpl) CreateProduct(ctx context.Context, req CreateProductRequest) (*CreateProductResult, error) {
	var (
		p   *product.Product
		err error
	)
	if req.Sizes != nil {
		if req.Stock != nil {
			return nil, errs.NewValidationError("stock", product.ErrScalarStockOnSized.Error())
		}
		ledger, perr := parseSizes(req.Sizes, stock.StrictFull)
		if perr != nil {
			return nil, perr
		}
		p, err = product.NewSizedProduct(req.Name, req.PriceCents, ledger)
	} else {
		qty := 0
		if req.Stock != nil {
			qty = *req.Stock
		}
		p, err = product.NewUnsizedProduct(req.Name, req.PriceCents, qty)
	}
	if err != nil {
		return nil, productValidation(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Products().Create(ctx, tx.DB(), p)
	})
	if err != nil {
		return nil, err
	}
	return &CreateProductResult{ProductID: p.ID(), TotalStock: p.TotalStock()}, nil
}

// ReplaceStock overwrites the whole ledger. Sized products accept only sizes.
func (uc *productCommandsImpl) ReplaceStock(ctx context.Context, productID uuid.UUID, req ReplaceStockRequest) error {
	if req.Sizes == nil && req.Stock == nil {
		return errs.NewValidationError("sizes", "sizes or stock is required")
	}
	var ledger stock.Ledger
	if req.Sizes != nil {
		parsed, err := parseSizes(req.Sizes, stock.StrictFull)
		if err != nil {
			return err
		}
		ledger = parsed
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := uc.lock(ctx, tx, productID)
		if err != nil {
			return err
		}
		if p.HasSizes() {
			if req.Stock != nil || ledger == nil {
				return errs.NewValidationError("stock", product.ErrScalarStockOnSized.Error())
			}
			err = p.ReplaceLedger(ledger)
		} else {
			if ledger != nil {
				return errs.NewValidationError("sizes", product.ErrSizesOnUnsized.Error())
			}
			err = p.SetUnsizedStock(*req.Stock)
		}
		if err != nil {
			return productValidation(err)
		}
		return tx.Products().SaveStock(ctx, tx.DB(), p)
	})
}

// AdjustSizes merges a partial size map over the current ledger.
func (uc *productCommandsImpl) AdjustSizes(ctx context.Context, productID uuid.UUID, sizes []byte) error {
	patch, err := parseSizes(sizes, stock.StrictPartial)
	if err != nil {
		return err
	}
	if len(patch) == 0 {
		return errs.NewValidationError("sizes", "at least one size is required")
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := uc.lock(ctx, tx, productID)
		if err != nil {
			return err
		}
		if err := p.MergeSizes(patch); err != nil {
			return errs.NewValidationError("sizes", err.Error())
		}
		return tx.Products().SaveStock(ctx, tx.DB(), p)
	})
}

func (uc *productCommandsImpl) lock(ctx context.Context, tx shared.Tx, id uuid.UUID) (*product.Product, error) {
	p, err := tx.Products().GetForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func parseSizes(raw []byte, opts stock.ParseOptions) (stock.Ledger, error) {
	ledger, err := stock.ParseStockMap(raw, opts)
	if err != nil {
		return nil, errs.NewValidationError("sizes", err.Error())
	}
	return ledger, nil
}

func productValidation(err error) error {
	switch {
	case errs.Is(err, product.ErrEmptyProductName), errs.Is(err, product.ErrProductNameTooLong):
		return errs.NewValidationError("name", err.Error())
	case errs.Is(err, product.ErrNegativePrice):
		return errs.NewValidationError("price", err.Error())
	case errs.Is(err, product.ErrNegativeStock), errs.Is(err, product.ErrScalarStockOnSized):
		return errs.NewValidationError("stock", err.Error())
	case errs.Is(err, product.ErrSizesOnUnsized):
		return errs.NewValidationError("sizes", err.Error())
	}
	return err
}
