package commands

import (
	"context"

	"cellar-shop/internal/domain/cart"
	"cellar-shop/internal/domain/stock"
	"cellar-shop/internal/infra"
	"cellar-shop/internal/pkg/errs"
	"cellar-shop/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCartItemNotFound  = errs.Mark(errs.New("cart item not found"), errs.ErrNotFound)
	ErrCartItemForbidden = errs.Mark(errs.New("cart item belongs to another session"), errs.ErrForbidden)
)

type AddItemRequest struct {
	ProductID uuid.UUID
	Size      *string
	Quantity  int
}

type CartMutationResult struct {
	ItemID     uuid.UUID
	TotalCents int64
}

type CartCommands interface {
	AddItem(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*CartMutationResult, error)
	SetItemQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*CartMutationResult, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*CartMutationResult, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type cartCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCartCommands(uow shared.UnitOfWork) CartCommands {
	return &cartCommandsImpl{uow: uow}
}

// AddItem checks the quantity already held for the same product and size
// plus the new quantity against the ledger.
func (uc *cartCommandsImpl) AddItem(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*CartMutationResult, error) {
	if req.Quantity <= 0 {
		return nil, errs.NewValidationError("quantity", cart.ErrInvalidQuantity.Error())
	}
	if req.Quantity > stock.MaxLineQuantity {
		return nil, errs.NewValidationError("quantity", cart.ErrQuantityTooLarge.Error())
	}
	size, err := stock.ParseSizeLabel(req.Size)
	if err != nil {
		return nil, errs.NewValidationError("size", err.Error())
	}

	var result CartMutationResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().ProductByID(ctx, req.ProductID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		resolved, err := stock.ResolveSize(p, size)
		if err != nil {
			return errs.NewValidationError("size", err.Error())
		}

		sessionID, err := tx.Carts().EnsureSession(ctx, tx.DB(), userID)
		if err != nil {
			return err
		}

		current := 0
		existing, err := tx.Reads().CartItemByKey(ctx, sessionID, p.ID(), resolved)
		switch {
		case err == nil:
			current = existing.Quantity()
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		_, quantity, err := cart.Reserve(p, resolved, current, req.Quantity)
		if err != nil {
			if errs.Is(err, cart.ErrQuantityTooLarge) {
				return errs.NewValidationError("quantity", err.Error())
			}
			return err
		}

		itemID, err := tx.Carts().UpsertItem(ctx, tx.DB(), sessionID, p.ID(), resolved, quantity)
		if err != nil {
			return err
		}
		total, err := tx.Carts().RecalcTotal(ctx, tx.DB(), sessionID)
		if err != nil {
			return err
		}
		result = CartMutationResult{ItemID: itemID, TotalCents: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SetItemQuantity checks the absolute quantity. Zero removes the item.
func (uc *cartCommandsImpl) SetItemQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*CartMutationResult, error) {
	if quantity < 0 {
		return nil, errs.NewValidationError("quantity", cart.ErrNegativeQuantity.Error())
	}
	if quantity > stock.MaxLineQuantity {
		return nil, errs.NewValidationError("quantity", cart.ErrQuantityTooLarge.Error())
	}

	var result CartMutationResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := uc.ownedItem(ctx, tx, userID, itemID)
		if err != nil {
			return err
		}

		if quantity == 0 {
			err = tx.Carts().DeleteItem(ctx, tx.DB(), item.ID)
		} else {
			p, perr := tx.Reads().ProductByID(ctx, item.ProductID)
			if perr != nil {
				return perr
			}
			if err := cart.Resize(p, stock.SizeKey(item.Size), quantity); err != nil {
				return err
			}
			err = tx.Carts().UpdateQuantity(ctx, tx.DB(), item.ID, quantity)
		}
		if err != nil {
			return err
		}

		total, err := tx.Carts().RecalcTotal(ctx, tx.DB(), item.SessionID)
		if err != nil {
			return err
		}
		result = CartMutationResult{ItemID: item.ID, TotalCents: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *cartCommandsImpl) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*CartMutationResult, error) {
	var result CartMutationResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := uc.ownedItem(ctx, tx, userID, itemID)
		if err != nil {
			return err
		}
		if err := tx.Carts().DeleteItem(ctx, tx.DB(), item.ID); err != nil {
			return err
		}
		total, err := tx.Carts().RecalcTotal(ctx, tx.DB(), item.SessionID)
		if err != nil {
			return err
		}
		result = CartMutationResult{ItemID: item.ID, TotalCents: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Clear is a no-op for users without a session.
func (uc *cartCommandsImpl) Clear(ctx context.Context, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		session, err := tx.Reads().SessionByUser(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Carts().ClearSession(ctx, tx.DB(), session.ID); err != nil {
			return err
		}
		_, err = tx.Carts().RecalcTotal(ctx, tx.DB(), session.ID)
		return err
	})
}

func (uc *cartCommandsImpl) ownedItem(ctx context.Context, tx shared.Tx, userID, itemID uuid.UUID) (*shared.CartItemSnapshot, error) {
	item, err := tx.Reads().CartItemByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	if item.OwnerID != userID {
		return nil, ErrCartItemForbidden
	}
	return item, nil
}
