package cart

import (
	"context"
	"errors"

	"github.com/aurumjoias/aurum-backend/internal/catalog"
	"github.com/aurumjoias/aurum-backend/pkg/db/models"
	pkgerrors "github.com/aurumjoias/aurum-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service exposes business rules for cart management.
type Service interface {
	GetCart(ctx context.Context, userID uuid.UUID) (CartDTO, error)
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (CartItemDTO, error)
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (CartItemDTO, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	repo        Repository
	catalogRepo catalog.Repository
}

// NewService builds a cart service with the required dependencies.
func NewService(repo Repository, catalogRepo catalog.Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart repo is required")
	}
	if catalogRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog repo is required")
	}
	return &service{repo: repo, catalogRepo: catalogRepo}, nil
}

// GetCart returns the user's cart with totals derived from current prices.
func (s *service) GetCart(ctx context.Context, userID uuid.UUID) (CartDTO, error) {
	if userID == uuid.Nil {
		return CartDTO{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "user id is required")
	}
	items, err := s.repo.ListItems(ctx, userID)
	if err != nil {
		return CartDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list cart items")
	}
	return toCartDTO(items), nil
}

// AddItem merges quantities when the product is already in the cart.
func (s *service) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (CartItemDTO, error) {
	if userID == uuid.Nil {
		return CartItemDTO{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "user id is required")
	}
	if productID == uuid.Nil {
		return CartItemDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if quantity < 1 {
		return CartItemDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	if _, err := s.catalogRepo.FindProductByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CartItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return CartItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	existing, err := s.repo.FindItemByProduct(ctx, userID, productID)
	switch {
	case err == nil:
		merged := existing.Quantity + quantity
		if err := s.repo.UpdateQuantity(ctx, existing.ID, merged); err != nil {
			return CartItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart quantity")
		}
		return s.loadItem(ctx, userID, existing.ID)
	case errors.Is(err, gorm.ErrRecordNotFound):
		item := &models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		}
		created, err := s.repo.CreateItem(ctx, item)
		if err != nil {
			return CartItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create cart item")
		}
		return s.loadItem(ctx, userID, created.ID)
	default:
		return CartItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart item")
	}
}

// UpdateItem sets a new quantity on an owned cart row.
func (s *service) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (CartItemDTO, error) {
	if userID == uuid.Nil {
		return CartItemDTO{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "user id is required")
	}
	if quantity < 1 {
		return CartItemDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	item, err := s.findOwnedItem(ctx, userID, itemID)
	if err != nil {
		return CartItemDTO{}, err
	}

	if err := s.repo.UpdateQuantity(ctx, item.ID, quantity); err != nil {
		return CartItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart quantity")
	}
	return s.loadItem(ctx, userID, item.ID)
}

// RemoveItem deletes an owned cart row.
func (s *service) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "user id is required")
	}

	item, err := s.findOwnedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteItem(ctx, item.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart item")
	}
	return nil
}

// ClearCart removes every row for the user; clearing an empty cart succeeds.
func (s *service) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "user id is required")
	}
	if err := s.repo.ClearCart(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

// findOwnedItem hides foreign rows behind NotFound so item ids cannot be probed.
func (s *service) findOwnedItem(ctx context.Context, userID, itemID uuid.UUID) (*models.CartItem, error) {
	if itemID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart item id is required")
	}
	item, err := s.repo.FindItem(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "cart item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart item")
	}
	return item, nil
}

func (s *service) loadItem(ctx context.Context, userID, itemID uuid.UUID) (CartItemDTO, error) {
	item, err := s.repo.FindItem(ctx, userID, itemID)
	if err != nil {
		return CartItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload cart item")
	}
	return toCartItemDTO(*item), nil
}
