package orders

import (
	"context"
	"errors"
	"strings"

	"github.com/aurumjoias/aurum-backend/internal/cart"
	"github.com/aurumjoias/aurum-backend/internal/catalog"
	"github.com/aurumjoias/aurum-backend/pkg/db/models"
	"github.com/aurumjoias/aurum-backend/pkg/enums"
	pkgerrors "github.com/aurumjoias/aurum-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const minShippingAddressLen = 5

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines order placement and retrieval.
type Service interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (OrderDTO, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (OrderDTO, error)
}

type service struct {
	repo        Repository
	cartRepo    cart.Repository
	catalogRepo catalog.Repository
	tx          txRunner
}

// NewService builds an orders service with the required dependencies.
func NewService(repo Repository, cartRepo cart.Repository, catalogRepo catalog.Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "orders repo is required")
	}
	if cartRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart repo is required")
	}
	if catalogRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog repo is required")
	}
	if tx == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "transaction runner is required")
	}
	return &service{
		repo:        repo,
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		tx:          tx,
	}, nil
}

// PlaceOrder turns the user's cart into an order inside a single transaction.
// Line prices are frozen at placement time and the cart is cleared; a failure
// anywhere rolls everything back and leaves the cart intact.
func (s *service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (OrderDTO, error) {
	if input.UserID == uuid.Nil {
		return OrderDTO{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "user id is required")
	}
	address := strings.TrimSpace(input.ShippingAddress)
	if len(address) < minShippingAddressLen {
		return OrderDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "shipping address is too short")
	}

	var placed *models.Order
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		orderRepo := s.repo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)
		catalogRepo := s.catalogRepo.WithTx(tx)

		items, err := cartRepo.ListItems(ctx, input.UserID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list cart items")
		}
		if len(items) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}

		productIDs := make([]uuid.UUID, 0, len(items))
		for _, item := range items {
			productIDs = append(productIDs, item.ProductID)
		}
		products, err := catalogRepo.FindProductsByIDs(ctx, productIDs)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart products")
		}
		productByID := make(map[uuid.UUID]models.Product, len(products))
		for _, product := range products {
			productByID[product.ID] = product
		}

		total := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			product, ok := productByID[item.ProductID]
			if !ok {
				// a vanished product aborts the whole order rather than
				// silently shrinking it
				return pkgerrors.New(pkgerrors.CodeNotFound, "cart references a product that no longer exists")
			}
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			orderItems = append(orderItems, models.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				Price:     product.Price,
			})
		}

		order := &models.Order{
			UserID:          input.UserID,
			Status:          enums.OrderStatusPending,
			Total:           total,
			ShippingAddress: address,
			PhoneNumber:     input.PhoneNumber,
			PaymentMethod:   input.PaymentMethod,
			VATNumber:       input.VATNumber,
			Notes:           input.Notes,
		}
		if _, err := orderRepo.CreateOrder(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}

		for i := range orderItems {
			orderItems[i].OrderID = order.ID
		}
		if err := orderRepo.CreateOrderItems(ctx, orderItems); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order items")
		}

		if err := cartRepo.ClearCart(ctx, input.UserID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
		}

		placed, err = orderRepo.FindByID(ctx, order.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload order")
		}
		return nil
	})
	if err != nil {
		return OrderDTO{}, err
	}
	return ToOrderDTO(*placed), nil
}

// ListOrders returns the user's orders newest-first with items and products.
func (s *service) ListOrders(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user id is required")
	}
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return toOrderDTOs(orders), nil
}

// GetOrder loads a single order; orders of other users come back Forbidden.
func (s *service) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (OrderDTO, error) {
	if userID == uuid.Nil {
		return OrderDTO{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "user id is required")
	}
	if orderID == uuid.Nil {
		return OrderDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "order not found")
		}
		return OrderDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	if order.UserID != userID {
		return OrderDTO{}, pkgerrors.New(pkgerrors.CodeForbidden, "order belongs to another user")
	}
	return ToOrderDTO(*order), nil
}
