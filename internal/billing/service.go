package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/aurumjoias/aurum-backend/internal/orders"
	"github.com/aurumjoias/aurum-backend/internal/users"
	"github.com/aurumjoias/aurum-backend/pkg/db/models"
	"github.com/aurumjoias/aurum-backend/pkg/diamante"
	"github.com/aurumjoias/aurum-backend/pkg/enums"
	pkgerrors "github.com/aurumjoias/aurum-backend/pkg/errors"
	"github.com/aurumjoias/aurum-backend/pkg/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultVATRate       = 23
	defaultPaymentMethod = "card"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// invoicer is the surface of the Diamante client the billing flow needs.
type invoicer interface {
	IsConfigured() bool
	TestConnection(ctx context.Context) bool
	CreateInvoice(ctx context.Context, params diamante.InvoiceParams) diamante.InvoiceResult
	SyncInventory(ctx context.Context, items []diamante.InventoryItem)
}

// Service exposes the external invoicing flow for placed orders.
type Service interface {
	Status(ctx context.Context) StatusDTO
	CreateInvoice(ctx context.Context, userID, orderID uuid.UUID) (InvoiceDTO, error)
}

type service struct {
	ordersRepo orders.Repository
	usersRepo  users.Repository
	client     invoicer
	tx         txRunner
	logger     *logger.Logger
}

// ServiceParams bundles the dependencies required to build a billing service.
type ServiceParams struct {
	OrdersRepo orders.Repository
	UsersRepo  users.Repository
	Client     invoicer
	Tx         txRunner
	Logger     *logger.Logger
}

// NewService constructs a billing service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.OrdersRepo == nil {
		return nil, fmt.Errorf("orders repository is required")
	}
	if params.UsersRepo == nil {
		return nil, fmt.Errorf("users repository is required")
	}
	if params.Client == nil {
		return nil, fmt.Errorf("diamante client is required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{
		ordersRepo: params.OrdersRepo,
		usersRepo:  params.UsersRepo,
		client:     params.Client,
		tx:         params.Tx,
		logger:     params.Logger,
	}, nil
}

// Status never errors: connectivity problems come back as a false flag with a
// readable message.
func (s *service) Status(ctx context.Context) StatusDTO {
	if !s.client.IsConfigured() {
		return StatusDTO{Message: "billing service is not configured"}
	}
	if !s.client.TestConnection(ctx) {
		return StatusDTO{Configured: true, Message: "billing service is unreachable"}
	}
	return StatusDTO{Configured: true, Reachable: true, Message: "billing service is available"}
}

// CreateInvoice issues a Diamante invoice for an owned, not-yet-invoiced
// order and persists the returned identifiers. Inventory sync afterwards is
// best-effort and never fails the call.
func (s *service) CreateInvoice(ctx context.Context, userID, orderID uuid.UUID) (InvoiceDTO, error) {
	if userID == uuid.Nil {
		return InvoiceDTO{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "user id is required")
	}
	if orderID == uuid.Nil {
		return InvoiceDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	if !s.client.IsConfigured() {
		return InvoiceDTO{}, pkgerrors.New(pkgerrors.CodeDependency, "billing service is not configured")
	}

	order, err := s.loadOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return InvoiceDTO{}, err
	}
	// at-most-once: reject before any network call
	if order.DiamanteInvoiceID != nil && *order.DiamanteInvoiceID != "" {
		return InvoiceDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "order is already invoiced")
	}
	if len(order.Items) == 0 {
		return InvoiceDTO{}, pkgerrors.New(pkgerrors.CodeNotFound, "order has no items")
	}

	user, err := s.usersRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InvoiceDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "user not found")
		}
		return InvoiceDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}

	params := buildInvoiceParams(order, user)

	ctx = s.logger.WithOrderID(ctx, order.ID.String())
	result := s.client.CreateInvoice(ctx, params)
	if !result.Success {
		return InvoiceDTO{}, pkgerrors.New(pkgerrors.CodeDependency, result.ErrorMessage)
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.ordersRepo.WithTx(tx)
		current, err := repo.FindByID(ctx, order.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload order")
		}
		// a concurrent call may have won the race after our pre-check
		if current.DiamanteInvoiceID != nil && *current.DiamanteInvoiceID != "" {
			return pkgerrors.New(pkgerrors.CodeConflict, "order was invoiced concurrently")
		}
		return repo.UpdateOrder(ctx, order.ID, map[string]any{
			"status":               string(enums.OrderStatusInvoiced),
			"diamante_invoice_id":  result.InvoiceNumber,
			"diamante_invoice_url": result.InvoiceURL,
		})
	})
	if err != nil {
		return InvoiceDTO{}, err
	}

	s.syncInventory(ctx, order)

	return InvoiceDTO{
		InvoiceNumber: result.InvoiceNumber,
		InvoiceURL:    result.InvoiceURL,
	}, nil
}

func (s *service) loadOwnedOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.ordersRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	if order.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "order belongs to another user")
	}
	return order, nil
}

func (s *service) syncInventory(ctx context.Context, order *models.Order) {
	items := make([]diamante.InventoryItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, diamante.InventoryItem{
			Reference: itemReference(item),
			Quantity:  item.Quantity,
		})
	}
	s.client.SyncInventory(ctx, items)
}

func buildInvoiceParams(order *models.Order, user *models.User) diamante.InvoiceParams {
	addr := splitShippingAddress(order.ShippingAddress)

	customerName := user.Name
	if customerName == "" {
		customerName = user.Username
	}

	customer := diamante.InvoiceCustomer{
		Name:       customerName,
		Email:      user.Email,
		Street:     addr.Street,
		PostalCode: addr.PostalCode,
		City:       addr.City,
		Country:    addr.Country,
	}
	if order.VATNumber != nil {
		customer.VATNumber = *order.VATNumber
	} else if user.VATNumber != nil {
		customer.VATNumber = *user.VATNumber
	}
	if order.PhoneNumber != nil {
		customer.Phone = *order.PhoneNumber
	} else if user.Phone != nil {
		customer.Phone = *user.Phone
	}

	items := make([]diamante.InvoiceItem, 0, len(order.Items))
	for _, item := range order.Items {
		line := diamante.InvoiceItem{
			Reference: itemReference(item),
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			VATRate:   defaultVATRate,
		}
		if item.Product != nil {
			line.Description = item.Product.Name
			if item.Product.VATRate > 0 {
				line.VATRate = item.Product.VATRate
			}
		}
		items = append(items, line)
	}

	paymentMethod := defaultPaymentMethod
	if order.PaymentMethod != nil && *order.PaymentMethod != "" {
		paymentMethod = *order.PaymentMethod
	}

	return diamante.InvoiceParams{
		Customer:      customer,
		Items:         items,
		PaymentMethod: paymentMethod,
		Notes:         fmt.Sprintf("Pedido #%s - %s", order.ID, order.Status),
	}
}

// itemReference falls back to PROD-{productId} when the product has no SKU.
func itemReference(item models.OrderItem) string {
	if item.Product != nil && item.Product.SKU != nil && *item.Product.SKU != "" {
		return *item.Product.SKU
	}
	return fmt.Sprintf("PROD-%s", item.ProductID)
}
