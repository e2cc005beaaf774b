package orders

import (
	"time"

	"github.com/aurumjoias/aurum-backend/internal/catalog"
	"github.com/aurumjoias/aurum-backend/pkg/db/models"
	"github.com/aurumjoias/aurum-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlaceOrderInput captures everything a checkout request can carry.
type PlaceOrderInput struct {
	UserID          uuid.UUID
	ShippingAddress string
	PhoneNumber     *string
	PaymentMethod   *string
	VATNumber       *string
	Notes           *string
}

// OrderItemDTO is one order line with the price frozen at placement time.
type OrderItemDTO struct {
	ID        uuid.UUID           `json:"id"`
	ProductID uuid.UUID           `json:"product_id"`
	Quantity  int                 `json:"quantity"`
	Price     decimal.Decimal     `json:"price"`
	Product   *catalog.ProductDTO `json:"product,omitempty"`
}

// OrderDTO is the public projection of an order with its lines.
type OrderDTO struct {
	ID                 uuid.UUID         `json:"id"`
	Status             enums.OrderStatus `json:"status"`
	Total              decimal.Decimal   `json:"total"`
	ShippingAddress    string            `json:"shipping_address"`
	PhoneNumber        *string           `json:"phone_number,omitempty"`
	PaymentMethod      *string           `json:"payment_method,omitempty"`
	VATNumber          *string           `json:"vat_number,omitempty"`
	Notes              *string           `json:"notes,omitempty"`
	DiamanteInvoiceID  *string           `json:"diamante_invoice_id,omitempty"`
	DiamanteInvoiceURL *string           `json:"diamante_invoice_url,omitempty"`
	Items              []OrderItemDTO    `json:"items"`
	CreatedAt          time.Time         `json:"created_at"`
}

func toOrderItemDTO(item models.OrderItem) OrderItemDTO {
	dto := OrderItemDTO{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Price:     item.Price,
	}
	if item.Product != nil {
		product := catalog.ToProductDTO(*item.Product)
		dto.Product = &product
	}
	return dto
}

// ToOrderDTO exposes the order projection to the billing package.
func ToOrderDTO(order models.Order) OrderDTO {
	dto := OrderDTO{
		ID:                 order.ID,
		Status:             order.Status,
		Total:              order.Total,
		ShippingAddress:    order.ShippingAddress,
		PhoneNumber:        order.PhoneNumber,
		PaymentMethod:      order.PaymentMethod,
		VATNumber:          order.VATNumber,
		Notes:              order.Notes,
		DiamanteInvoiceID:  order.DiamanteInvoiceID,
		DiamanteInvoiceURL: order.DiamanteInvoiceURL,
		Items:              make([]OrderItemDTO, 0, len(order.Items)),
		CreatedAt:          order.CreatedAt,
	}
	for _, item := range order.Items {
		dto.Items = append(dto.Items, toOrderItemDTO(item))
	}
	return dto
}

func toOrderDTOs(orders []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(orders))
	for _, order := range orders {
		out = append(out, ToOrderDTO(order))
	}
	return out
}
