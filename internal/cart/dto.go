package cart

import (
	"time"

	"github.com/aurumjoias/aurum-backend/internal/catalog"
	"github.com/aurumjoias/aurum-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItemDTO is one cart row joined with its product.
type CartItemDTO struct {
	ID        uuid.UUID           `json:"id"`
	ProductID uuid.UUID           `json:"product_id"`
	Quantity  int                 `json:"quantity"`
	Product   *catalog.ProductDTO `json:"product,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// CartDTO is the full cart view with totals derived from current product prices.
type CartDTO struct {
	Items      []CartItemDTO   `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func toCartItemDTO(item models.CartItem) CartItemDTO {
	dto := CartItemDTO{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
	if item.Product != nil {
		product := catalog.ToProductDTO(*item.Product)
		dto.Product = &product
	}
	return dto
}

func toCartDTO(items []models.CartItem) CartDTO {
	dto := CartDTO{
		Items:      make([]CartItemDTO, 0, len(items)),
		TotalPrice: decimal.Zero,
	}
	for _, item := range items {
		dto.Items = append(dto.Items, toCartItemDTO(item))
		dto.TotalItems += item.Quantity
		if item.Product != nil {
			line := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			dto.TotalPrice = dto.TotalPrice.Add(line)
		}
	}
	return dto
}
