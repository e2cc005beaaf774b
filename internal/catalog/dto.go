package catalog

import (
	"time"

	"github.com/aurumjoias/aurum-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryDTO is the public projection of a catalog category.
type CategoryDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
}

// ProductDTO is the public projection of a catalog product.
type ProductDTO struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	Description   *string          `json:"description,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Image         *string          `json:"image,omitempty"`
	CategoryID    *uuid.UUID       `json:"category_id,omitempty"`
	InStock       bool             `json:"in_stock"`
	IsFeatured    bool             `json:"is_featured"`
	IsNew         bool             `json:"is_new"`
	Rating        decimal.Decimal  `json:"rating"`
	SKU           *string          `json:"sku,omitempty"`
	VATRate       int              `json:"vat_rate"`
	CreatedAt     time.Time        `json:"created_at"`
}

func toCategoryDTO(category models.Category) CategoryDTO {
	return CategoryDTO{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		Image:       category.Image,
	}
}

func toCategoryDTOs(categories []models.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(categories))
	for _, category := range categories {
		out = append(out, toCategoryDTO(category))
	}
	return out
}

// ToProductDTO exposes the product projection to other packages (cart, orders).
func ToProductDTO(product models.Product) ProductDTO {
	return ProductDTO{
		ID:            product.ID,
		Name:          product.Name,
		Slug:          product.Slug,
		Description:   product.Description,
		Price:         product.Price,
		OriginalPrice: product.OriginalPrice,
		Image:         product.Image,
		CategoryID:    product.CategoryID,
		InStock:       product.InStock,
		IsFeatured:    product.IsFeatured,
		IsNew:         product.IsNew,
		Rating:        product.Rating,
		SKU:           product.SKU,
		VATRate:       product.VATRate,
		CreatedAt:     product.CreatedAt,
	}
}

func toProductDTOs(products []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, product := range products {
		out = append(out, ToProductDTO(product))
	}
	return out
}
