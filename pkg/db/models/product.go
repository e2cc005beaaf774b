package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog listing. Prices are exact decimals; SKU and
// DiamanteID tie the listing to the external invoicing catalog when synced.
type Product struct {
	ID            uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string           `gorm:"column:name;not null"`
	Slug          string           `gorm:"column:slug;type:text;not null;uniqueIndex"`
	Description   *string          `gorm:"column:description"`
	Price         decimal.Decimal  `gorm:"column:price;type:numeric(10,2);not null"`
	OriginalPrice *decimal.Decimal `gorm:"column:original_price;type:numeric(10,2)"`
	Image         *string          `gorm:"column:image"`
	CategoryID    *uuid.UUID       `gorm:"column:category_id;type:uuid"`
	InStock       bool             `gorm:"column:in_stock;not null;default:true"`
	IsFeatured    bool             `gorm:"column:is_featured;not null;default:false"`
	IsNew         bool             `gorm:"column:is_new;not null;default:false"`
	Rating        decimal.Decimal  `gorm:"column:rating;type:numeric(3,2);default:5"`
	SKU           *string          `gorm:"column:sku"`
	DiamanteID    *string          `gorm:"column:diamante_id"`
	VATRate       int              `gorm:"column:vat_rate;not null;default:23"`
	StockQuantity *int             `gorm:"column:stock_quantity"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
}
