package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aurumjoias/aurum-backend/pkg/enums"
)

// Order is the immutable commitment of a cart. Total is frozen at creation
// and never recomputed; the Diamante columns are set once invoicing succeeds.
type Order struct {
	ID                 uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID             uuid.UUID         `gorm:"column:user_id;type:uuid;not null;index"`
	Status             enums.OrderStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	Total              decimal.Decimal   `gorm:"column:total;type:numeric(10,2);not null"`
	ShippingAddress    string            `gorm:"column:shipping_address;not null"`
	PhoneNumber        *string           `gorm:"column:phone_number"`
	PaymentMethod      *string           `gorm:"column:payment_method"`
	VATNumber          *string           `gorm:"column:vat_number"`
	Notes              *string           `gorm:"column:notes"`
	DiamanteInvoiceID  *string           `gorm:"column:diamante_invoice_id"`
	DiamanteInvoiceURL *string           `gorm:"column:diamante_invoice_url"`
	Items              []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
