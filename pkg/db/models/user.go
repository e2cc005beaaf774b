package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a storefront account. VATNumber holds the Portuguese NIF
// used on invoices when present.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Username     string     `gorm:"type:text;not null;uniqueIndex"`
	Email        string     `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	Name         string     `gorm:"column:name;not null"`
	Address      *string    `gorm:"column:address"`
	Phone        *string    `gorm:"column:phone"`
	VATNumber    *string    `gorm:"column:vat_number"`
	IsCompany    bool       `gorm:"column:is_company;not null;default:false"`
	CompanyName  *string    `gorm:"column:company_name"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
