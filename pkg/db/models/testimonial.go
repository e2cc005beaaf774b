package models

import "github.com/google/uuid"

// Testimonial is append-only marketing copy surfaced on the storefront.
type Testimonial struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string    `gorm:"column:name;not null"`
	Initials      *string   `gorm:"column:initials"`
	CustomerSince *string   `gorm:"column:customer_since"`
	Content       string    `gorm:"column:content;not null"`
	Rating        int       `gorm:"column:rating;not null"`
}
