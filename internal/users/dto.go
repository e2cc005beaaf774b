package users

import (
	"time"

	"github.com/aurumjoias/aurum-backend/pkg/db/models"
	"github.com/google/uuid"
)

// UserDTO is the public projection of an account. The password hash never
// leaves the persistence layer.
type UserDTO struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Address     *string    `json:"address,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	VATNumber   *string    `json:"vat_number,omitempty"`
	IsCompany   bool       `json:"is_company"`
	CompanyName *string    `json:"company_name,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// UpdateProfileInput carries the mutable profile fields; nil means unchanged.
type UpdateProfileInput struct {
	Name        *string
	Address     *string
	Phone       *string
	VATNumber   *string
	IsCompany   *bool
	CompanyName *string
}

// ToUserDTO exposes the account projection to the auth package.
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Name:        user.Name,
		Address:     user.Address,
		Phone:       user.Phone,
		VATNumber:   user.VATNumber,
		IsCompany:   user.IsCompany,
		CompanyName: user.CompanyName,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}
