package auth

import "github.com/aurumjoias/aurum-backend/internal/users"

// RegisterInput captures the payload accepted by the register endpoint.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	Name        string
	Address     *string
	Phone       *string
	VATNumber   *string
	IsCompany   bool
	CompanyName *string
}

// LoginInput captures the credentials sent to the login endpoint.
type LoginInput struct {
	Username string
	Password string
}

// AuthResultDTO contains the token pair and user returned by register/login/refresh.
type AuthResultDTO struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	User         *users.UserDTO `json:"user,omitempty"`
}
