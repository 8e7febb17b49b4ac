package dto

import "time"

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token JWT emitido.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest entrada para registro de usuario (password en texto, se hashea en el use case).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	PersonID int    `json:"personId" validate:"omitempty,gt=0"`
}

// UserResponse salida de un usuario (nunca incluye la credencial).
type UserResponse struct {
	ID               int       `json:"id"`
	Email            string    `json:"email"`
	Active           bool      `json:"active"`
	IsDeleted        bool      `json:"isDeleted"`
	PersonID         int       `json:"personId"`
	RegistrationDate time.Time `json:"registrationDate"`
}
