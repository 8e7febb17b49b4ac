package dto

import "time"

// UserDTO forma de transporte para el CRUD de User. Password solo se acepta
// como entrada (crear o cambiar credencial); las respuestas nunca lo incluyen.
type UserDTO struct {
	ID               int       `json:"id"`
	Email            string    `json:"email" validate:"required,email"`
	Password         string    `json:"password,omitempty" validate:"omitempty,min=8"`
	Active           bool      `json:"active"`
	IsDeleted        bool      `json:"isDeleted"`
	PersonID         int       `json:"personId"`
	RegistrationDate time.Time `json:"registrationDate"`
}
