package dto

// RolUserDTO forma de transporte para la asociación Rol-User. RoleName y
// Email son campos denormalizados de lectura; se ignoran en escrituras.
type RolUserDTO struct {
	ID        int    `json:"id"`
	RolID     int    `json:"roleId" validate:"required,gt=0"`
	RolName   string `json:"roleName,omitempty"`
	UserID    int    `json:"userId" validate:"required,gt=0"`
	Email     string `json:"email,omitempty"`
	IsDeleted bool   `json:"isDeleted"`
}
