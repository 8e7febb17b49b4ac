package entity

import "time"

// User representa un usuario del sistema. Se autentica por email y recibe
// permisos a través de sus asociaciones RolUser.
type User struct {
	ID               int
	Email            string
	PasswordHash     string // hash bcrypt, nunca la contraseña en claro
	Active           bool
	IsDeleted        bool
	PersonID         int
	RegistrationDate time.Time
}

func (u *User) SoftDeleted() bool { return u.IsDeleted }
func (u *User) SetSoftDeleted(deleted bool) { u.IsDeleted = deleted }
