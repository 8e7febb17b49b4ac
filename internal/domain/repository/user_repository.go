package repository

import (
	"context"

	"github.com/jhoicas/seguridad-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para User.
type UserRepository interface {
	SoftCrud[entity.User]
	// FindByEmail devuelve (nil, nil) si no existe un usuario con ese email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
