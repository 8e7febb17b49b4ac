package repository

import (
	"context"

	"github.com/jhoicas/seguridad-api/internal/domain/entity"
)

// RolUserDetail fila de RolUser con los campos denormalizados de lectura
// (nombre del rol y email del usuario) resueltos por JOIN.
type RolUserDetail struct {
	RolUser entity.RolUser
	RolName string
	Email   string
}

// RolUserRepository puerto de persistencia para la asociación RolUser.
type RolUserRepository interface {
	SoftCrud[entity.RolUser]
	// RolesByUserID devuelve los nombres de rol asociados al usuario en
	// orden de inserción. No filtra duplicados.
	RolesByUserID(ctx context.Context, userID int) ([]string, error)
	// ListWithDetail lista todas las asociaciones con rol_name y email resueltos.
	ListWithDetail(ctx context.Context) ([]*RolUserDetail, error)
}
