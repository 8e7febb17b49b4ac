package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/seguridad-api/internal/domain/entity"
	"github.com/jhoicas/seguridad-api/internal/domain/repository"
)

var _ repository.RolUserRepository = (*RolUserRepo)(nil)

func rolUserMapping() Mapping[entity.RolUser] {
	return Mapping[entity.RolUser]{
		Table:   "rol_users",
		Columns: []string{"rol_id", "user_id", "is_deleted"},
		Scan: func(ru *entity.RolUser) []any {
			return []any{&ru.ID, &ru.RolID, &ru.UserID, &ru.IsDeleted}
		},
		Values: func(ru *entity.RolUser) []any {
			return []any{ru.RolID, ru.UserID, ru.IsDeleted}
		},
		ID:    func(ru *entity.RolUser) int { return ru.ID },
		SetID: func(ru *entity.RolUser, id int) { ru.ID = id },
	}
}

// RolUserRepo implementación del puerto RolUserRepository sobre PostgreSQL.
type RolUserRepo struct {
	*SoftCrud[entity.RolUser]
	pool *pgxpool.Pool
}

// NewRolUserRepository construye el adaptador de persistencia para RolUser.
func NewRolUserRepository(pool *pgxpool.Pool) *RolUserRepo {
	return &RolUserRepo{
		SoftCrud: NewSoftCrud[entity.RolUser, *entity.RolUser](pool, rolUserMapping()),
		pool:     pool,
	}
}

// RolesByUserID devuelve los nombres de los roles asociados al usuario,
// en orden de inserción de la asociación. No filtra duplicados.
func (r *RolUserRepo) RolesByUserID(ctx context.Context, userID int) ([]string, error) {
	query := `
		SELECT r.name
		FROM rol_users ru
		JOIN rols r ON r.id = ru.rol_id
		WHERE ru.user_id = $1 AND ru.is_deleted = false
		ORDER BY ru.id`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("roles por usuario: %w", err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan rol: %w", err)
		}
		roles = append(roles, name)
	}
	return roles, rows.Err()
}

// ListWithDetail lista todas las asociaciones con el nombre del rol y el
// email del usuario resueltos por JOIN.
func (r *RolUserRepo) ListWithDetail(ctx context.Context) ([]*repository.RolUserDetail, error) {
	query := `
		SELECT ru.id, ru.rol_id, ru.user_id, ru.is_deleted, r.name, u.email
		FROM rol_users ru
		JOIN rols r ON r.id = ru.rol_id
		JOIN users u ON u.id = ru.user_id
		ORDER BY ru.id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list rol_users con detalle: %w", err)
	}
	defer rows.Close()

	var list []*repository.RolUserDetail
	for rows.Next() {
		var d repository.RolUserDetail
		if err := rows.Scan(&d.RolUser.ID, &d.RolUser.RolID, &d.RolUser.UserID, &d.RolUser.IsDeleted, &d.RolName, &d.Email); err != nil {
			return nil, fmt.Errorf("scan rol_user: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
