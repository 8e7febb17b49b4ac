package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/seguridad-api/internal/domain/entity"
	"github.com/jhoicas/seguridad-api/internal/domain/repository"
)

var _ repository.SoftCrud[entity.Rol] = (*SoftCrud[entity.Rol])(nil)

func rolMapping() Mapping[entity.Rol] {
	return Mapping[entity.Rol]{
		Table:   "rols",
		Columns: []string{"name", "is_deleted"},
		Scan: func(r *entity.Rol) []any {
			return []any{&r.ID, &r.Name, &r.IsDeleted}
		},
		Values: func(r *entity.Rol) []any {
			return []any{r.Name, r.IsDeleted}
		},
		ID:    func(r *entity.Rol) int { return r.ID },
		SetID: func(r *entity.Rol, id int) { r.ID = id },
	}
}

// NewRolRepository construye el adaptador de persistencia para Rol.
func NewRolRepository(pool *pgxpool.Pool) *SoftCrud[entity.Rol] {
	return NewSoftCrud[entity.Rol, *entity.Rol](pool, rolMapping())
}
