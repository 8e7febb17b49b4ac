package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/seguridad-api/internal/domain/entity"
)

func permissionMapping() Mapping[entity.Permission] {
	return Mapping[entity.Permission]{
		Table:   "permissions",
		Columns: []string{"name", "is_deleted"},
		Scan: func(p *entity.Permission) []any {
			return []any{&p.ID, &p.Name, &p.IsDeleted}
		},
		Values: func(p *entity.Permission) []any {
			return []any{p.Name, p.IsDeleted}
		},
		ID:    func(p *entity.Permission) int { return p.ID },
		SetID: func(p *entity.Permission, id int) { p.ID = id },
	}
}

// NewPermissionRepository construye el adaptador de persistencia para Permission.
func NewPermissionRepository(pool *pgxpool.Pool) *SoftCrud[entity.Permission] {
	return NewSoftCrud[entity.Permission, *entity.Permission](pool, permissionMapping())
}
