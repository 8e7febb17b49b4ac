package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/seguridad-api/internal/domain/entity"
)

func moduleMapping() Mapping[entity.Module] {
	return Mapping[entity.Module]{
		Table:   "modules",
		Columns: []string{"name", "is_deleted"},
		Scan: func(m *entity.Module) []any {
			return []any{&m.ID, &m.Name, &m.IsDeleted}
		},
		Values: func(m *entity.Module) []any {
			return []any{m.Name, m.IsDeleted}
		},
		ID:    func(m *entity.Module) int { return m.ID },
		SetID: func(m *entity.Module, id int) { m.ID = id },
	}
}

// NewModuleRepository construye el adaptador de persistencia para Module.
func NewModuleRepository(pool *pgxpool.Pool) *SoftCrud[entity.Module] {
	return NewSoftCrud[entity.Module, *entity.Module](pool, moduleMapping())
}
