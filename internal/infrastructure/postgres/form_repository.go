package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/seguridad-api/internal/domain/entity"
)

func formMapping() Mapping[entity.Form] {
	return Mapping[entity.Form]{
		Table:   "forms",
		Columns: []string{"name", "path", "is_deleted"},
		Scan: func(f *entity.Form) []any {
			return []any{&f.ID, &f.Name, &f.Path, &f.IsDeleted}
		},
		Values: func(f *entity.Form) []any {
			return []any{f.Name, f.Path, f.IsDeleted}
		},
		ID:    func(f *entity.Form) int { return f.ID },
		SetID: func(f *entity.Form, id int) { f.ID = id },
	}
}

// NewFormRepository construye el adaptador de persistencia para Form.
func NewFormRepository(pool *pgxpool.Pool) *SoftCrud[entity.Form] {
	return NewSoftCrud[entity.Form, *entity.Form](pool, formMapping())
}
