package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/seguridad-api/internal/domain/entity"
)

func formModuleMapping() Mapping[entity.FormModule] {
	return Mapping[entity.FormModule]{
		Table:   "form_modules",
		Columns: []string{"form_id", "module_id", "is_deleted"},
		Scan: func(fm *entity.FormModule) []any {
			return []any{&fm.ID, &fm.FormID, &fm.ModuleID, &fm.IsDeleted}
		},
		Values: func(fm *entity.FormModule) []any {
			return []any{fm.FormID, fm.ModuleID, fm.IsDeleted}
		},
		ID:    func(fm *entity.FormModule) int { return fm.ID },
		SetID: func(fm *entity.FormModule, id int) { fm.ID = id },
	}
}

// NewFormModuleRepository construye el adaptador de persistencia para FormModule.
func NewFormModuleRepository(pool *pgxpool.Pool) *SoftCrud[entity.FormModule] {
	return NewSoftCrud[entity.FormModule, *entity.FormModule](pool, formModuleMapping())
}
