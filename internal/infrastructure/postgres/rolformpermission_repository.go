package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/seguridad-api/internal/domain/entity"
)

func rolFormPermissionMapping() Mapping[entity.RolFormPermission] {
	return Mapping[entity.RolFormPermission]{
		Table:   "rol_form_permissions",
		Columns: []string{"rol_id", "form_id", "permission_id", "is_deleted"},
		Scan: func(rfp *entity.RolFormPermission) []any {
			return []any{&rfp.ID, &rfp.RolID, &rfp.FormID, &rfp.PermissionID, &rfp.IsDeleted}
		},
		Values: func(rfp *entity.RolFormPermission) []any {
			return []any{rfp.RolID, rfp.FormID, rfp.PermissionID, rfp.IsDeleted}
		},
		ID:    func(rfp *entity.RolFormPermission) int { return rfp.ID },
		SetID: func(rfp *entity.RolFormPermission, id int) { rfp.ID = id },
	}
}

// NewRolFormPermissionRepository construye el adaptador de persistencia para RolFormPermission.
func NewRolFormPermissionRepository(pool *pgxpool.Pool) *SoftCrud[entity.RolFormPermission] {
	return NewSoftCrud[entity.RolFormPermission, *entity.RolFormPermission](pool, rolFormPermissionMapping())
}
