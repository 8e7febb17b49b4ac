package entity

// RolUser asocia un Rol a un User (fila de unión N a N).
// No hay constraint de unicidad sobre (UserID, RolID): el modelo admite
// asignaciones activas duplicadas, igual que el esquema original.
type RolUser struct {
	ID        int
	RolID     int
	UserID    int
	IsDeleted bool
}

func (ru *RolUser) SoftDeleted() bool { return ru.IsDeleted }
func (ru *RolUser) SetSoftDeleted(deleted bool) { ru.IsDeleted = deleted }
