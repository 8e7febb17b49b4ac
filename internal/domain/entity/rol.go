package entity

// Rol grupo de permisos con nombre (admin, auxiliar, etc.).
type Rol struct {
	ID        int
	Name      string
	IsDeleted bool
}

func (r *Rol) SoftDeleted() bool { return r.IsDeleted }
func (r *Rol) SetSoftDeleted(deleted bool) { r.IsDeleted = deleted }
