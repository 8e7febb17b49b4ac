package entity

// Permission acción permitida sobre un formulario (leer, crear, etc.).
type Permission struct {
	ID        int
	Name      string
	IsDeleted bool
}

func (p *Permission) SoftDeleted() bool { return p.IsDeleted }
func (p *Permission) SetSoftDeleted(deleted bool) { p.IsDeleted = deleted }
