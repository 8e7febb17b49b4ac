package entity

// Module agrupación funcional de formularios.
type Module struct {
	ID        int
	Name      string
	IsDeleted bool
}

func (m *Module) SoftDeleted() bool { return m.IsDeleted }
func (m *Module) SetSoftDeleted(deleted bool) { m.IsDeleted = deleted }
