package entity

// Form pantalla o formulario de la aplicación cliente sobre el que se
// asignan permisos.
type Form struct {
	ID        int
	Name      string
	Path      string
	IsDeleted bool
}

func (f *Form) SoftDeleted() bool { return f.IsDeleted }
func (f *Form) SetSoftDeleted(deleted bool) { f.IsDeleted = deleted }
