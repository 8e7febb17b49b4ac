package entity

// FormModule asocia un Form a un Module.
type FormModule struct {
	ID        int
	FormID    int
	ModuleID  int
	IsDeleted bool
}

func (fm *FormModule) SoftDeleted() bool { return fm.IsDeleted }
func (fm *FormModule) SetSoftDeleted(deleted bool) { fm.IsDeleted = deleted }
