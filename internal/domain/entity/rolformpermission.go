package entity

// RolFormPermission concede un Permission sobre un Form a un Rol.
type RolFormPermission struct {
	ID           int
	RolID        int
	FormID       int
	PermissionID int
	IsDeleted    bool
}

func (rfp *RolFormPermission) SoftDeleted() bool { return rfp.IsDeleted }
func (rfp *RolFormPermission) SetSoftDeleted(deleted bool) { rfp.IsDeleted = deleted }
