package dto

// RolDTO forma de transporte para Rol.
type RolDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name" validate:"required,min=1,max=100"`
	IsDeleted bool   `json:"isDeleted"`
}

// FormDTO forma de transporte para Form.
type FormDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Path      string `json:"path" validate:"required,min=1,max=200"`
	IsDeleted bool   `json:"isDeleted"`
}

// ModuleDTO forma de transporte para Module.
type ModuleDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name" validate:"required,min=1,max=100"`
	IsDeleted bool   `json:"isDeleted"`
}

// PermissionDTO forma de transporte para Permission.
type PermissionDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name" validate:"required,min=1,max=100"`
	IsDeleted bool   `json:"isDeleted"`
}

// FormModuleDTO forma de transporte para la asociación Form-Module.
type FormModuleDTO struct {
	ID        int  `json:"id"`
	FormID    int  `json:"formId" validate:"required,gt=0"`
	ModuleID  int  `json:"moduleId" validate:"required,gt=0"`
	IsDeleted bool `json:"isDeleted"`
}

// RolFormPermissionDTO forma de transporte para la asociación Rol-Form-Permission.
type RolFormPermissionDTO struct {
	ID           int  `json:"id"`
	RolID        int  `json:"roleId" validate:"required,gt=0"`
	FormID       int  `json:"formId" validate:"required,gt=0"`
	PermissionID int  `json:"permissionId" validate:"required,gt=0"`
	IsDeleted    bool `json:"isDeleted"`
}

// PersonDTO forma de transporte para Person.
type PersonDTO struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string `json:"lastName" validate:"required,min=1,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
}
