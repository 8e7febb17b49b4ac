package service

import (
	"github.com/jhoicas/seguridad-api/internal/application/dto"
	"github.com/jhoicas/seguridad-api/internal/domain/entity"
	"github.com/jhoicas/seguridad-api/internal/domain/repository"
	"github.com/jhoicas/seguridad-api/pkg/logger"
)

// Mapeos explícitos entidad↔DTO, uno por par. Campo a campo, verificados
// por el compilador.

func rolMapper() Mapper[entity.Rol, dto.RolDTO] {
	return Mapper[entity.Rol, dto.RolDTO]{
		ToDTO: func(r *entity.Rol) *dto.RolDTO {
			return &dto.RolDTO{ID: r.ID, Name: r.Name, IsDeleted: r.IsDeleted}
		},
		ToEntity: func(d *dto.RolDTO) *entity.Rol {
			return &entity.Rol{ID: d.ID, Name: d.Name, IsDeleted: d.IsDeleted}
		},
		DTOID: func(d *dto.RolDTO) int { return d.ID },
	}
}

// NewRolService construye la capa de negocio para Rol.
func NewRolService(repo repository.SoftCrud[entity.Rol], log *logger.Logger) *SoftService[entity.Rol, dto.RolDTO] {
	return NewSoftService(repo, log, "Rol", rolMapper())
}

func formMapper() Mapper[entity.Form, dto.FormDTO] {
	return Mapper[entity.Form, dto.FormDTO]{
		ToDTO: func(f *entity.Form) *dto.FormDTO {
			return &dto.FormDTO{ID: f.ID, Name: f.Name, Path: f.Path, IsDeleted: f.IsDeleted}
		},
		ToEntity: func(d *dto.FormDTO) *entity.Form {
			return &entity.Form{ID: d.ID, Name: d.Name, Path: d.Path, IsDeleted: d.IsDeleted}
		},
		DTOID: func(d *dto.FormDTO) int { return d.ID },
	}
}

// NewFormService construye la capa de negocio para Form.
func NewFormService(repo repository.SoftCrud[entity.Form], log *logger.Logger) *SoftService[entity.Form, dto.FormDTO] {
	return NewSoftService(repo, log, "Form", formMapper())
}

func moduleMapper() Mapper[entity.Module, dto.ModuleDTO] {
	return Mapper[entity.Module, dto.ModuleDTO]{
		ToDTO: func(m *entity.Module) *dto.ModuleDTO {
			return &dto.ModuleDTO{ID: m.ID, Name: m.Name, IsDeleted: m.IsDeleted}
		},
		ToEntity: func(d *dto.ModuleDTO) *entity.Module {
			return &entity.Module{ID: d.ID, Name: d.Name, IsDeleted: d.IsDeleted}
		},
		DTOID: func(d *dto.ModuleDTO) int { return d.ID },
	}
}

// NewModuleService construye la capa de negocio para Module.
func NewModuleService(repo repository.SoftCrud[entity.Module], log *logger.Logger) *SoftService[entity.Module, dto.ModuleDTO] {
	return NewSoftService(repo, log, "Module", moduleMapper())
}

func permissionMapper() Mapper[entity.Permission, dto.PermissionDTO] {
	return Mapper[entity.Permission, dto.PermissionDTO]{
		ToDTO: func(p *entity.Permission) *dto.PermissionDTO {
			return &dto.PermissionDTO{ID: p.ID, Name: p.Name, IsDeleted: p.IsDeleted}
		},
		ToEntity: func(d *dto.PermissionDTO) *entity.Permission {
			return &entity.Permission{ID: d.ID, Name: d.Name, IsDeleted: d.IsDeleted}
		},
		DTOID: func(d *dto.PermissionDTO) int { return d.ID },
	}
}

// NewPermissionService construye la capa de negocio para Permission.
func NewPermissionService(repo repository.SoftCrud[entity.Permission], log *logger.Logger) *SoftService[entity.Permission, dto.PermissionDTO] {
	return NewSoftService(repo, log, "Permission", permissionMapper())
}

func formModuleMapper() Mapper[entity.FormModule, dto.FormModuleDTO] {
	return Mapper[entity.FormModule, dto.FormModuleDTO]{
		ToDTO: func(fm *entity.FormModule) *dto.FormModuleDTO {
			return &dto.FormModuleDTO{ID: fm.ID, FormID: fm.FormID, ModuleID: fm.ModuleID, IsDeleted: fm.IsDeleted}
		},
		ToEntity: func(d *dto.FormModuleDTO) *entity.FormModule {
			return &entity.FormModule{ID: d.ID, FormID: d.FormID, ModuleID: d.ModuleID, IsDeleted: d.IsDeleted}
		},
		DTOID: func(d *dto.FormModuleDTO) int { return d.ID },
	}
}

// NewFormModuleService construye la capa de negocio para FormModule.
func NewFormModuleService(repo repository.SoftCrud[entity.FormModule], log *logger.Logger) *SoftService[entity.FormModule, dto.FormModuleDTO] {
	return NewSoftService(repo, log, "FormModule", formModuleMapper())
}

func rolFormPermissionMapper() Mapper[entity.RolFormPermission, dto.RolFormPermissionDTO] {
	return Mapper[entity.RolFormPermission, dto.RolFormPermissionDTO]{
		ToDTO: func(rfp *entity.RolFormPermission) *dto.RolFormPermissionDTO {
			return &dto.RolFormPermissionDTO{ID: rfp.ID, RolID: rfp.RolID, FormID: rfp.FormID, PermissionID: rfp.PermissionID, IsDeleted: rfp.IsDeleted}
		},
		ToEntity: func(d *dto.RolFormPermissionDTO) *entity.RolFormPermission {
			return &entity.RolFormPermission{ID: d.ID, RolID: d.RolID, FormID: d.FormID, PermissionID: d.PermissionID, IsDeleted: d.IsDeleted}
		},
		DTOID: func(d *dto.RolFormPermissionDTO) int { return d.ID },
	}
}

// NewRolFormPermissionService construye la capa de negocio para RolFormPermission.
func NewRolFormPermissionService(repo repository.SoftCrud[entity.RolFormPermission], log *logger.Logger) *SoftService[entity.RolFormPermission, dto.RolFormPermissionDTO] {
	return NewSoftService(repo, log, "RolFormPermission", rolFormPermissionMapper())
}

func personMapper() Mapper[entity.Person, dto.PersonDTO] {
	return Mapper[entity.Person, dto.PersonDTO]{
		ToDTO: func(p *entity.Person) *dto.PersonDTO {
			return &dto.PersonDTO{ID: p.ID, FirstName: p.FirstName, LastName: p.LastName, Phone: p.Phone}
		},
		ToEntity: func(d *dto.PersonDTO) *entity.Person {
			return &entity.Person{ID: d.ID, FirstName: d.FirstName, LastName: d.LastName, Phone: d.Phone}
		},
		DTOID: func(d *dto.PersonDTO) int { return d.ID },
	}
}

// NewPersonService construye la capa de negocio para Person (sin borrado lógico).
func NewPersonService(repo repository.Crud[entity.Person], log *logger.Logger) *Service[entity.Person, dto.PersonDTO] {
	return NewService(repo, log, "Person", personMapper())
}
