package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/seguridad-api/internal/application/auth"
	"github.com/jhoicas/seguridad-api/internal/application/dto"
	"github.com/jhoicas/seguridad-api/internal/application/service"
	"github.com/jhoicas/seguridad-api/internal/domain/entity"
	"github.com/jhoicas/seguridad-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC               *auth.AuthUseCase
	UserSvc              *service.UserService
	RolUserSvc           *service.RolUserService
	PersonSvc            *service.Service[entity.Person, dto.PersonDTO]
	RolSvc               *service.SoftService[entity.Rol, dto.RolDTO]
	FormSvc              *service.SoftService[entity.Form, dto.FormDTO]
	ModuleSvc            *service.SoftService[entity.Module, dto.ModuleDTO]
	PermissionSvc        *service.SoftService[entity.Permission, dto.PermissionDTO]
	FormModuleSvc        *service.SoftService[entity.FormModule, dto.FormModuleDTO]
	RolFormPermissionSvc *service.SoftService[entity.RolFormPermission, dto.RolFormPermissionDTO]
	Issuer               *jwt.Issuer
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Issuer))

	mountSoftCrud(protected.Group("/user"), NewSoftCrudHandler[dto.UserDTO]("User", deps.UserSvc))
	mountSoftCrud(protected.Group("/roluser"), NewSoftCrudHandler[dto.RolUserDTO]("RolUser", deps.RolUserSvc))
	mountSoftCrud(protected.Group("/rol"), NewSoftCrudHandler[dto.RolDTO]("Rol", deps.RolSvc))
	mountSoftCrud(protected.Group("/form"), NewSoftCrudHandler[dto.FormDTO]("Form", deps.FormSvc))
	mountSoftCrud(protected.Group("/module"), NewSoftCrudHandler[dto.ModuleDTO]("Module", deps.ModuleSvc))
	mountSoftCrud(protected.Group("/permission"), NewSoftCrudHandler[dto.PermissionDTO]("Permission", deps.PermissionSvc))
	mountSoftCrud(protected.Group("/formmodule"), NewSoftCrudHandler[dto.FormModuleDTO]("FormModule", deps.FormModuleSvc))
	mountSoftCrud(protected.Group("/rolformpermission"), NewSoftCrudHandler[dto.RolFormPermissionDTO]("RolFormPermission", deps.RolFormPermissionSvc))

	// Person no tiene borrado lógico: solo el CRUD básico.
	mountCrud(protected.Group("/person"), NewCrudHandler[dto.PersonDTO]("Person", deps.PersonSvc))
}

// mountCrud registra las rutas CRUD básicas de un recurso.
func mountCrud[D any](g fiber.Router, h *CrudHandler[D]) {
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Post("/", h.Create)
	g.Put("/", h.Update)
	g.Delete("/permanent/:id", h.DeletePermanent)
}

// mountSoftCrud registra el CRUD básico más las rutas de borrado lógico.
func mountSoftCrud[D any](g fiber.Router, h *SoftCrudHandler[D]) {
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Post("/", h.Create)
	g.Put("/logico/:id", h.DeleteLogical)
	g.Put("/", h.Update)
	g.Delete("/permanent/:id", h.DeletePermanent)
	g.Patch("/:id", h.ToggleDeleted)
}
