package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/seguridad-api/internal/application/dto"
)

// crudService contrato de la capa de negocio genérica que necesita el handler.
type crudService[D any] interface {
	GetAll(ctx context.Context) ([]D, error)
	GetByID(ctx context.Context, id int) (*D, error)
	Create(ctx context.Context, d *D) (*D, error)
	Update(ctx context.Context, d *D) (*D, error)
	DeletePermanent(ctx context.Context, id int) (bool, error)
}

// softCrudService agrega las operaciones de borrado lógico.
type softCrudService[D any] interface {
	crudService[D]
	DeleteLogical(ctx context.Context, id int) (bool, error)
	ToggleDeleted(ctx context.Context, id int) (bool, error)
}

// CrudHandler handler HTTP genérico para un recurso con CRUD básico.
// Una instancia por entidad; el nombre se usa en los mensajes de respuesta.
type CrudHandler[D any] struct {
	svc  crudService[D]
	name string
}

// NewCrudHandler construye el handler genérico para un recurso.
func NewCrudHandler[D any](name string, svc crudService[D]) *CrudHandler[D] {
	return &CrudHandler[D]{svc: svc, name: name}
}

// List responde GET / con todos los registros.
func (h *CrudHandler[D]) List(c *fiber.Ctx) error {
	out, err := h.svc.GetAll(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID responde GET /:id.
func (h *CrudHandler[D]) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id debe ser un entero"})
	}
	out, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create responde POST / con el registro creado.
func (h *CrudHandler[D]) Create(c *fiber.Ctx) error {
	var in D
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.svc.Create(c.Context(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update responde PUT / reemplazando el registro completo.
func (h *CrudHandler[D]) Update(c *fiber.Ctx) error {
	var in D
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.svc.Update(c.Context(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeletePermanent responde DELETE /permanent/:id con eliminación física.
func (h *CrudHandler[D]) DeletePermanent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id debe ser un entero"})
	}
	ok, err := h.svc.DeletePermanent(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: h.name + " no encontrado"})
	}
	return c.JSON(dto.MessageResponse{Message: h.name + " eliminado permanentemente"})
}

// SoftCrudHandler handler genérico para recursos con borrado lógico.
type SoftCrudHandler[D any] struct {
	CrudHandler[D]
	soft softCrudService[D]
}

// NewSoftCrudHandler construye el handler genérico con borrado lógico.
func NewSoftCrudHandler[D any](name string, svc softCrudService[D]) *SoftCrudHandler[D] {
	return &SoftCrudHandler[D]{
		CrudHandler: CrudHandler[D]{svc: svc, name: name},
		soft:        svc,
	}
}

// DeleteLogical responde PUT /logico/:id marcando el registro como eliminado.
func (h *SoftCrudHandler[D]) DeleteLogical(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id debe ser un entero"})
	}
	ok, err := h.soft.DeleteLogical(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: h.name + " no encontrado"})
	}
	return c.JSON(dto.MessageResponse{Message: h.name + " eliminado lógicamente"})
}

// ToggleDeleted responde PATCH /:id invirtiendo el flag de borrado.
func (h *SoftCrudHandler[D]) ToggleDeleted(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id debe ser un entero"})
	}
	ok, err := h.soft.ToggleDeleted(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: h.name + " no encontrado"})
	}
	return c.JSON(dto.MessageResponse{Message: h.name + " actualizado lógicamente"})
}
