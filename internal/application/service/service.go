package service

import (
	"context"
	"errors"

	"github.com/jhoicas/seguridad-api/internal/domain"
	"github.com/jhoicas/seguridad-api/internal/domain/repository"
	"github.com/jhoicas/seguridad-api/pkg/logger"
)

// Mapper par de funciones explícitas de mapeo entre entidad y DTO, más el
// acceso al id del DTO. Sin mapeo automático por convención: si las formas
// divergen, el error aparece en compilación o en el primer test.
type Mapper[T any, D any] struct {
	ToDTO    func(*T) *D
	ToEntity func(*D) *T
	DTOID    func(*D) int
}

// Service capa de negocio genérica sobre un puerto CRUD: valida entrada,
// traduce "no encontrado" y envuelve fallos inesperados del almacenamiento.
// Una instancia configurada por cada par entidad/DTO.
type Service[T any, D any] struct {
	repo   repository.Crud[T]
	log    *logger.Logger
	entity string
	mapper Mapper[T, D]
}

// NewService construye la capa de negocio genérica para una entidad.
func NewService[T any, D any](repo repository.Crud[T], log *logger.Logger, entityName string, mapper Mapper[T, D]) *Service[T, D] {
	return &Service[T, D]{repo: repo, log: log, entity: entityName, mapper: mapper}
}

// GetAll lista todos los registros de la entidad.
func (s *Service[T, D]) GetAll(ctx context.Context) ([]D, error) {
	entities, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, s.wrap("listar", 0, err)
	}
	list := make([]D, 0, len(entities))
	for _, e := range entities {
		list = append(list, *s.mapper.ToDTO(e))
	}
	return list, nil
}

// GetByID obtiene un registro por id. Devuelve NotFoundError si no existe.
func (s *Service[T, D]) GetByID(ctx context.Context, id int) (*D, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "el identificador debe ser mayor que cero")
	}
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.wrap("consultar", id, err)
	}
	if e == nil {
		return nil, domain.NewNotFoundError(s.entity, id)
	}
	return s.mapper.ToDTO(e), nil
}

// Create persiste un nuevo registro y devuelve el DTO con el id generado.
func (s *Service[T, D]) Create(ctx context.Context, d *D) (*D, error) {
	if d == nil {
		return nil, domain.NewValidationError("dto", "los datos enviados son nulos o inválidos")
	}
	created, err := s.repo.Add(ctx, s.mapper.ToEntity(d))
	if err != nil {
		return nil, s.wrap("crear", 0, err)
	}
	return s.mapper.ToDTO(created), nil
}

// Update reemplaza por completo un registro existente.
func (s *Service[T, D]) Update(ctx context.Context, d *D) (*D, error) {
	if d == nil {
		return nil, domain.NewValidationError("dto", "los datos enviados para actualización son inválidos")
	}
	id := s.mapper.DTOID(d)
	if id <= 0 {
		return nil, domain.NewValidationError("id", "el identificador debe ser mayor que cero")
	}
	ok, err := s.repo.Update(ctx, s.mapper.ToEntity(d))
	if err != nil {
		return nil, s.wrap("actualizar", id, err)
	}
	if !ok {
		return nil, domain.NewNotFoundError(s.entity, id)
	}
	return d, nil
}

// DeletePermanent elimina físicamente un registro. Devuelve false si el id no existe.
func (s *Service[T, D]) DeletePermanent(ctx context.Context, id int) (bool, error) {
	if id <= 0 {
		return false, domain.NewValidationError("id", "el identificador debe ser mayor que cero")
	}
	ok, err := s.repo.DeletePermanent(ctx, id)
	if err != nil {
		return false, s.wrap("eliminar permanente", id, err)
	}
	return ok, nil
}

// wrap registra el fallo con contexto y lo envuelve en un BusinessError.
// Los errores de dominio (validación, no encontrado, duplicado) pasan sin tocar.
func (s *Service[T, D]) wrap(op string, id int, err error) error {
	if isDomainErr(err) {
		return err
	}
	ev := s.log.Error().Err(err).Str("entity", s.entity).Str("op", op)
	if id > 0 {
		ev = ev.Int("id", id)
	}
	ev.Msg("fallo de almacenamiento")
	return domain.NewBusinessError(op, s.entity, err)
}

func isDomainErr(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrDuplicate)
}

// SoftService extiende Service con borrado lógico para entidades que lo soportan.
type SoftService[T any, D any] struct {
	Service[T, D]
	soft repository.SoftCrud[T]
}

// NewSoftService construye la capa de negocio genérica con borrado lógico.
func NewSoftService[T any, D any](repo repository.SoftCrud[T], log *logger.Logger, entityName string, mapper Mapper[T, D]) *SoftService[T, D] {
	return &SoftService[T, D]{
		Service: Service[T, D]{repo: repo, log: log, entity: entityName, mapper: mapper},
		soft:    repo,
	}
}

// DeleteLogical marca el registro como eliminado. Devuelve false si el id no existe.
func (s *SoftService[T, D]) DeleteLogical(ctx context.Context, id int) (bool, error) {
	if id <= 0 {
		return false, domain.NewValidationError("id", "el identificador debe ser mayor que cero")
	}
	ok, err := s.soft.DeleteLogical(ctx, id)
	if err != nil {
		return false, s.wrap("eliminar lógico", id, err)
	}
	return ok, nil
}

// ToggleDeleted invierte el flag de borrado. Devuelve false si el id no existe.
func (s *SoftService[T, D]) ToggleDeleted(ctx context.Context, id int) (bool, error) {
	if id <= 0 {
		return false, domain.NewValidationError("id", "el identificador debe ser mayor que cero")
	}
	ok, err := s.soft.ToggleDeleted(ctx, id)
	if err != nil {
		return false, s.wrap("alternar borrado", id, err)
	}
	return ok, nil
}
