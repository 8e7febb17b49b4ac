package service

import (
	"context"

	"github.com/jhoicas/seguridad-api/internal/application/dto"
	"github.com/jhoicas/seguridad-api/internal/domain"
	"github.com/jhoicas/seguridad-api/internal/domain/entity"
	"github.com/jhoicas/seguridad-api/internal/domain/repository"
	"github.com/jhoicas/seguridad-api/pkg/logger"
)

func rolUserMapper() Mapper[entity.RolUser, dto.RolUserDTO] {
	return Mapper[entity.RolUser, dto.RolUserDTO]{
		ToDTO: func(ru *entity.RolUser) *dto.RolUserDTO {
			return &dto.RolUserDTO{ID: ru.ID, RolID: ru.RolID, UserID: ru.UserID, IsDeleted: ru.IsDeleted}
		},
		ToEntity: func(d *dto.RolUserDTO) *entity.RolUser {
			// RolName y Email son campos de lectura, no se persisten.
			return &entity.RolUser{ID: d.ID, RolID: d.RolID, UserID: d.UserID, IsDeleted: d.IsDeleted}
		},
		DTOID: func(d *dto.RolUserDTO) int { return d.ID },
	}
}

// RolUserService capa de negocio para la asociación RolUser. Además del CRUD
// genérico, resuelve los roles de un usuario para el login y lista las
// asociaciones con rol y email denormalizados.
type RolUserService struct {
	*SoftService[entity.RolUser, dto.RolUserDTO]
	repo repository.RolUserRepository
}

// NewRolUserService construye la capa de negocio para RolUser.
func NewRolUserService(repo repository.RolUserRepository, log *logger.Logger) *RolUserService {
	return &RolUserService{
		SoftService: NewSoftService[entity.RolUser, dto.RolUserDTO](repo, log, "RolUser", rolUserMapper()),
		repo:        repo,
	}
}

// GetAll lista todas las asociaciones con rol_name y email resueltos por JOIN.
func (s *RolUserService) GetAll(ctx context.Context) ([]dto.RolUserDTO, error) {
	details, err := s.repo.ListWithDetail(ctx)
	if err != nil {
		return nil, s.wrap("listar", 0, err)
	}
	list := make([]dto.RolUserDTO, 0, len(details))
	for _, d := range details {
		list = append(list, dto.RolUserDTO{
			ID:        d.RolUser.ID,
			RolID:     d.RolUser.RolID,
			RolName:   d.RolName,
			UserID:    d.RolUser.UserID,
			Email:     d.Email,
			IsDeleted: d.RolUser.IsDeleted,
		})
	}
	return list, nil
}

// RolesByUserID devuelve los nombres de rol asociados al usuario. Un id no
// positivo es un error de validación; los fallos del almacenamiento se
// envuelven igual que en el resto de la capa de negocio.
func (s *RolUserService) RolesByUserID(ctx context.Context, userID int) ([]string, error) {
	if userID <= 0 {
		return nil, domain.NewValidationError("userId", "el identificador debe ser mayor que cero")
	}
	roles, err := s.repo.RolesByUserID(ctx, userID)
	if err != nil {
		return nil, s.wrap("roles por usuario", userID, err)
	}
	return roles, nil
}
