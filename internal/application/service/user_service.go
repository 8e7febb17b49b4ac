package service

import (
	"context"
	"time"

	"github.com/jhoicas/seguridad-api/internal/application/dto"
	"github.com/jhoicas/seguridad-api/internal/domain"
	"github.com/jhoicas/seguridad-api/internal/domain/entity"
	"github.com/jhoicas/seguridad-api/internal/domain/repository"
	"github.com/jhoicas/seguridad-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

func userMapper() Mapper[entity.User, dto.UserDTO] {
	return Mapper[entity.User, dto.UserDTO]{
		ToDTO: func(u *entity.User) *dto.UserDTO {
			// Password nunca sale en respuestas; el hash tampoco.
			return &dto.UserDTO{
				ID:               u.ID,
				Email:            u.Email,
				Active:           u.Active,
				IsDeleted:        u.IsDeleted,
				PersonID:         u.PersonID,
				RegistrationDate: u.RegistrationDate,
			}
		},
		ToEntity: func(d *dto.UserDTO) *entity.User {
			return &entity.User{
				ID:               d.ID,
				Email:            d.Email,
				Active:           d.Active,
				IsDeleted:        d.IsDeleted,
				PersonID:         d.PersonID,
				RegistrationDate: d.RegistrationDate,
			}
		},
		DTOID: func(d *dto.UserDTO) int { return d.ID },
	}
}

// UserService capa de negocio para User. Reusa el CRUD genérico para
// lecturas y borrados, pero crea y actualiza con manejo de credencial:
// la contraseña entra en claro por el DTO y se persiste solo como hash bcrypt.
type UserService struct {
	*SoftService[entity.User, dto.UserDTO]
	repo repository.UserRepository
}

// NewUserService construye la capa de negocio para User.
func NewUserService(repo repository.UserRepository, log *logger.Logger) *UserService {
	return &UserService{
		SoftService: NewSoftService[entity.User, dto.UserDTO](repo, log, "User", userMapper()),
		repo:        repo,
	}
}

// Create persiste un usuario nuevo con la contraseña hasheada.
func (s *UserService) Create(ctx context.Context, d *dto.UserDTO) (*dto.UserDTO, error) {
	if d == nil {
		return nil, domain.NewValidationError("dto", "los datos enviados son nulos o inválidos")
	}
	if d.Password == "" {
		return nil, domain.NewValidationError("password", "la contraseña es requerida para crear un usuario")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(d.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, s.wrap("crear", 0, err)
	}

	u := s.mapper.ToEntity(d)
	u.PasswordHash = string(hash)
	u.Active = true
	u.RegistrationDate = time.Now()

	created, err := s.repo.Add(ctx, u)
	if err != nil {
		return nil, s.wrap("crear", 0, err)
	}
	return s.mapper.ToDTO(created), nil
}

// Update reemplaza los datos del usuario. Conserva el hash almacenado y la
// fecha de registro salvo que el DTO traiga una contraseña nueva.
func (s *UserService) Update(ctx context.Context, d *dto.UserDTO) (*dto.UserDTO, error) {
	if d == nil {
		return nil, domain.NewValidationError("dto", "los datos enviados para actualización son inválidos")
	}
	if d.ID <= 0 {
		return nil, domain.NewValidationError("id", "el identificador debe ser mayor que cero")
	}

	existing, err := s.repo.GetByID(ctx, d.ID)
	if err != nil {
		return nil, s.wrap("actualizar", d.ID, err)
	}
	if existing == nil {
		return nil, domain.NewNotFoundError(s.entity, d.ID)
	}

	u := s.mapper.ToEntity(d)
	u.PasswordHash = existing.PasswordHash
	u.RegistrationDate = existing.RegistrationDate
	if d.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, s.wrap("actualizar", d.ID, err)
		}
		u.PasswordHash = string(hash)
	}

	ok, err := s.repo.Update(ctx, u)
	if err != nil {
		return nil, s.wrap("actualizar", d.ID, err)
	}
	if !ok {
		return nil, domain.NewNotFoundError(s.entity, d.ID)
	}
	return s.mapper.ToDTO(u), nil
}
