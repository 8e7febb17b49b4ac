package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/seguridad-api/internal/application/dto"
	"github.com/jhoicas/seguridad-api/internal/domain"
	"github.com/jhoicas/seguridad-api/internal/domain/entity"
	"github.com/jhoicas/seguridad-api/internal/domain/repository"
	"github.com/jhoicas/seguridad-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer contrato mínimo de emisión de tokens que necesita el login.
// Lo implementa *jwt.Issuer.
type TokenIssuer interface {
	Generate(userID int, email string, roles []string) (string, error)
}

// roleResolver contrato para resolver los roles de un usuario.
// Lo implementa *service.RolUserService.
type roleResolver interface {
	RolesByUserID(ctx context.Context, userID int) ([]string, error)
}

// AuthUseCase casos de uso de autenticación: login y registro.
type AuthUseCase struct {
	users  repository.UserRepository
	roles  roleResolver
	issuer TokenIssuer
	log    *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, roles roleResolver, issuer TokenIssuer, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, roles: roles, issuer: issuer, log: log}
}

// Login valida credenciales, resuelve los roles del usuario y emite el token.
// Email desconocido, contraseña incorrecta y cuenta inactiva devuelven el
// mismo ErrUnauthorized: el caller no puede distinguir qué campo falló.
//
// La comparación usa bcrypt sobre el hash almacenado; las contraseñas nunca
// se guardan en claro.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "login").Msg("fallo al buscar usuario")
		return nil, domain.NewBusinessError("login", "User", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active || user.IsDeleted {
		return nil, domain.ErrUnauthorized
	}

	roles, err := uc.roles.RolesByUserID(ctx, user.ID)
	if err != nil {
		// el resolver ya envuelve y registra los fallos de almacenamiento
		return nil, err
	}

	token, err := uc.issuer.Generate(user.ID, user.Email, roles)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "login").Int("user_id", user.ID).Msg("fallo al emitir token")
		return nil, domain.NewBusinessError("emitir token", "User", err)
	}
	return &dto.LoginResponse{Token: token}, nil
}

// Register crea un usuario activo con la contraseña hasheada con bcrypt.
// Devuelve domain.ErrDuplicate si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "register").Msg("fallo al buscar usuario")
		return nil, domain.NewBusinessError("register", "User", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewBusinessError("register", "User", err)
	}

	user := &entity.User{
		Email:            in.Email,
		PasswordHash:     string(hash),
		Active:           true,
		PersonID:         in.PersonID,
		RegistrationDate: time.Now(),
	}
	created, err := uc.users.Add(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		uc.log.Error().Err(err).Str("op", "register").Msg("fallo al crear usuario")
		return nil, domain.NewBusinessError("register", "User", err)
	}

	return &dto.UserResponse{
		ID:               created.ID,
		Email:            created.Email,
		Active:           created.Active,
		IsDeleted:        created.IsDeleted,
		PersonID:         created.PersonID,
		RegistrationDate: created.RegistrationDate,
	}, nil
}
