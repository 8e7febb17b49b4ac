package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/seguridad-api/internal/domain"
	"github.com/jhoicas/seguridad-api/internal/domain/entity"
	"github.com/jhoicas/seguridad-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

func userMapping() Mapping[entity.User] {
	return Mapping[entity.User]{
		Table:   "users",
		Columns: []string{"email", "password_hash", "active", "is_deleted", "person_id", "registration_date"},
		Scan: func(u *entity.User) []any {
			return []any{&u.ID, &u.Email, &u.PasswordHash, &u.Active, &u.IsDeleted, &u.PersonID, &u.RegistrationDate}
		},
		Values: func(u *entity.User) []any {
			return []any{u.Email, u.PasswordHash, u.Active, u.IsDeleted, u.PersonID, u.RegistrationDate}
		},
		ID:    func(u *entity.User) int { return u.ID },
		SetID: func(u *entity.User, id int) { u.ID = id },
	}
}

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	*SoftCrud[entity.User]
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		SoftCrud: NewSoftCrud[entity.User, *entity.User](pool, userMapping()),
		pool:     pool,
	}
}

// Add persiste un nuevo usuario. Devuelve domain.ErrDuplicate si el email ya existe.
func (r *UserRepo) Add(ctx context.Context, u *entity.User) (*entity.User, error) {
	created, err := r.SoftCrud.Add(ctx, u)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, err
	}
	return created, nil
}

// FindByEmail busca un usuario por email exacto. Devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, active, is_deleted, person_id, registration_date
		FROM users WHERE email = $1 LIMIT 1`
	var u entity.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Active, &u.IsDeleted, &u.PersonID, &u.RegistrationDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}
