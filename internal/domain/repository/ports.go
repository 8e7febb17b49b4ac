package repository

import "context"

// Crud puerto de persistencia genérico para entidades con id entero (DIP).
// GetByID devuelve (nil, nil) cuando el id no existe; la traducción a
// "no encontrado" es responsabilidad de la capa de servicio.
type Crud[T any] interface {
	GetAll(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id int) (*T, error)
	Add(ctx context.Context, e *T) (*T, error)
	Update(ctx context.Context, e *T) (bool, error)
	DeletePermanent(ctx context.Context, id int) (bool, error)
}

// SoftCrud extiende Crud con borrado lógico. Solo las entidades que
// implementan entity.SoftDeletable obtienen una implementación de este puerto.
type SoftCrud[T any] interface {
	Crud[T]
	DeleteLogical(ctx context.Context, id int) (bool, error)
	ToggleDeleted(ctx context.Context, id int) (bool, error)
}
