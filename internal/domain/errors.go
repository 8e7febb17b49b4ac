package domain

import (
	"errors"
	"fmt"
)

// Sentinelas para clasificar errores con errors.Is en los handlers.
var (
	ErrValidation   = errors.New("entrada inválida")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrBusiness     = errors.New("error inesperado al procesar la solicitud")
	ErrUnauthorized = errors.New("credenciales inválidas")
	ErrForbidden    = errors.New("acceso denegado")
	ErrDuplicate    = errors.New("recurso duplicado")
)

// ValidationError entrada rechazada antes de tocar el almacenamiento
// (id <= 0, payload nulo, campo requerido vacío).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación de %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NewValidationError construye un error de validación para un campo.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError un id que no resuelve a ningún registro de la entidad.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s con id %d no encontrado", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NewNotFoundError construye un error de entidad no encontrada.
func NewNotFoundError(entity string, id int) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// BusinessError fallo inesperado del almacenamiento u otro colaborador,
// con la causa original adjunta. El transporte lo traduce a 500 sin
// exponer el detalle interno.
type BusinessError struct {
	Op     string
	Entity string
	Err    error
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *BusinessError) Unwrap() error { return e.Err }

func (e *BusinessError) Is(target error) bool { return target == ErrBusiness }

// NewBusinessError envuelve un fallo inesperado con contexto de operación y entidad.
func NewBusinessError(op, entity string, err error) error {
	return &BusinessError{Op: op, Entity: entity, Err: err}
}
