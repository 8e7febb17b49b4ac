package entity

// SoftDeletable la implementan las entidades que soportan borrado lógico.
// Las operaciones de borrado lógico solo existen para entidades que cumplen
// este contrato; una entidad sin el flag no las ofrece en tiempo de compilación.
type SoftDeletable interface {
	SoftDeleted() bool
	SetSoftDeleted(deleted bool)
}
