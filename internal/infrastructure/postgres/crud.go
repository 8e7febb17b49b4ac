package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/seguridad-api/internal/domain/entity"
)

// deletedCol columna del flag de borrado lógico en todas las tablas que lo soportan.
const deletedCol = "is_deleted"

// Mapping describe cómo una entidad se proyecta a su tabla: nombre de tabla,
// columnas (sin el id) y funciones explícitas de mapeo campo a campo.
// Nada de introspección en runtime: si el mapeo está mal, no compila o
// falla el primer test, no el primer request.
type Mapping[T any] struct {
	Table   string
	Columns []string
	// Scan devuelve los destinos para rows.Scan en orden id + Columns.
	Scan func(e *T) []any
	// Values devuelve los valores de Columns para INSERT/UPDATE, mismo orden.
	Values func(e *T) []any
	// ID y SetID acceso al identificador de la entidad.
	ID    func(e *T) int
	SetID func(e *T, id int)
}

// Crud repositorio genérico sobre PostgreSQL para entidades con id entero.
// Implementa repository.Crud[T].
type Crud[T any] struct {
	pool *pgxpool.Pool
	m    Mapping[T]

	selectAll  string
	selectByID string
	insertSQL  string
	updateSQL  string
	deleteSQL  string
}

// NewCrud construye el repositorio genérico a partir del mapping; las
// sentencias SQL se arman una sola vez.
func NewCrud[T any](pool *pgxpool.Pool, m Mapping[T]) *Crud[T] {
	cols := strings.Join(m.Columns, ", ")

	placeholders := make([]string, len(m.Columns))
	assignments := make([]string, len(m.Columns))
	for i, c := range m.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		assignments[i] = fmt.Sprintf("%s = $%d", c, i+2)
	}

	return &Crud[T]{
		pool:       pool,
		m:          m,
		selectAll:  fmt.Sprintf("SELECT id, %s FROM %s ORDER BY id", cols, m.Table),
		selectByID: fmt.Sprintf("SELECT id, %s FROM %s WHERE id = $1", cols, m.Table),
		insertSQL:  fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id", m.Table, cols, strings.Join(placeholders, ", ")),
		updateSQL:  fmt.Sprintf("UPDATE %s SET %s WHERE id = $1", m.Table, strings.Join(assignments, ", ")),
		deleteSQL:  fmt.Sprintf("DELETE FROM %s WHERE id = $1", m.Table),
	}
}

// GetAll obtiene todos los registros de la tabla.
func (r *Crud[T]) GetAll(ctx context.Context) ([]*T, error) {
	rows, err := r.pool.Query(ctx, r.selectAll)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", r.m.Table, err)
	}
	defer rows.Close()

	var list []*T
	for rows.Next() {
		var e T
		if err := rows.Scan(r.m.Scan(&e)...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.m.Table, err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// GetByID busca un registro por id. Devuelve (nil, nil) si no existe.
func (r *Crud[T]) GetByID(ctx context.Context, id int) (*T, error) {
	var e T
	err := r.pool.QueryRow(ctx, r.selectByID, id).Scan(r.m.Scan(&e)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select %s by id: %w", r.m.Table, err)
	}
	return &e, nil
}

// Add persiste la entidad y asigna el id generado.
func (r *Crud[T]) Add(ctx context.Context, e *T) (*T, error) {
	var id int
	if err := r.pool.QueryRow(ctx, r.insertSQL, r.m.Values(e)...).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert %s: %w", r.m.Table, err)
	}
	r.m.SetID(e, id)
	return e, nil
}

// Update reemplaza todas las columnas del registro. Devuelve false si el id no existe.
func (r *Crud[T]) Update(ctx context.Context, e *T) (bool, error) {
	args := append([]any{r.m.ID(e)}, r.m.Values(e)...)
	ct, err := r.pool.Exec(ctx, r.updateSQL, args...)
	if err != nil {
		return false, fmt.Errorf("update %s: %w", r.m.Table, err)
	}
	return ct.RowsAffected() > 0, nil
}

// DeletePermanent elimina físicamente el registro. Devuelve false si no existía.
func (r *Crud[T]) DeletePermanent(ctx context.Context, id int) (bool, error) {
	ct, err := r.pool.Exec(ctx, r.deleteSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", r.m.Table, err)
	}
	return ct.RowsAffected() > 0, nil
}

// SoftCrud extiende Crud con borrado lógico sobre la columna is_deleted.
// Implementa repository.SoftCrud[T].
type SoftCrud[T any] struct {
	Crud[T]

	logicalSQL string
	toggleSQL  string
}

// NewSoftCrud construye el repositorio con borrado lógico. El parámetro PT
// exige en compilación que la entidad implemente entity.SoftDeletable; una
// entidad sin flag de borrado no puede instanciar este repositorio.
func NewSoftCrud[T any, PT interface {
	*T
	entity.SoftDeletable
}](pool *pgxpool.Pool, m Mapping[T]) *SoftCrud[T] {
	return &SoftCrud[T]{
		Crud:       *NewCrud(pool, m),
		logicalSQL: fmt.Sprintf("UPDATE %s SET %s = true WHERE id = $1", m.Table, deletedCol),
		toggleSQL:  fmt.Sprintf("UPDATE %s SET %s = NOT %s WHERE id = $1", m.Table, deletedCol, deletedCol),
	}
}

// DeleteLogical marca el registro como eliminado. Devuelve false si el id no existe.
func (r *SoftCrud[T]) DeleteLogical(ctx context.Context, id int) (bool, error) {
	ct, err := r.pool.Exec(ctx, r.logicalSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete lógico %s: %w", r.m.Table, err)
	}
	return ct.RowsAffected() > 0, nil
}

// ToggleDeleted invierte el flag de borrado. Devuelve false si el id no existe.
func (r *SoftCrud[T]) ToggleDeleted(ctx context.Context, id int) (bool, error) {
	ct, err := r.pool.Exec(ctx, r.toggleSQL, id)
	if err != nil {
		return false, fmt.Errorf("toggle %s: %w", r.m.Table, err)
	}
	return ct.RowsAffected() > 0, nil
}
