package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/seguridad-api/internal/domain/entity"
	"github.com/jhoicas/seguridad-api/internal/domain/repository"
)

var _ repository.Crud[entity.Person] = (*Crud[entity.Person])(nil)

func personMapping() Mapping[entity.Person] {
	return Mapping[entity.Person]{
		Table:   "persons",
		Columns: []string{"first_name", "last_name", "phone"},
		Scan: func(p *entity.Person) []any {
			return []any{&p.ID, &p.FirstName, &p.LastName, &p.Phone}
		},
		Values: func(p *entity.Person) []any {
			return []any{p.FirstName, p.LastName, p.Phone}
		},
		ID:    func(p *entity.Person) int { return p.ID },
		SetID: func(p *entity.Person, id int) { p.ID = id },
	}
}

// NewPersonRepository construye el adaptador de persistencia para Person.
// Person no tiene flag de borrado lógico, así que solo ofrece el CRUD básico.
func NewPersonRepository(pool *pgxpool.Pool) *Crud[entity.Person] {
	return NewCrud(pool, personMapping())
}
