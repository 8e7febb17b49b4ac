package entity

// Person datos personales asociados a un User. No tiene flag de borrado
// lógico, por lo que solo admite las operaciones CRUD básicas.
type Person struct {
	ID        int
	FirstName string
	LastName  string
	Phone     string
}
