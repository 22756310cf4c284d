package users

import (
	"context"
	"errors"
)

var (
	// ErrNotFound lo devuelve el repositorio cuando el id no existe.
	ErrNotFound = errors.New("user not found")

	// ErrAlreadyExists lo devuelve Create cuando username o email ya están tomados.
	ErrAlreadyExists = errors.New("username or email already exists")
)

// Repository es el puerto de persistencia de usuarios.
//
// Invariantes del puerto:
//   - Create asigna el id y falla con ErrAlreadyExists si algún registro
//     existente comparte username o email.
//   - Update reemplaza el registro completo; falla con ErrNotFound si el id
//     no existe.
//   - Delete elimina y devuelve el registro eliminado.
//   - DeleteAll vacía la colección (capacidad operacional para reset).
//   - GetAll devuelve un snapshot en orden de inserción (ids ascendentes).
type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetAll(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u User) (User, error)
	Delete(ctx context.Context, id int64) (User, error)
	DeleteAll(ctx context.Context) error
}
