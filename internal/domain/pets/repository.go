package pets

import (
	"context"
	"errors"
)

// ErrNotFound lo devuelve el repositorio cuando el id no existe.
// Los handlers lo mapean a 404; las capas de dominio no conocen HTTP.
var ErrNotFound = errors.New("pet not found")

// Repository es el puerto de persistencia de mascotas.
// GetAll devuelve un snapshot en orden de inserción (ids ascendentes).
type Repository interface {
	Create(ctx context.Context, p Pet) (Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	GetAll(ctx context.Context) ([]Pet, error)
	Update(ctx context.Context, p Pet) (Pet, error)
	Delete(ctx context.Context, id int64) (Pet, error)
	DeleteAll(ctx context.Context) error
}
