package memory

import (
	"context"

	"pets-users-service/internal/domain/users"
)

// UserRepo implementa users.Repository sobre una colección en memoria.
// La unicidad de username/email se chequea con un scan completo; aceptable
// a esta escala (el adapter Postgres lo resuelve con índices únicos).
type UserRepo struct {
	c *collection[users.User]
}

var _ users.Repository = (*UserRepo)(nil)

func NewUserRepo() *UserRepo {
	return &UserRepo{c: newCollection[users.User]()}
}

func (r *UserRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	// El scan de unicidad y el insert corren bajo el mismo lock.
	created, ok := r.c.create(
		func(id int64) users.User {
			u.ID = id
			return u
		},
		func(existing users.User) bool {
			return existing.Username == u.Username || existing.Email == u.Email
		},
	)
	if !ok {
		return users.User{}, users.ErrAlreadyExists
	}
	return created, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	u, ok := r.c.get(id)
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *UserRepo) GetAll(ctx context.Context) ([]users.User, error) {
	return r.c.all(), nil
}

func (r *UserRepo) Update(ctx context.Context, u users.User) (users.User, error) {
	if !r.c.replace(u.ID, u) {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *UserRepo) Delete(ctx context.Context, id int64) (users.User, error) {
	u, ok := r.c.remove(id)
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *UserRepo) DeleteAll(ctx context.Context) error {
	r.c.clear()
	return nil
}
