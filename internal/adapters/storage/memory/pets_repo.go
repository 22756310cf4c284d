package memory

import (
	"context"

	"pets-users-service/internal/domain/pets"
)

// PetRepo implementa pets.Repository sobre una colección en memoria.
type PetRepo struct {
	c *collection[pets.Pet]
}

var _ pets.Repository = (*PetRepo)(nil)

func NewPetRepo() *PetRepo {
	return &PetRepo{c: newCollection[pets.Pet]()}
}

func (r *PetRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	created, _ := r.c.create(func(id int64) pets.Pet {
		p.ID = id
		return p
	}, nil)
	return created, nil
}

func (r *PetRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	p, ok := r.c.get(id)
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *PetRepo) GetAll(ctx context.Context) ([]pets.Pet, error) {
	return r.c.all(), nil
}

func (r *PetRepo) Update(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	if !r.c.replace(p.ID, p) {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *PetRepo) Delete(ctx context.Context, id int64) (pets.Pet, error) {
	p, ok := r.c.remove(id)
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *PetRepo) DeleteAll(ctx context.Context) error {
	r.c.clear()
	return nil
}
