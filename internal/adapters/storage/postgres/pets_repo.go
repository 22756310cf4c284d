package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pets-users-service/internal/domain/pets"
)

// PetsRepo implementa pets.Repository sobre la tabla pets.
// Cada operación corre en su propia transacción implícita; el control de
// concurrencia queda en el motor.
type PetsRepo struct {
	db *sql.DB
}

var _ pets.Repository = (*PetsRepo)(nil)

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (name, type, age, owner_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		p.Name,
		p.Type,
		p.Age,
		p.OwnerName,
	).Scan(&p.ID)
	if err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, type, age, owner_name
		FROM pets
		WHERE id = $1
	`, id)

	var p pets.Pet
	if err := row.Scan(&p.ID, &p.Name, &p.Type, &p.Age, &p.OwnerName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) GetAll(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, type, age, owner_name
		FROM pets
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Age, &p.OwnerName); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET name = $2, type = $3, age = $4, owner_name = $5
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Type,
		p.Age,
		p.OwnerName,
	)
	if err != nil {
		return pets.Pet{}, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		DELETE FROM pets
		WHERE id = $1
		RETURNING id, name, type, age, owner_name
	`, id)

	var p pets.Pet
	if err := row.Scan(&p.ID, &p.Name, &p.Type, &p.Age, &p.OwnerName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM pets`)
	return err
}
