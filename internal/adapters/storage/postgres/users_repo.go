package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"pets-users-service/internal/domain/users"
)

// UsersRepo implementa users.Repository sobre la tabla users.
// La unicidad de username/email la garantizan índices únicos; acá solo
// traducimos la violación de constraint al error del puerto.
type UsersRepo struct {
	db *sql.DB
}

var _ users.Repository = (*UsersRepo)(nil)

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (
			username, password, email, dni,
			full_name, phone_number, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		RETURNING id
	`,
		u.Username,
		u.Password,
		u.Email,
		u.DNI,
		u.FullName,
		u.PhoneNumber,
		u.Status,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return users.User{}, users.ErrAlreadyExists
		}
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, username, password, email, dni, full_name, phone_number, status
		FROM users
		WHERE id = $1
	`, id)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) GetAll(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, username, password, email, dni, full_name, phone_number, status
		FROM users
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		var u users.User
		if err := rows.Scan(
			&u.ID,
			&u.Username,
			&u.Password,
			&u.Email,
			&u.DNI,
			&u.FullName,
			&u.PhoneNumber,
			&u.Status,
		); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) (users.User, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET
			username = $2,
			password = $3,
			email = $4,
			dni = $5,
			full_name = $6,
			phone_number = $7,
			status = $8,
			updated_at = now()
		WHERE id = $1
	`,
		u.ID,
		u.Username,
		u.Password,
		u.Email,
		u.DNI,
		u.FullName,
		u.PhoneNumber,
		u.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return users.User{}, users.ErrAlreadyExists
		}
		return users.User{}, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *UsersRepo) Delete(ctx context.Context, id int64) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		DELETE FROM users
		WHERE id = $1
		RETURNING id, username, password, email, dni, full_name, phone_number, status
	`, id)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users`)
	return err
}

func scanUser(row *sql.Row) (users.User, error) {
	var u users.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Password,
		&u.Email,
		&u.DNI,
		&u.FullName,
		&u.PhoneNumber,
		&u.Status,
	)
	return u, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
