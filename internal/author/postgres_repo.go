package author

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Author, error) {
	const query = `
		SELECT id, full_name, biography, nationality, created_at, updated_at
		FROM authors
		WHERE id = $1
	`
	var a Author
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.FullName, &a.Biography, &a.Nationality, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Author{}, ErrNotFound
		}
		return Author{}, err
	}
	return a, nil
}

func (r *PostgresRepo) GetByFullName(ctx context.Context, fullName string) ([]Author, error) {
	const query = `
		SELECT id, full_name, biography, nationality, created_at, updated_at
		FROM authors
		WHERE lower(full_name) = lower($1)
	`
	rows, err := r.db.Query(ctx, query, fullName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Author
	for rows.Next() {
		var a Author
		if err := rows.Scan(&a.ID, &a.FullName, &a.Biography, &a.Nationality, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) List(ctx context.Context, limit, offset int) ([]Author, error) {
	const query = `
		SELECT id, full_name, biography, nationality, created_at, updated_at
		FROM authors
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Author
	for rows.Next() {
		var a Author
		if err := rows.Scan(&a.ID, &a.FullName, &a.Biography, &a.Nationality, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM authors").Scan(&count)
	return count, err
}

func (r *PostgresRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM authors WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

func (r *PostgresRepo) Insert(ctx context.Context, a *Author) (bool, error) {
	const query = `
		INSERT INTO authors (id, full_name, biography, nationality, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
	`
	tag, err := r.db.Exec(ctx, query, a.ID, a.FullName, a.Biography, a.Nationality)
	if err != nil {
		return false, mapUniqueViolation(err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepo) Update(ctx context.Context, a *Author) (bool, error) {
	const query = `
		UPDATE authors
		SET full_name = $2, biography = $3, nationality = $4, updated_at = now()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, a.ID, a.FullName, a.Biography, a.Nationality)
	if err != nil {
		return false, mapUniqueViolation(err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes the author row; dependent books go with it via the
// ON DELETE CASCADE constraint.
func (r *PostgresRepo) Delete(ctx context.Context, a *Author) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM authors WHERE id = $1", a.ID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}
