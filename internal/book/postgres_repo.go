package book

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

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	const query = `
		SELECT id, title, genre, price, publisher, page_count, language,
		       author_id, isbn, description, stock, created_at, updated_at
		FROM books
		WHERE id = $1
	`
	var b Book
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Genre, &b.Price, &b.Publisher, &b.PageCount, &b.Language,
		&b.AuthorID, &b.ISBN, &b.Description, &b.Stock, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	const query = `
		SELECT id, title, genre, price, publisher, page_count, language,
		       author_id, isbn, description, stock, created_at, updated_at
		FROM books
		WHERE isbn = $1 AND isbn <> ''
		LIMIT 1
	`
	var b Book
	err := r.db.QueryRow(ctx, query, isbn).Scan(
		&b.ID, &b.Title, &b.Genre, &b.Price, &b.Publisher, &b.PageCount, &b.Language,
		&b.AuthorID, &b.ISBN, &b.Description, &b.Stock, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) List(ctx context.Context, limit, offset int) ([]Book, error) {
	const query = `
		SELECT id, title, genre, price, publisher, page_count, language,
		       author_id, isbn, description, stock, created_at, updated_at
		FROM books
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Genre, &b.Price, &b.Publisher, &b.PageCount, &b.Language,
			&b.AuthorID, &b.ISBN, &b.Description, &b.Stock, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM books").Scan(&count)
	return count, err
}

func (r *PostgresRepo) Insert(ctx context.Context, b *Book) (bool, error) {
	const query = `
		INSERT INTO books (id, title, genre, price, publisher, page_count, language,
		                   author_id, isbn, description, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
	`
	tag, err := r.db.Exec(ctx, query,
		b.ID, b.Title, b.Genre, b.Price, b.Publisher, b.PageCount, b.Language,
		b.AuthorID, b.ISBN, b.Description, b.Stock,
	)
	if err != nil {
		return false, mapUniqueViolation(err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepo) Update(ctx context.Context, b *Book) (bool, error) {
	const query = `
		UPDATE books
		SET title = $2, genre = $3, price = $4, publisher = $5, page_count = $6,
		    language = $7, isbn = $8, description = $9, stock = $10, updated_at = now()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		b.ID, b.Title, b.Genre, b.Price, b.Publisher, b.PageCount,
		b.Language, b.ISBN, b.Description, b.Stock,
	)
	if err != nil {
		return false, mapUniqueViolation(err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, b *Book) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM books WHERE id = $1", b.ID)
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
