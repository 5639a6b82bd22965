package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/bookcatalog/internal/domain/errors"
	"github.com/polkiloo/bookcatalog/internal/domain/model"
)

const bookColumns = `id, title, author, publication_date, genre, isbn`

type bookRepository struct {
	storage *Storage
}

// List filters with strpos so that title and author matching stays
// case-sensitive and free of LIKE wildcards.
func (r *bookRepository) List(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	var (
		conds []string
		args  []any
	)
	where := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.Title != "" {
		where("strpos(title, $%d) > 0", filter.Title)
	}
	if filter.Author != "" {
		where("strpos(author, $%d) > 0", filter.Author)
	}
	if filter.Genre != "" {
		where("genre = $%d", filter.Genre)
	}
	if filter.PublicationDate != nil {
		where("publication_date = $%d", *filter.PublicationDate)
	}

	query := `SELECT ` + bookColumns + ` FROM books`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Book, 0)
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.PublicationDate, &b.Genre, &b.ISBN); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books WHERE id=$1`
	return scanBook(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *bookRepository) Create(ctx context.Context, book model.Book) (*model.Book, error) {
	const query = `INSERT INTO books (title, author, publication_date, genre, isbn)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, book.Title, book.Author, book.PublicationDate, book.Genre, book.ISBN).Scan(&book.ID)
	if err != nil {
		return nil, translateError(err)
	}
	return &book, nil
}

// Update writes supplied fields in a single statement; nil fields keep
// their stored value. publication_date is cast by the database.
func (r *bookRepository) Update(ctx context.Context, id int64, patch model.BookPatch) (*model.Book, error) {
	const query = `UPDATE books SET
                       title = COALESCE($2, title),
                       author = COALESCE($3, author),
                       publication_date = COALESCE($4::date, publication_date),
                       genre = COALESCE($5, genre),
                       isbn = COALESCE($6, isbn)
                   WHERE id=$1
                   RETURNING ` + bookColumns
	row := r.storage.pool.QueryRow(ctx, query, id, patch.Title, patch.Author, patch.PublicationDate, patch.Genre, patch.ISBN)
	return scanBook(row)
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM books WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func scanBook(row pgx.Row) (*model.Book, error) {
	var b model.Book
	if err := row.Scan(&b.ID, &b.Title, &b.Author, &b.PublicationDate, &b.Genre, &b.ISBN); err != nil {
		return nil, translateError(err)
	}
	return &b, nil
}
