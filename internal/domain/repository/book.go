package repository

import (
	"context"

	"github.com/polkiloo/bookcatalog/internal/domain/model"
)

// BookRepository describes persistence operations for catalog books.
type BookRepository interface {
	List(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	Create(ctx context.Context, book model.Book) (*model.Book, error)
	Update(ctx context.Context, id int64, patch model.BookPatch) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
}
