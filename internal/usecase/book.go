package usecase

import (
	"context"

	"github.com/polkiloo/bookcatalog/internal/domain/model"
	"github.com/polkiloo/bookcatalog/internal/domain/repository"
)

// BookUseCase encapsulates catalog operations on books.
type BookUseCase struct {
	books  repository.BookRepository
	policy UpdatePolicy
}

// NewBookUseCase constructs BookUseCase.
func NewBookUseCase(books repository.BookRepository, policy UpdatePolicy) *BookUseCase {
	return &BookUseCase{books: books, policy: policy}
}

// List returns books matching every supplied filter.
func (u *BookUseCase) List(ctx context.Context, query model.BookQuery) ([]model.Book, error) {
	filter := model.BookFilter{
		Title:  query.Title,
		Author: query.Author,
		Genre:  query.Genre,
	}
	if query.PublicationDate != "" {
		date, err := ParseDate(query.PublicationDate)
		if err != nil {
			return nil, err
		}
		filter.PublicationDate = &date
	}
	return u.books.List(ctx, filter)
}

// Get returns a single book.
func (u *BookUseCase) Get(ctx context.Context, id int64) (*model.Book, error) {
	return u.books.GetByID(ctx, id)
}

// Create validates input and persists a new book.
func (u *BookUseCase) Create(ctx context.Context, input model.BookInput) (*model.Book, error) {
	book, err := validateInput(input)
	if err != nil {
		return nil, err
	}
	return u.books.Create(ctx, book)
}

// Update applies supplied fields only, subject to the configured UpdatePolicy.
func (u *BookUseCase) Update(ctx context.Context, id int64, patch model.BookPatch) (*model.Book, error) {
	patch, err := u.policy.apply(patch)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return u.books.GetByID(ctx, id)
	}
	return u.books.Update(ctx, id, patch)
}

// Delete removes a book permanently.
func (u *BookUseCase) Delete(ctx context.Context, id int64) error {
	return u.books.Delete(ctx, id)
}
