package app

import (
	"context"
	"log/slog"

	"github.com/polkiloo/bookcatalog/internal/domain/model"
	"github.com/polkiloo/bookcatalog/internal/usecase"
)

// CatalogFacade joins authentication and catalog use cases for the HTTP layer.
type CatalogFacade struct {
	auth   *usecase.AuthUseCase
	books  *usecase.BookUseCase
	logger *slog.Logger
}

// NewCatalogFacade constructs CatalogFacade.
func NewCatalogFacade(auth *usecase.AuthUseCase, books *usecase.BookUseCase, logger *slog.Logger) *CatalogFacade {
	return &CatalogFacade{auth: auth, books: books, logger: logger}
}

// Register creates a user account.
func (f *CatalogFacade) Register(ctx context.Context, username, password string) error {
	usr, err := f.auth.Register(ctx, username, password)
	if err != nil {
		return err
	}
	f.logger.Info("user registered", slog.Int64("user_id", usr.ID), slog.String("username", usr.Username))
	return nil
}

// Login checks credentials and returns a signed token.
func (f *CatalogFacade) Login(ctx context.Context, username, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, username, password)
	return token, err
}

// Verify resolves a token to its user.
func (f *CatalogFacade) Verify(ctx context.Context, token string) (*model.User, error) {
	return f.auth.Verify(ctx, token)
}

// Books lists books matching query.
func (f *CatalogFacade) Books(ctx context.Context, query model.BookQuery) ([]model.Book, error) {
	return f.books.List(ctx, query)
}

// Book returns the book with id.
func (f *CatalogFacade) Book(ctx context.Context, id int64) (*model.Book, error) {
	return f.books.Get(ctx, id)
}

// CreateBook validates and stores a new book.
func (f *CatalogFacade) CreateBook(ctx context.Context, input model.BookInput) (*model.Book, error) {
	book, err := f.books.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	f.logger.Info("book created", slog.Int64("book_id", book.ID), slog.String("isbn", book.ISBN))
	return book, nil
}

// UpdateBook applies a partial update to the book with id.
func (f *CatalogFacade) UpdateBook(ctx context.Context, id int64, patch model.BookPatch) (*model.Book, error) {
	return f.books.Update(ctx, id, patch)
}

// DeleteBook removes the book with id.
func (f *CatalogFacade) DeleteBook(ctx context.Context, id int64) error {
	if err := f.books.Delete(ctx, id); err != nil {
		return err
	}
	f.logger.Info("book deleted", slog.Int64("book_id", id))
	return nil
}
