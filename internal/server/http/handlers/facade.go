package handlers

import (
	"context"

	"github.com/polkiloo/bookcatalog/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	Verify(ctx context.Context, token string) (*model.User, error)
}

// BookFacade encapsulates catalog operations exposed via HTTP.
type BookFacade interface {
	Books(ctx context.Context, query model.BookQuery) ([]model.Book, error)
	Book(ctx context.Context, id int64) (*model.Book, error)
	CreateBook(ctx context.Context, input model.BookInput) (*model.Book, error)
	UpdateBook(ctx context.Context, id int64, patch model.BookPatch) (*model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
}

// CatalogFacade aggregates the full set of operations used across handlers.
type CatalogFacade interface {
	AuthFacade
	BookFacade
}

// HealthChecker reports readiness of backing services.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
