package test

import (
	"context"
	"time"

	"github.com/polkiloo/bookcatalog/internal/domain/model"
)

// SampleBook returns the book used throughout HTTP tests.
func SampleBook() model.Book {
	return model.Book{
		ID:              1,
		Title:           "Dune",
		Author:          "Frank Herbert",
		PublicationDate: time.Date(1965, time.August, 1, 0, 0, 0, 0, time.UTC),
		Genre:           "Science Fiction",
		ISBN:            "9780441013593",
	}
}

// BookFacadeStub provides controllable behaviour for book endpoints.
type BookFacadeStub struct {
	BooksFn  func(context.Context, model.BookQuery) ([]model.Book, error)
	BookFn   func(context.Context, int64) (*model.Book, error)
	CreateFn func(context.Context, model.BookInput) (*model.Book, error)
	UpdateFn func(context.Context, int64, model.BookPatch) (*model.Book, error)
	DeleteFn func(context.Context, int64) error
}

// Books returns the sample book unless overridden.
func (s BookFacadeStub) Books(ctx context.Context, query model.BookQuery) ([]model.Book, error) {
	if s.BooksFn != nil {
		return s.BooksFn(ctx, query)
	}
	return []model.Book{SampleBook()}, nil
}

// Book returns the sample book with requested id.
func (s BookFacadeStub) Book(ctx context.Context, id int64) (*model.Book, error) {
	if s.BookFn != nil {
		return s.BookFn(ctx, id)
	}
	book := SampleBook()
	book.ID = id
	return &book, nil
}

// CreateBook echoes the sample book.
func (s BookFacadeStub) CreateBook(ctx context.Context, input model.BookInput) (*model.Book, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, input)
	}
	book := SampleBook()
	return &book, nil
}

// UpdateBook returns the sample book with requested id.
func (s BookFacadeStub) UpdateBook(ctx context.Context, id int64, patch model.BookPatch) (*model.Book, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch)
	}
	book := SampleBook()
	book.ID = id
	return &book, nil
}

// DeleteBook succeeds unless overridden.
func (s BookFacadeStub) DeleteBook(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// HealthCheckerStub reports configured health status.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}
