package dto

import "github.com/polkiloo/bookcatalog/internal/domain/model"

// BookRequest is the payload of book creation.
type BookRequest struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationDate string `json:"publication_date"`
	Genre           string `json:"genre"`
	ISBN            string `json:"isbn"`
}

// Input converts request to domain input.
func (r BookRequest) Input() model.BookInput {
	return model.BookInput{
		Title:           r.Title,
		Author:          r.Author,
		PublicationDate: r.PublicationDate,
		Genre:           r.Genre,
		ISBN:            r.ISBN,
	}
}

// BookUpdateRequest is the payload of a partial update. Absent keys stay nil.
type BookUpdateRequest struct {
	Title           *string `json:"title"`
	Author          *string `json:"author"`
	PublicationDate *string `json:"publication_date"`
	Genre           *string `json:"genre"`
	ISBN            *string `json:"isbn"`
}

// Patch converts request to domain patch.
func (r BookUpdateRequest) Patch() model.BookPatch {
	return model.BookPatch{
		Title:           r.Title,
		Author:          r.Author,
		PublicationDate: r.PublicationDate,
		Genre:           r.Genre,
		ISBN:            r.ISBN,
	}
}

// BookResponse is the public representation of a book.
type BookResponse struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationDate string `json:"publication_date"`
	Genre           string `json:"genre"`
	ISBN            string `json:"isbn"`
}

// NewBookResponse renders book for clients.
func NewBookResponse(b model.Book) BookResponse {
	return BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		PublicationDate: b.FormattedDate(),
		Genre:           b.Genre,
		ISBN:            b.ISBN,
	}
}

// NewBookListResponse renders books, never returning nil.
func NewBookListResponse(books []model.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, NewBookResponse(b))
	}
	return out
}
