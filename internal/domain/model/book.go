package model

import "time"

// DateLayout is the wire format of publication dates.
const DateLayout = "2006-01-02"

// Book describes a catalog record.
type Book struct {
	ID              int64
	Title           string
	Author          string
	PublicationDate time.Time
	Genre           string
	ISBN            string
}

// FormattedDate returns publication date in DateLayout.
func (b Book) FormattedDate() string {
	return FormatDate(b.PublicationDate)
}

// BookInput carries raw fields of a book to be created.
type BookInput struct {
	Title           string
	Author          string
	PublicationDate string
	Genre           string
	ISBN            string
}

// BookPatch holds fields supplied to a partial update. Nil means keep the current value.
type BookPatch struct {
	Title           *string
	Author          *string
	PublicationDate *string
	Genre           *string
	ISBN            *string
}

// Empty reports whether the patch carries no fields.
func (p BookPatch) Empty() bool {
	return p.Title == nil && p.Author == nil && p.PublicationDate == nil && p.Genre == nil && p.ISBN == nil
}

// BookQuery carries raw list filters as received from clients.
type BookQuery struct {
	Title           string
	Author          string
	Genre           string
	PublicationDate string
}

// BookFilter is a parsed BookQuery. Zero values are ignored.
type BookFilter struct {
	Title           string
	Author          string
	Genre           string
	PublicationDate *time.Time
}

// FormatDate renders t using DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
