package usecase

import (
	"time"

	domainErrors "github.com/polkiloo/bookcatalog/internal/domain/errors"
	"github.com/polkiloo/bookcatalog/internal/domain/model"
)

const (
	FieldPublicationDate = "publication_date"

	msgAllFieldsRequired = "All fields are required"
	msgInvalidDate       = "Invalid publication date format"
	msgEmptyField        = "must not be empty"
)

// UpdatePolicy selects which creation-time rules also apply to partial updates.
type UpdatePolicy struct {
	ValidateDate bool
	RejectEmpty  bool
}

// ParseDate parses value as a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(model.DateLayout, value)
	if err != nil {
		return time.Time{}, domainErrors.NewValidationError(FieldPublicationDate, msgInvalidDate)
	}
	return date, nil
}

func validateInput(input model.BookInput) (model.Book, error) {
	if input.Title == "" || input.Author == "" || input.PublicationDate == "" || input.Genre == "" || input.ISBN == "" {
		return model.Book{}, domainErrors.NewValidationError("", msgAllFieldsRequired)
	}

	date, err := ParseDate(input.PublicationDate)
	if err != nil {
		return model.Book{}, err
	}

	return model.Book{
		Title:           input.Title,
		Author:          input.Author,
		PublicationDate: date,
		Genre:           input.Genre,
		ISBN:            input.ISBN,
	}, nil
}

func (p UpdatePolicy) apply(patch model.BookPatch) (model.BookPatch, error) {
	if p.RejectEmpty {
		fields := []struct {
			name  string
			value *string
		}{
			{"title", patch.Title},
			{"author", patch.Author},
			{FieldPublicationDate, patch.PublicationDate},
			{"genre", patch.Genre},
			{"isbn", patch.ISBN},
		}
		for _, f := range fields {
			if f.value != nil && *f.value == "" {
				return model.BookPatch{}, domainErrors.NewValidationError(f.name, msgEmptyField)
			}
		}
	}

	if p.ValidateDate && patch.PublicationDate != nil {
		date, err := ParseDate(*patch.PublicationDate)
		if err != nil {
			return model.BookPatch{}, err
		}
		formatted := model.FormatDate(date)
		patch.PublicationDate = &formatted
	}

	return patch, nil
}
