package test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/bookcatalog/internal/domain/errors"
	"github.com/polkiloo/bookcatalog/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Username: username, PasswordHash: passwordHash, CreatedAt: time.Now()}
	s.Next++
	s.Users[username] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// BookRepositoryStub keeps books in memory and mimics store constraints:
// unique isbn and DATE casting of raw update values.
type BookRepositoryStub struct {
	mu    sync.Mutex
	Books map[int64]model.Book
	Next  int64
	Err   error

	UpdateCalls []model.BookPatch
}

// NewBookRepositoryStub constructs an empty stub repository.
func NewBookRepositoryStub() *BookRepositoryStub {
	return &BookRepositoryStub{Books: make(map[int64]model.Book), Next: 1}
}

// List returns stored books matching filter ordered by id.
func (s *BookRepositoryStub) List(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Book
	for _, b := range s.Books {
		if filter.Title != "" && !strings.Contains(b.Title, filter.Title) {
			continue
		}
		if filter.Author != "" && !strings.Contains(b.Author, filter.Author) {
			continue
		}
		if filter.Genre != "" && b.Genre != filter.Genre {
			continue
		}
		if filter.PublicationDate != nil && !b.PublicationDate.Equal(*filter.PublicationDate) {
			continue
		}
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// GetByID returns stored book or not found.
func (s *BookRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	book, ok := s.Books[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &book, nil
}

// Create stores book unless isbn is taken.
func (s *BookRepositoryStub) Create(ctx context.Context, book model.Book) (*model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.isbnTaken(book.ISBN, 0) {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Books == nil {
		s.Books = make(map[int64]model.Book)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	book.ID = s.Next
	s.Next++
	s.Books[book.ID] = book
	return &book, nil
}

// Update applies supplied patch fields.
func (s *BookRepositoryStub) Update(ctx context.Context, id int64, patch model.BookPatch) (*model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpdateCalls = append(s.UpdateCalls, patch)
	if s.Err != nil {
		return nil, s.Err
	}
	book, ok := s.Books[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if patch.Title != nil {
		book.Title = *patch.Title
	}
	if patch.Author != nil {
		book.Author = *patch.Author
	}
	if patch.PublicationDate != nil {
		date, err := time.Parse(model.DateLayout, *patch.PublicationDate)
		if err != nil {
			return nil, domainErrors.NewValidationError("publication_date", "Invalid publication date format")
		}
		book.PublicationDate = date
	}
	if patch.Genre != nil {
		book.Genre = *patch.Genre
	}
	if patch.ISBN != nil {
		if s.isbnTaken(*patch.ISBN, id) {
			return nil, domainErrors.ErrAlreadyExists
		}
		book.ISBN = *patch.ISBN
	}
	s.Books[id] = book
	return &book, nil
}

// Delete removes stored book or returns not found.
func (s *BookRepositoryStub) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Books[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Books, id)
	return nil
}

// Count returns number of stored books.
func (s *BookRepositoryStub) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Books)
}

func (s *BookRepositoryStub) isbnTaken(isbn string, except int64) bool {
	for id, b := range s.Books {
		if id != except && b.ISBN == isbn {
			return true
		}
	}
	return false
}
