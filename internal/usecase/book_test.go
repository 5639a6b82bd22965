package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/bookcatalog/internal/domain/errors"
	"github.com/polkiloo/bookcatalog/internal/domain/model"
	testhelpers "github.com/polkiloo/bookcatalog/internal/test"
)

func duneInput() model.BookInput {
	return model.BookInput{
		Title:           "Dune",
		Author:          "Frank Herbert",
		PublicationDate: "1965-08-01",
		Genre:           "Science Fiction",
		ISBN:            "9780441013593",
	}
}

func seedBooks(t *testing.T, uc *BookUseCase) {
	t.Helper()
	inputs := []model.BookInput{
		duneInput(),
		{Title: "Dune Messiah", Author: "Frank Herbert", PublicationDate: "1969-10-15", Genre: "Science Fiction", ISBN: "9780593098233"},
		{Title: "Emma", Author: "Jane Austen", PublicationDate: "1815-12-23", Genre: "Romance", ISBN: "9780141439587"},
	}
	for _, in := range inputs {
		_, err := uc.Create(context.Background(), in)
		require.NoError(t, err)
	}
}

func TestBookUseCaseCreateAndGet(t *testing.T) {
	repo := testhelpers.NewBookRepositoryStub()
	uc := NewBookUseCase(repo, UpdatePolicy{})

	created, err := uc.Create(context.Background(), duneInput())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "1965-08-01", created.FormattedDate())

	got, err := uc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
}

func TestBookUseCaseCreateDuplicateISBNKeepsOriginal(t *testing.T) {
	repo := testhelpers.NewBookRepositoryStub()
	uc := NewBookUseCase(repo, UpdatePolicy{})

	original, err := uc.Create(context.Background(), duneInput())
	require.NoError(t, err)

	dup := duneInput()
	dup.Title = "Another"
	_, err = uc.Create(context.Background(), dup)
	require.ErrorIs(t, err, domainErrors.ErrAlreadyExists)

	got, err := uc.Get(context.Background(), original.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, 1, repo.Count())
}

func TestBookUseCaseCreateValidationPersistsNothing(t *testing.T) {
	repo := testhelpers.NewBookRepositoryStub()
	uc := NewBookUseCase(repo, UpdatePolicy{})

	in := duneInput()
	in.Genre = ""
	_, err := uc.Create(context.Background(), in)
	require.ErrorIs(t, err, domainErrors.ErrInvalidInput)

	in = duneInput()
	in.PublicationDate = "1965/08/01"
	_, err = uc.Create(context.Background(), in)
	require.ErrorIs(t, err, domainErrors.ErrInvalidInput)

	assert.Zero(t, repo.Count())
}

func TestBookUseCaseListFilters(t *testing.T) {
	uc := NewBookUseCase(testhelpers.NewBookRepositoryStub(), UpdatePolicy{})
	seedBooks(t, uc)
	ctx := context.Background()

	all, err := uc.List(ctx, model.BookQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byTitle, err := uc.List(ctx, model.BookQuery{Title: "Dune"})
	require.NoError(t, err)
	assert.Len(t, byTitle, 2)

	lower, err := uc.List(ctx, model.BookQuery{Title: "dune"})
	require.NoError(t, err)
	assert.Empty(t, lower)

	byGenre, err := uc.List(ctx, model.BookQuery{Genre: "Science"})
	require.NoError(t, err)
	assert.Empty(t, byGenre, "genre must match exactly")

	byGenre, err = uc.List(ctx, model.BookQuery{Genre: "Science Fiction"})
	require.NoError(t, err)
	assert.Len(t, byGenre, 2)

	byDate, err := uc.List(ctx, model.BookQuery{PublicationDate: "1815-12-23"})
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.Equal(t, "Emma", byDate[0].Title)

	combined, err := uc.List(ctx, model.BookQuery{Author: "Herbert", PublicationDate: "1969-10-15"})
	require.NoError(t, err)
	require.Len(t, combined, 1)
	assert.Equal(t, "Dune Messiah", combined[0].Title)
}

func TestBookUseCaseListRejectsBadDate(t *testing.T) {
	uc := NewBookUseCase(testhelpers.NewBookRepositoryStub(), UpdatePolicy{})
	seedBooks(t, uc)

	books, err := uc.List(context.Background(), model.BookQuery{Title: "Dune", PublicationDate: "yesterday"})
	var vErr *domainErrors.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, FieldPublicationDate, vErr.Field)
	assert.Nil(t, books)
}

func TestBookUseCaseUpdatePartial(t *testing.T) {
	uc := NewBookUseCase(testhelpers.NewBookRepositoryStub(), UpdatePolicy{})
	created, err := uc.Create(context.Background(), duneInput())
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), created.ID, model.BookPatch{Genre: strPtr("Sci-Fi")})
	require.NoError(t, err)
	assert.Equal(t, "Sci-Fi", updated.Genre)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Author, updated.Author)
	assert.Equal(t, created.ISBN, updated.ISBN)
	assert.Equal(t, created.PublicationDate, updated.PublicationDate)

	got, err := uc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)
}

func TestBookUseCaseUpdateEmptyPatchReturnsCurrent(t *testing.T) {
	repo := testhelpers.NewBookRepositoryStub()
	uc := NewBookUseCase(repo, UpdatePolicy{})
	created, err := uc.Create(context.Background(), duneInput())
	require.NoError(t, err)

	got, err := uc.Update(context.Background(), created.ID, model.BookPatch{})
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
	assert.Empty(t, repo.UpdateCalls)

	_, err = uc.Update(context.Background(), 999, model.BookPatch{})
	require.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestBookUseCaseUpdateNotFound(t *testing.T) {
	uc := NewBookUseCase(testhelpers.NewBookRepositoryStub(), UpdatePolicy{})
	_, err := uc.Update(context.Background(), 42, model.BookPatch{Title: strPtr("x")})
	require.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestBookUseCaseUpdateDuplicateISBN(t *testing.T) {
	uc := NewBookUseCase(testhelpers.NewBookRepositoryStub(), UpdatePolicy{})
	seedBooks(t, uc)
	_, err := uc.Update(context.Background(), 3, model.BookPatch{ISBN: strPtr("9780441013593")})
	require.ErrorIs(t, err, domainErrors.ErrAlreadyExists)
}

func TestBookUseCaseUpdateLenientDateReachesStore(t *testing.T) {
	repo := testhelpers.NewBookRepositoryStub()
	uc := NewBookUseCase(repo, UpdatePolicy{})
	created, err := uc.Create(context.Background(), duneInput())
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), created.ID, model.BookPatch{PublicationDate: strPtr("garbage")})
	require.ErrorIs(t, err, domainErrors.ErrInvalidInput)
	require.Len(t, repo.UpdateCalls, 1)
}

func TestBookUseCaseUpdateStrictPolicies(t *testing.T) {
	repo := testhelpers.NewBookRepositoryStub()
	uc := NewBookUseCase(repo, UpdatePolicy{ValidateDate: true, RejectEmpty: true})
	created, err := uc.Create(context.Background(), duneInput())
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), created.ID, model.BookPatch{PublicationDate: strPtr("garbage")})
	require.ErrorIs(t, err, domainErrors.ErrInvalidInput)
	_, err = uc.Update(context.Background(), created.ID, model.BookPatch{Title: strPtr("")})
	require.ErrorIs(t, err, domainErrors.ErrInvalidInput)
	assert.Empty(t, repo.UpdateCalls)
}

func TestBookUseCaseDelete(t *testing.T) {
	uc := NewBookUseCase(testhelpers.NewBookRepositoryStub(), UpdatePolicy{})
	created, err := uc.Create(context.Background(), duneInput())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	_, err = uc.Get(context.Background(), created.ID)
	require.ErrorIs(t, err, domainErrors.ErrNotFound)
	require.ErrorIs(t, uc.Delete(context.Background(), created.ID), domainErrors.ErrNotFound)
}

func TestBookUseCaseDuneScenario(t *testing.T) {
	uc := NewBookUseCase(testhelpers.NewBookRepositoryStub(), UpdatePolicy{})
	ctx := context.Background()

	created, err := uc.Create(ctx, duneInput())
	require.NoError(t, err)
	assert.Equal(t, "Dune", created.Title)
	assert.Equal(t, "Frank Herbert", created.Author)
	assert.Equal(t, "1965-08-01", created.FormattedDate())
	assert.Equal(t, "Science Fiction", created.Genre)
	assert.Equal(t, "9780441013593", created.ISBN)

	found, err := uc.List(ctx, model.BookQuery{Genre: "Science Fiction"})
	require.NoError(t, err)
	ids := make([]int64, 0, len(found))
	for _, b := range found {
		ids = append(ids, b.ID)
	}
	assert.Contains(t, ids, created.ID)

	_, err = uc.Update(ctx, created.ID, model.BookPatch{Author: strPtr("F. Herbert")})
	require.NoError(t, err)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "F. Herbert", got.Author)
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, "1965-08-01", got.FormattedDate())
	assert.Equal(t, "Science Fiction", got.Genre)
	assert.Equal(t, "9780441013593", got.ISBN)

	require.NoError(t, uc.Delete(ctx, created.ID))
	_, err = uc.Get(ctx, created.ID)
	require.ErrorIs(t, err, domainErrors.ErrNotFound)
}
