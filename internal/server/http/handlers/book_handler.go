package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bookcatalog/internal/domain/model"
	"github.com/polkiloo/bookcatalog/internal/server/http/dto"
)

const msgISBNTaken = "Book with this ISBN already exists"

// BookHandler manages catalog endpoints.
type BookHandler struct {
	facade BookFacade
}

// NewBookHandler constructs BookHandler.
func NewBookHandler(facade BookFacade) *BookHandler {
	return &BookHandler{facade: facade}
}

// List handles GET /books.
func (h *BookHandler) List(c *gin.Context) {
	query := model.BookQuery{
		Title:           c.Query("title"),
		Author:          c.Query("author"),
		Genre:           c.Query("genre"),
		PublicationDate: c.Query("publication_date"),
	}
	books, err := h.facade.Books(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, msgISBNTaken)
		return
	}
	c.JSON(http.StatusOK, dto.NewBookListResponse(books))
}

// Get handles GET /books/:id.
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}
	book, err := h.facade.Book(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, msgISBNTaken)
		return
	}
	c.JSON(http.StatusOK, dto.NewBookResponse(*book))
}

// Create handles POST /books.
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		message(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	book, err := h.facade.CreateBook(c.Request.Context(), req.Input())
	if err != nil {
		respondError(c, err, msgISBNTaken)
		return
	}
	c.JSON(http.StatusCreated, dto.NewBookResponse(*book))
}

// Update handles PUT /books/:id.
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}
	var req dto.BookUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		message(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	book, err := h.facade.UpdateBook(c.Request.Context(), id, req.Patch())
	if err != nil {
		respondError(c, err, msgISBNTaken)
		return
	}
	c.JSON(http.StatusOK, dto.NewBookResponse(*book))
}

// Delete handles DELETE /books/:id.
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteBook(c.Request.Context(), id); err != nil {
		respondError(c, err, msgISBNTaken)
		return
	}
	c.Status(http.StatusNoContent)
}

// bookID parses the :id path segment. Ids that cannot name a book are
// reported as not found.
func bookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		message(c, http.StatusNotFound, msgBookNotFound)
		return 0, false
	}
	return id, true
}
