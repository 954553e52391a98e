package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/bookshelf/internal/domain"
	"github.com/msomdec/bookshelf/internal/service"
)

// BookHandler serves the JSON books API.
type BookHandler struct {
	books *service.BookService
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(books *service.BookService) *BookHandler {
	return &BookHandler{books: books}
}

// HandleList returns every book.
// GET /books
// Response: [{"id":1,"title":"...","author":"..."}, ...]
func (h *BookHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.List(r.Context())
	if err != nil {
		slog.Error("list books", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not list books.")
		return
	}
	writeJSON(w, http.StatusOK, toBookDTOs(books))
}

// HandleGet returns one book.
// GET /books/{id}
func (h *BookHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseBookID(w, r)
	if !ok {
		return
	}

	book, err := h.books.Get(r.Context(), id)
	if err != nil {
		writeBookError(w, "get book", err)
		return
	}
	writeJSON(w, http.StatusOK, toBookDTO(book))
}

// HandleAdd stores a new book and responds with its ID.
// POST /books/add
// Request:  {"title":"...","author":"..."}
// Response: 42
func (h *BookHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req BookDTO
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	id, err := h.books.Add(r.Context(), req.Title, req.Author)
	if err != nil {
		writeBookError(w, "add book", err)
		return
	}
	writeJSON(w, http.StatusOK, id)
}

// HandleEdit replaces the title and author of the book with the given ID.
// PUT /books/edit
// Request: {"id":1,"title":"...","author":"..."}
func (h *BookHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	var req BookDTO
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := h.books.Update(r.Context(), req.toDomain()); err != nil {
		writeBookError(w, "update book", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// HandleDelete removes a book.
// DELETE /books/delete/{id}
func (h *BookHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseBookID(w, r)
	if !ok {
		return
	}

	if err := h.books.Delete(r.Context(), id); err != nil {
		writeBookError(w, "delete book", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func parseBookID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid book id.")
		return 0, false
	}
	return id, true
}

func writeBookError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Book not found.")
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.Error(op, "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
