package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/bookshelf/internal/domain"
	"github.com/msomdec/bookshelf/internal/service"
	"github.com/msomdec/bookshelf/internal/view"
	"github.com/starfederation/datastar-go/datastar"
)

// HomeHandler serves the catalogue page and its live fragments.
type HomeHandler struct {
	books *service.BookService
	auth  *service.EditorAuth
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(books *service.BookService, auth *service.EditorAuth) *HomeHandler {
	return &HomeHandler{books: books, auth: auth}
}

// HandleHome renders the index page.
// GET /
func (h *HomeHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	books, err := h.books.List(r.Context())
	if err != nil {
		slog.Error("list books", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	editable := canEdit(r, h.auth)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.IndexPage(books, editable, !editable).Render(r.Context(), w); err != nil {
		slog.Error("render index page", "error", err)
	}
}

type addBookSignals struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// HandleAddBook adds a book from the form signals and re-renders the table.
// POST /ui/books
func (h *HomeHandler) HandleAddBook(w http.ResponseWriter, r *http.Request) {
	var signals addBookSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	_, err := h.books.Add(r.Context(), signals.Title, signals.Author)
	if err != nil && !errors.Is(err, domain.ErrInvalidInput) {
		slog.Error("add book", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sse := datastar.NewSSE(w, r)
	if err != nil {
		sse.PatchElementTempl(view.AddBookForm(err.Error()))
		return
	}

	books, err := h.books.List(r.Context())
	if err != nil {
		slog.Error("list books", "error", err)
		return
	}
	sse.PatchElementTempl(view.BookRows(books, true))
	sse.PatchElementTempl(view.AddBookForm(""))
	sse.MarshalAndPatchSignals(addBookSignals{})
}

// HandleDeleteBook deletes a book and removes its row.
// DELETE /ui/books/{id}
func (h *HomeHandler) HandleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	// A book that is already gone only needs its row removed.
	if err := h.books.Delete(r.Context(), id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		slog.Error("delete book", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.RemoveElementByID(view.BookRowID(id))
}
