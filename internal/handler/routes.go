package handler

import (
	"net/http"

	"github.com/msomdec/bookshelf/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, books *service.BookService, auth *service.EditorAuth, limiter *service.TokenBucket, cookieSecure bool) {
	bookHandler := NewBookHandler(books)
	homeHandler := NewHomeHandler(books, auth)
	authHandler := NewAuthHandler(auth, limiter, cookieSecure)

	editor := func(h http.HandlerFunc) http.Handler {
		return RequireEditor(auth, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)

	// JSON API
	mux.HandleFunc("GET /books", bookHandler.HandleList)
	mux.HandleFunc("GET /books/{id}", bookHandler.HandleGet)
	mux.Handle("POST /books/add", editor(bookHandler.HandleAdd))
	mux.Handle("PUT /books/edit", editor(bookHandler.HandleEdit))
	mux.Handle("DELETE /books/delete/{id}", editor(bookHandler.HandleDelete))

	// Editor auth
	mux.HandleFunc("POST /auth/token", authHandler.HandleToken)
	mux.HandleFunc("POST /auth/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /auth/logout", authHandler.HandleLogout)

	// Web view
	mux.HandleFunc("GET /", homeHandler.HandleHome)
	mux.Handle("POST /ui/books", editor(homeHandler.HandleAddBook))
	mux.Handle("DELETE /ui/books/{id}", editor(homeHandler.HandleDeleteBook))
}
