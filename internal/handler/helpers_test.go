package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/msomdec/bookshelf/internal/handler"
	"github.com/msomdec/bookshelf/internal/repository/sqlite"
	"github.com/msomdec/bookshelf/internal/service"
)

const (
	testJWTSecret      = "test-secret-for-handler-tests-0123456789"
	testEditorPassword = "correct horse"
)

func newTestBookService(t *testing.T) *service.BookService {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return service.NewBookService(db.Books())
}

func newTestEditorAuth(t *testing.T, enabled bool) *service.EditorAuth {
	t.Helper()
	if !enabled {
		return service.NewEditorAuth("", "")
	}
	hash, err := service.HashPassword(testEditorPassword, 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return service.NewEditorAuth(hash, testJWTSecret)
}

func newTestMux(t *testing.T, authEnabled bool) (*http.ServeMux, *service.EditorAuth) {
	t.Helper()
	books := newTestBookService(t)
	auth := newTestEditorAuth(t, authEnabled)
	limiter := service.NewTokenBucket(t.Context(), 0.01, 5)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, books, auth, limiter, false)
	return mux, auth
}

func newTestServer(t *testing.T, authEnabled bool) *httptest.Server {
	t.Helper()
	mux, _ := newTestMux(t, authEnabled)
	srv := httptest.NewServer(handler.SecurityHeaders(mux))
	t.Cleanup(srv.Close)
	return srv
}
