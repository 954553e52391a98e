package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/bookshelf/internal/domain"
	"github.com/msomdec/bookshelf/internal/repository/sqlite"
)

func TestBookRepository_List_Seeded(t *testing.T) {
	db := newTestDB(t)
	repo := db.Books()

	books, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}
	if books[0].Title != "Hands-on Rust" || books[1].Title != "Rust Brain Teasers" {
		t.Fatalf("unexpected order: %+v", books)
	}
}

func TestBookRepository_List_OrderedByTitleThenAuthor(t *testing.T) {
	db := newTestDB(t)
	repo := db.Books()
	ctx := context.Background()

	for _, b := range []domain.Book{
		{Title: "Zebra", Author: "A"},
		{Title: "Alpha", Author: "B"},
		{Title: "Alpha", Author: "A"},
	} {
		if err := repo.Create(ctx, &b); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	books, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []struct{ title, author string }{
		{"Alpha", "A"},
		{"Alpha", "B"},
		{"Hands-on Rust", "Wolverson, Herbert"},
		{"Rust Brain Teasers", "Wolverson, Herbert"},
		{"Zebra", "A"},
	}
	if len(books) != len(want) {
		t.Fatalf("expected %d books, got %d", len(want), len(books))
	}
	for i, w := range want {
		if books[i].Title != w.title || books[i].Author != w.author {
			t.Fatalf("position %d: expected %s/%s, got %s/%s", i, w.title, w.author, books[i].Title, books[i].Author)
		}
	}
}

func TestBookRepository_List_Empty(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := db.SqlDB.ExecContext(ctx, "DELETE FROM books"); err != nil {
		t.Fatalf("clear books: %v", err)
	}

	books, err := db.Books().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if books == nil || len(books) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", books)
	}
}

func TestBookRepository_GetByID(t *testing.T) {
	db := newTestDB(t)

	book, err := db.Books().GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if book.ID != 1 || book.Title != "Hands-on Rust" || book.Author != "Wolverson, Herbert" {
		t.Fatalf("unexpected book: %+v", book)
	}
}

func TestBookRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Books().GetByID(context.Background(), 9999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBookRepository_GetByID_NullColumns(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	result, err := db.SqlDB.ExecContext(ctx, "INSERT INTO books (title, author) VALUES (NULL, NULL)")
	if err != nil {
		t.Fatalf("insert null row: %v", err)
	}
	id, _ := result.LastInsertId()

	book, err := db.Books().GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if book.Title != "" || book.Author != "" {
		t.Fatalf("expected empty strings for NULL columns, got %+v", book)
	}
}

func TestBookRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewBookRepository(db)
	ctx := context.Background()

	book := &domain.Book{Title: "Test Book", Author: "Test Author"}
	if err := repo.Create(ctx, book); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if book.ID != 3 {
		t.Fatalf("expected ID 3 after two seed rows, got %d", book.ID)
	}

	got, err := repo.GetByID(ctx, book.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Test Book" || got.Author != "Test Author" {
		t.Fatalf("unexpected book: %+v", got)
	}
}

func TestBookRepository_IDsNeverReused(t *testing.T) {
	db := newTestDB(t)
	repo := db.Books()
	ctx := context.Background()

	first := &domain.Book{Title: "Delete Me", Author: "Author"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	second := &domain.Book{Title: "After", Author: "Author"}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if second.ID <= first.ID {
		t.Fatalf("expected id greater than %d, got %d", first.ID, second.ID)
	}
}

func TestBookRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := db.Books()
	ctx := context.Background()

	book, err := repo.GetByID(ctx, 2)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	book.Title = "Updated Book"
	if err := repo.Update(ctx, book); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(ctx, 2)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Updated Book" {
		t.Fatalf("expected title 'Updated Book', got %q", got.Title)
	}
	if got.Author != "Wolverson, Herbert" {
		t.Fatalf("expected author unchanged, got %q", got.Author)
	}
}

func TestBookRepository_Update_NotFound(t *testing.T) {
	db := newTestDB(t)

	err := db.Books().Update(context.Background(), &domain.Book{ID: 9999, Title: "x"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBookRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := db.Books()
	ctx := context.Background()

	book := &domain.Book{Title: "DeleteMe", Author: "Test Author"}
	if err := repo.Create(ctx, book); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, book.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err := repo.GetByID(ctx, book.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestBookRepository_Delete_NotFound(t *testing.T) {
	db := newTestDB(t)

	err := db.Books().Delete(context.Background(), 9999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
