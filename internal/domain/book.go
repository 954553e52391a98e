package domain

import "context"

// Book is a row of the books table.
type Book struct {
	ID     int64
	Title  string
	Author string // "Surname, Forename" by convention, not enforced
}

// BookRepository defines persistence operations for books.
type BookRepository interface {
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id int64) (*Book, error)
	Create(ctx context.Context, book *Book) error
	Update(ctx context.Context, book *Book) error
	Delete(ctx context.Context, id int64) error
}
