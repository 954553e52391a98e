package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/bookshelf/internal/domain"
)

// BookRepository implements domain.BookRepository using SQLite.
type BookRepository struct {
	db *sql.DB
}

// NewBookRepository creates a new SQLite-backed BookRepository.
func NewBookRepository(db *DB) *BookRepository {
	return &BookRepository{db: db.SqlDB}
}

// List returns every book ordered by title, then author.
func (r *BookRepository) List(ctx context.Context) ([]domain.Book, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, author FROM books ORDER BY title, author`)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *BookRepository) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	var title, author sql.NullString
	b := &domain.Book{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, author FROM books WHERE id = ?`, id,
	).Scan(&b.ID, &title, &author)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get book by id: %w", err)
	}
	b.Title = title.String
	b.Author = author.String
	return b, nil
}

func (r *BookRepository) Create(ctx context.Context, book *domain.Book) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO books (title, author) VALUES (?, ?)`,
		book.Title, book.Author,
	)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	book.ID = id
	return nil
}

func (r *BookRepository) Update(ctx context.Context, book *domain.Book) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE books SET title = ?, author = ? WHERE id = ?`,
		book.Title, book.Author, book.ID,
	)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM books WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanBooks reads id, title, author rows. NULL text columns become empty strings.
func scanBooks(rows *sql.Rows) ([]domain.Book, error) {
	books := []domain.Book{}
	for rows.Next() {
		var (
			b             domain.Book
			title, author sql.NullString
		)
		if err := rows.Scan(&b.ID, &title, &author); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		b.Title = title.String
		b.Author = author.String
		books = append(books, b)
	}
	return books, rows.Err()
}
