package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/msomdec/bookshelf/internal/domain"
)

const (
	maxTitleLength  = 200
	maxAuthorLength = 200
)

// BookService handles book catalogue operations.
type BookService struct {
	books domain.BookRepository
}

// NewBookService creates a new BookService.
func NewBookService(books domain.BookRepository) *BookService {
	return &BookService{books: books}
}

// List returns all books sorted by title and then author.
func (s *BookService) List(ctx context.Context) ([]domain.Book, error) {
	return s.books.List(ctx)
}

// Get returns a single book by ID.
func (s *BookService) Get(ctx context.Context, id int64) (*domain.Book, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", domain.ErrInvalidInput)
	}
	return s.books.GetByID(ctx, id)
}

// Add stores a new book and returns its assigned ID.
func (s *BookService) Add(ctx context.Context, title, author string) (int64, error) {
	book := &domain.Book{
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
	}
	if err := validateBook(book); err != nil {
		return 0, err
	}

	if err := s.books.Create(ctx, book); err != nil {
		return 0, fmt.Errorf("create book: %w", err)
	}
	return book.ID, nil
}

// Update replaces the title and author of an existing book.
func (s *BookService) Update(ctx context.Context, book domain.Book) error {
	if book.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", domain.ErrInvalidInput)
	}
	book.Title = strings.TrimSpace(book.Title)
	book.Author = strings.TrimSpace(book.Author)
	if err := validateBook(&book); err != nil {
		return err
	}

	if err := s.books.Update(ctx, &book); err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

// Delete removes a book by ID.
func (s *BookService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", domain.ErrInvalidInput)
	}
	if err := s.books.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

func validateBook(book *domain.Book) error {
	if book.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(book.Title) > maxTitleLength {
		return fmt.Errorf("%w: title must be %d characters or fewer", domain.ErrInvalidInput, maxTitleLength)
	}
	if utf8.RuneCountInString(book.Author) > maxAuthorLength {
		return fmt.Errorf("%w: author must be %d characters or fewer", domain.ErrInvalidInput, maxAuthorLength)
	}
	return nil
}
