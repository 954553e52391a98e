package handler

import (
	"github.com/msomdec/bookshelf/internal/domain"
)

// BookDTO is the JSON representation of a book.
type BookDTO struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

func toBookDTO(b *domain.Book) BookDTO {
	return BookDTO{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
	}
}

func toBookDTOs(books []domain.Book) []BookDTO {
	dtos := make([]BookDTO, len(books))
	for i := range books {
		dtos[i] = toBookDTO(&books[i])
	}
	return dtos
}

func (d BookDTO) toDomain() domain.Book {
	return domain.Book{ID: d.ID, Title: d.Title, Author: d.Author}
}
