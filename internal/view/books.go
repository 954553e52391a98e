package view

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/msomdec/bookshelf/internal/domain"
)

// Element IDs shared between the page and the datastar fragments.
const (
	BookRowsID    = "book-rows"
	AddBookFormID = "add-book-form"
)

// BookRowID returns the element ID of a book's table row.
func BookRowID(id int64) string {
	return "book-" + strconv.FormatInt(id, 10)
}

// IndexPage renders the catalogue page. canEdit controls whether the add form
// and delete buttons are shown; showLogin adds the editor login form.
func IndexPage(books []domain.Book, canEdit, showLogin bool) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Books</h1>`); err != nil {
			return err
		}
		if showLogin {
			if err := LoginForm("").Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<table><thead><tr><th>ID</th><th>Title</th><th>Author</th>`); err != nil {
			return err
		}
		if canEdit {
			if _, err := io.WriteString(w, `<th></th>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tr></thead>`); err != nil {
			return err
		}
		if err := BookRows(books, canEdit).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</table>`); err != nil {
			return err
		}
		if canEdit {
			return AddBookForm("").Render(ctx, w)
		}
		return nil
	})
	return Layout("Books", body)
}

// BookRows renders the table body holding every book.
func BookRows(books []domain.Book, canEdit bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<tbody id="%s">`, BookRowsID); err != nil {
			return err
		}
		for _, b := range books {
			if err := BookRow(b, canEdit).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody>`)
		return err
	})
}

// BookRow renders a single book row.
func BookRow(b domain.Book, canEdit bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<tr id="%s"><td>%d</td><td>%s</td><td>%s</td>`,
			BookRowID(b.ID), b.ID, templ.EscapeString(b.Title), templ.EscapeString(b.Author)); err != nil {
			return err
		}
		if canEdit {
			if _, err := fmt.Fprintf(w,
				`<td><button type="button" data-on:click="@delete('/ui/books/%d')">Delete</button></td>`, b.ID); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tr>`)
		return err
	})
}

// AddBookForm renders the add-book form bound to the title and author signals.
func AddBookForm(errMsg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<form id="%s" data-signals="{title: '', author: ''}" data-on:submit__prevent="@post('/ui/books')">`,
			AddBookFormID); err != nil {
			return err
		}
		if errMsg != "" {
			if _, err := fmt.Fprintf(w, `<p class="error" role="alert">%s</p>`, templ.EscapeString(errMsg)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w,
			`<label>Title <input name="title" data-bind:title required></label>`+
				`<label>Author <input name="author" data-bind:author></label>`+
				`<button type="submit">Add book</button></form>`)
		return err
	})
}

// LoginForm renders the editor login form.
func LoginForm(errMsg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<form id="login-form" method="post" action="/auth/login">`); err != nil {
			return err
		}
		if errMsg != "" {
			if _, err := fmt.Fprintf(w, `<p class="error" role="alert">%s</p>`, templ.EscapeString(errMsg)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w,
			`<label>Editor password <input type="password" name="password" required></label>`+
				`<button type="submit">Sign in</button></form>`)
		return err
	})
}
