package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mrlokans/lending-library/internal/apperrors"
	"github.com/mrlokans/lending-library/internal/audit"
	"github.com/mrlokans/lending-library/internal/database/storeerr"
	"github.com/mrlokans/lending-library/internal/entities"
	"github.com/mrlokans/lending-library/internal/logger"
	"github.com/mrlokans/lending-library/internal/money"
)

// NewBook is what an admin enters to add a book.
type NewBook struct {
	Title      string
	AuthorName string
	GenreName  string
	RentPrice  money.Money
}

// AddBookResult tells the caller which references had to be created.
type AddBookResult struct {
	Book          *entities.Book
	AuthorCreated bool
	GenreCreated  bool
}

// CatalogService manages books and their authors and genres.
type CatalogService struct {
	catalog CatalogStore
	audit   *audit.Service
	log     *slog.Logger
}

func NewCatalogService(catalog CatalogStore, auditor *audit.Service, log *slog.Logger) *CatalogService {
	if log == nil {
		log = logger.Discard()
	}
	return &CatalogService{
		catalog: catalog,
		audit:   auditor,
		log:     logger.WithComponent(log, "catalog"),
	}
}

func requireText(value, field, message string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", apperrors.NewValidationError(message, field)
	}
	return value, nil
}

// AddBook resolves the author and genre by name, creating them when missing,
// then inserts the book.
func (s *CatalogService) AddBook(ctx context.Context, actor string, in NewBook) (*AddBookResult, error) {
	result, err := s.addBook(ctx, in)

	var bookID uint
	if result != nil {
		bookID = result.Book.ID
	}
	s.audit.LogCatalog(ctx, actor, "book_add", "Added book: "+in.Title, bookID, err)
	return result, err
}

func (s *CatalogService) addBook(ctx context.Context, in NewBook) (*AddBookResult, error) {
	title, err := requireText(in.Title, "title", "Title cannot be empty.")
	if err != nil {
		return nil, err
	}
	authorName, err := requireText(in.AuthorName, "author", "Author name cannot be empty.")
	if err != nil {
		return nil, err
	}
	genreName, err := requireText(in.GenreName, "genre", "Genre name cannot be empty.")
	if err != nil {
		return nil, err
	}

	author, authorCreated, err := s.catalog.FindOrCreateAuthor(ctx, authorName)
	if err != nil {
		return nil, storeerr.Classify(err, "Failed to resolve author")
	}
	if authorCreated {
		s.log.Info("author created", slog.Uint64("author_id", uint64(author.ID)), slog.String("name", author.Name))
	}

	genre, genreCreated, err := s.catalog.FindOrCreateGenre(ctx, genreName)
	if err != nil {
		return nil, storeerr.Classify(err, "Failed to resolve genre")
	}
	if genreCreated {
		s.log.Info("genre created", slog.Uint64("genre_id", uint64(genre.ID)), slog.String("name", genre.Name))
	}

	book := &entities.Book{
		Title:     title,
		AuthorID:  author.ID,
		Author:    *author,
		GenreID:   genre.ID,
		Genre:     *genre,
		RentPrice: in.RentPrice,
	}
	if err := s.catalog.CreateBook(ctx, book); err != nil {
		return nil, storeerr.Classify(err, "Failed to add book")
	}

	return &AddBookResult{Book: book, AuthorCreated: authorCreated, GenreCreated: genreCreated}, nil
}

// UpdateBook overwrites the title and rent price of a book.
func (s *CatalogService) UpdateBook(ctx context.Context, actor string, id uint, title string, rentPrice money.Money) error {
	err := s.updateBook(ctx, id, title, rentPrice)
	s.audit.LogCatalog(ctx, actor, "book_update", fmt.Sprintf("Updated book %d: %s", id, title), id, err)
	return err
}

func (s *CatalogService) updateBook(ctx context.Context, id uint, title string, rentPrice money.Money) error {
	title, err := requireText(title, "title", "Title cannot be empty.")
	if err != nil {
		return err
	}
	if err := s.catalog.UpdateBook(ctx, id, title, rentPrice); err != nil {
		if storeerr.IsNotFound(err) {
			return bookNotFound(id)
		}
		return storeerr.Classify(err, "Failed to update book")
	}
	return nil
}

// DeleteBook removes a book. A book referenced by a checkout cannot be
// deleted and the store error is returned.
func (s *CatalogService) DeleteBook(ctx context.Context, actor string, id uint) error {
	err := s.catalog.DeleteBook(ctx, id)
	if err != nil {
		if storeerr.IsNotFound(err) {
			err = bookNotFound(id)
		} else {
			err = storeerr.Classify(err, "Failed to delete book")
		}
	}
	s.audit.LogCatalog(ctx, actor, "book_delete", fmt.Sprintf("Deleted book %d", id), id, err)
	return err
}

func (s *CatalogService) GetBook(ctx context.Context, id uint) (*entities.Book, error) {
	book, err := s.catalog.GetBookByID(ctx, id)
	if err != nil {
		if storeerr.IsNotFound(err) {
			return nil, bookNotFound(id)
		}
		return nil, storeerr.Classify(err, "Failed to load book")
	}
	return book, nil
}

func (s *CatalogService) ListBooks(ctx context.Context) ([]entities.Book, error) {
	books, err := s.catalog.ListBooks(ctx)
	return books, storeerr.Classify(err, "Failed to list books")
}

func (s *CatalogService) ListAuthors(ctx context.Context) ([]entities.Author, error) {
	authors, err := s.catalog.ListAuthors(ctx)
	return authors, storeerr.Classify(err, "Failed to list authors")
}

func (s *CatalogService) ListGenres(ctx context.Context) ([]entities.Genre, error) {
	genres, err := s.catalog.ListGenres(ctx)
	return genres, storeerr.Classify(err, "Failed to list genres")
}

func bookNotFound(id uint) error {
	return apperrors.NewNotFoundError(fmt.Sprintf("Book with ID %d not found.", id), "book_id")
}
