// Package catalog provides database operations for books, authors and genres.
//
// # Usage
//
//	repo := catalog.NewRepository(db)
//	author, created, err := repo.FindOrCreateAuthor(ctx, "Tolkien")
package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/lending-library/internal/database"
	"github.com/mrlokans/lending-library/internal/entities"
	"github.com/mrlokans/lending-library/internal/money"
)

// Repository handles all catalog database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) conn(ctx context.Context) *gorm.DB {
	return database.GetTxFromContext(ctx, r.db)
}

// FindOrCreateAuthor looks an author up by exact name and inserts it when
// missing. The lookup and insert are separate statements, so two writers
// racing on the same new name can both insert.
func (r *Repository) FindOrCreateAuthor(ctx context.Context, name string) (*entities.Author, bool, error) {
	var author entities.Author
	err := r.conn(ctx).Where("name = ?", name).Order("id").First(&author).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		author = entities.Author{Name: name}
		if err := r.conn(ctx).Create(&author).Error; err != nil {
			return nil, false, err
		}
		return &author, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &author, false, nil
}

// FindOrCreateGenre behaves like FindOrCreateAuthor for genres.
func (r *Repository) FindOrCreateGenre(ctx context.Context, name string) (*entities.Genre, bool, error) {
	var genre entities.Genre
	err := r.conn(ctx).Where("name = ?", name).Order("id").First(&genre).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		genre = entities.Genre{Name: name}
		if err := r.conn(ctx).Create(&genre).Error; err != nil {
			return nil, false, err
		}
		return &genre, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &genre, false, nil
}

// CreateBook inserts a book whose AuthorID and GenreID are already resolved.
func (r *Repository) CreateBook(ctx context.Context, book *entities.Book) error {
	return r.conn(ctx).Omit(clause.Associations).Create(book).Error
}

// GetBookByID returns the book with its author and genre.
func (r *Repository) GetBookByID(ctx context.Context, id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.conn(ctx).Joins("Author").Joins("Genre").First(&book, "books.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// ListBooks returns every book joined with its author and genre, in id order.
func (r *Repository) ListBooks(ctx context.Context) ([]entities.Book, error) {
	var books []entities.Book
	err := r.conn(ctx).Joins("Author").Joins("Genre").Order("books.id").Find(&books).Error
	return books, err
}

// UpdateBook overwrites the title and rent price. It returns
// gorm.ErrRecordNotFound when no book has the id.
func (r *Repository) UpdateBook(ctx context.Context, id uint, title string, rentPrice money.Money) error {
	result := r.conn(ctx).Model(&entities.Book{}).Where("id = ?", id).Updates(map[string]any{
		"title":      title,
		"rent_price": rentPrice,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// MySQL reports zero affected rows when the values did not change.
		var count int64
		if err := r.conn(ctx).Model(&entities.Book{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

// DeleteBook removes a book by id. Deleting a book some checkout references
// fails with a foreign key violation and leaves the row in place.
func (r *Repository) DeleteBook(ctx context.Context, id uint) error {
	result := r.conn(ctx).Delete(&entities.Book{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) ListAuthors(ctx context.Context) ([]entities.Author, error) {
	var authors []entities.Author
	err := r.conn(ctx).Order("id").Find(&authors).Error
	return authors, err
}

func (r *Repository) ListGenres(ctx context.Context) ([]entities.Genre, error) {
	var genres []entities.Genre
	err := r.conn(ctx).Order("id").Find(&genres).Error
	return genres, err
}

func (r *Repository) CountBooks(ctx context.Context) (int64, error) {
	var count int64
	err := r.conn(ctx).Model(&entities.Book{}).Count(&count).Error
	return count, err
}
