package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/lending-library/internal/database/dbtest"
	"github.com/mrlokans/lending-library/internal/database/storeerr"
	"github.com/mrlokans/lending-library/internal/entities"
	"github.com/mrlokans/lending-library/internal/money"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB) {
	db := dbtest.New(t)
	return NewRepository(db.DB), db.DB
}

func addBook(t *testing.T, repo *Repository, title, author, genre, price string) *entities.Book {
	t.Helper()
	ctx := context.Background()

	a, _, err := repo.FindOrCreateAuthor(ctx, author)
	require.NoError(t, err)
	g, _, err := repo.FindOrCreateGenre(ctx, genre)
	require.NoError(t, err)

	book := &entities.Book{Title: title, AuthorID: a.ID, GenreID: g.ID, RentPrice: money.MustParse(price)}
	require.NoError(t, repo.CreateBook(ctx, book))
	return book
}

func TestRepository_FindOrCreateAuthor_Idempotent(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	first, created, err := repo.FindOrCreateAuthor(ctx, "Tolkien")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, first.ID)

	second, created, err := repo.FindOrCreateAuthor(ctx, "Tolkien")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	authors, err := repo.ListAuthors(ctx)
	require.NoError(t, err)
	assert.Len(t, authors, 1)
}

func TestRepository_FindOrCreateAuthor_ExactMatch(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	a, _, err := repo.FindOrCreateAuthor(ctx, "Tolkien")
	require.NoError(t, err)
	b, created, err := repo.FindOrCreateAuthor(ctx, "J.R.R. Tolkien")
	require.NoError(t, err)

	assert.True(t, created)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRepository_FindOrCreateGenre_Idempotent(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	first, _, err := repo.FindOrCreateGenre(ctx, "Fantasy")
	require.NoError(t, err)
	second, created, err := repo.FindOrCreateGenre(ctx, "Fantasy")
	require.NoError(t, err)

	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
}

func TestRepository_CreateAndListBooks(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	hobbit := addBook(t, repo, "The Hobbit", "Tolkien", "Fantasy", "100.00")
	addBook(t, repo, "Dune", "Herbert", "Science Fiction", "85.50")
	addBook(t, repo, "Silmarillion", "Tolkien", "Fantasy", "120")

	books, err := repo.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 3)

	assert.Equal(t, hobbit.ID, books[0].ID)
	assert.Equal(t, "The Hobbit", books[0].Title)
	assert.Equal(t, "Tolkien", books[0].Author.Name)
	assert.Equal(t, "Fantasy", books[0].Genre.Name)
	assert.Equal(t, "100.00", books[0].RentPrice.String())
	assert.Equal(t, "85.50", books[1].RentPrice.String())
	assert.Equal(t, books[0].AuthorID, books[2].AuthorID)

	authors, err := repo.ListAuthors(ctx)
	require.NoError(t, err)
	assert.Len(t, authors, 2)
}

func TestRepository_CreateBook_UnknownAuthorRejected(t *testing.T) {
	repo, _ := setupTestDB(t)

	err := repo.CreateBook(context.Background(), &entities.Book{Title: "Orphan", AuthorID: 999, GenreID: 999})

	require.Error(t, err)
	assert.True(t, storeerr.IsForeignKeyViolation(err))
}

func TestRepository_GetBookByID(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()
	created := addBook(t, repo, "Dune", "Herbert", "Science Fiction", "85.50")

	book, err := repo.GetBookByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Herbert", book.Author.Name)

	_, err = repo.GetBookByID(ctx, 4242)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_UpdateBook(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()
	created := addBook(t, repo, "Dune", "Herbert", "Science Fiction", "85.50")

	require.NoError(t, repo.UpdateBook(ctx, created.ID, "Dune Messiah", money.MustParse("90.00")))

	book, err := repo.GetBookByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", book.Title)
	assert.Equal(t, "90.00", book.RentPrice.String())
	assert.Equal(t, created.AuthorID, book.AuthorID, "author is not touched by an update")

	// Same values again is still a success
	require.NoError(t, repo.UpdateBook(ctx, created.ID, "Dune Messiah", money.MustParse("90.00")))

	err = repo.UpdateBook(ctx, 4242, "Nothing", money.MustParse("1"))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_DeleteBook(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()
	created := addBook(t, repo, "Dune", "Herbert", "Science Fiction", "85.50")

	require.NoError(t, repo.DeleteBook(ctx, created.ID))

	count, err := repo.CountBooks(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.ErrorIs(t, repo.DeleteBook(ctx, created.ID), gorm.ErrRecordNotFound)
}

func TestRepository_DeleteBook_ReferencedByCheckoutRejected(t *testing.T) {
	repo, db := setupTestDB(t)
	ctx := context.Background()
	book := addBook(t, repo, "The Hobbit", "Tolkien", "Fantasy", "100.00")

	require.NoError(t, db.Create(&entities.Account{Username: "bilbo", Password: "Secret1!", Role: entities.RoleCustomer}).Error)
	require.NoError(t, db.Create(entities.NewRental("bilbo", book.ID, "", time.Now())).Error)

	err := repo.DeleteBook(ctx, book.ID)

	require.Error(t, err)
	assert.True(t, storeerr.IsForeignKeyViolation(err))

	count, err := repo.CountBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "the referenced book must still exist")
}

func TestRepository_ListEmpty(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	books, err := repo.ListBooks(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)

	genres, err := repo.ListGenres(ctx)
	require.NoError(t, err)
	assert.Empty(t, genres)
}
