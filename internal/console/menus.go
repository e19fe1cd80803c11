package console

import (
	"context"

	"github.com/mrlokans/lending-library/internal/apperrors"
	"github.com/mrlokans/lending-library/internal/money"
	"github.com/mrlokans/lending-library/internal/services"
)

func (c *Console) customerMenu(ctx context.Context, username string) error {
	return c.menu(ctx, " ----CUSTOMER MENU----", []menuItem{
		{"View Books", func(ctx context.Context) error { return c.show(c.svc.Reports.Books(ctx)) }},
		{"View Authors", func(ctx context.Context) error { return c.show(c.svc.Reports.Authors(ctx)) }},
		{"View Genres", func(ctx context.Context) error { return c.show(c.svc.Reports.Genres(ctx)) }},
		{"Rent Book", func(ctx context.Context) error { return c.rentBook(ctx, username) }},
		{"Subscribe to Plan", func(ctx context.Context) error { return c.subscribePlan(ctx, username) }},
		{"My Checkouts", func(ctx context.Context) error { return c.show(c.svc.Reports.Checkouts(ctx, username)) }},
	}, "Logout", "Logging out...")
}

func (c *Console) adminMenu(ctx context.Context, username string) error {
	return c.menu(ctx, "       ----ADMIN MENU----", []menuItem{
		{"Add Book", func(ctx context.Context) error { return c.addBook(ctx, username) }},
		{"View Books", func(ctx context.Context) error { return c.show(c.svc.Reports.Books(ctx)) }},
		{"Delete Book", func(ctx context.Context) error { return c.deleteBook(ctx, username) }},
		{"View Customer Details", func(ctx context.Context) error { return c.show(c.svc.Reports.Customers(ctx)) }},
		{"View Authors", func(ctx context.Context) error { return c.show(c.svc.Reports.Authors(ctx)) }},
		{"View Genres", func(ctx context.Context) error { return c.show(c.svc.Reports.Genres(ctx)) }},
		{"View Plans", func(ctx context.Context) error { return c.show(c.svc.Reports.Plans(ctx)) }},
		{"Register New Admin", func(ctx context.Context) error { return c.registerAdmin(ctx, username) }},
		{"View Payments", func(ctx context.Context) error { return c.show(c.svc.Reports.Payments(ctx)) }},
		{"Update Book", func(ctx context.Context) error { return c.updateBook(ctx, username) }},
	}, "Logout", "Logging out...")
}

func checkPrice(s string) error {
	if _, err := money.Parse(s); err != nil {
		return apperrors.NewValidationError("Invalid rent price. Enter an amount such as 99 or 99.50.")
	}
	return nil
}

func (c *Console) askPrice(question string) (money.Money, error) {
	answer, err := c.in.AskValid(question, checkPrice)
	if err != nil {
		return 0, err
	}
	return money.Parse(answer)
}

func (c *Console) addBook(ctx context.Context, actor string) error {
	title, err := c.in.AskValid("Enter book title: ", nonEmpty("Title cannot be empty."))
	if err != nil {
		return err
	}
	authorName, err := c.in.AskValid("Enter author name: ", nonEmpty("Author name cannot be empty."))
	if err != nil {
		return err
	}
	genreName, err := c.in.AskValid("Enter genre name: ", nonEmpty("Genre name cannot be empty."))
	if err != nil {
		return err
	}
	price, err := c.askPrice("Enter rent price: ")
	if err != nil {
		return err
	}

	result, err := c.svc.Catalog.AddBook(ctx, actor, services.NewBook{
		Title:      title,
		AuthorName: authorName,
		GenreName:  genreName,
		RentPrice:  price,
	})
	if err != nil {
		return err
	}

	if result.AuthorCreated {
		c.out.Printf("New author added with AuthorID: %d\n", result.Book.AuthorID)
	}
	if result.GenreCreated {
		c.out.Printf("New genre added with GenreID: %d\n", result.Book.GenreID)
	}
	c.out.Println("---->Book added successfully!<----")
	return nil
}

func (c *Console) deleteBook(ctx context.Context, actor string) error {
	if err := c.show(c.svc.Reports.Books(ctx)); err != nil {
		return err
	}

	bookID, err := c.askID("Enter the BookID of the book you want to delete: ")
	if err != nil {
		return err
	}
	if err := c.svc.Catalog.DeleteBook(ctx, actor, bookID); err != nil {
		return err
	}
	c.out.Println("Book deleted successfully!")
	return nil
}

func (c *Console) updateBook(ctx context.Context, actor string) error {
	if err := c.show(c.svc.Reports.Books(ctx)); err != nil {
		return err
	}

	bookID, err := c.askID("Enter the BookID of the book you want to update: ")
	if err != nil {
		return err
	}
	if _, err := c.svc.Catalog.GetBook(ctx, bookID); err != nil {
		return err
	}

	title, err := c.in.AskValid("Enter the new title of the book: ", nonEmpty("Title cannot be empty."))
	if err != nil {
		return err
	}
	price, err := c.askPrice("Enter the new rent price of the book: ")
	if err != nil {
		return err
	}

	if err := c.svc.Catalog.UpdateBook(ctx, actor, bookID, title, price); err != nil {
		return err
	}
	c.out.Println("Book updated successfully!")
	return nil
}
