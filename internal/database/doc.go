// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup for sqlite, mysql and postgres, plan seeding
//	├── migrate.go       # goose migrations embedded per dialect
//	├── transaction.go   # TransactionManager and GetTxFromContext
//	├── migrations/      # SQL scripts: sqlite3/, mysql/, postgres/
//	├── storeerr/        # Classification of driver errors
//	├── dbtest/          # In-memory SQLite databases for tests
//	├── accounts/        # Customers and admins
//	├── catalog/         # Books, authors and genres
//	├── plans/           # Subscription plans
//	├── ledger/          # Payments and checkouts
//	└── audit/           # Audit events
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase(ctx, cfg.Database, database.Options{SeedPlans: true})
//
//	catalogRepo := catalog.NewRepository(db.DB)
//	ledgerRepo := ledger.NewRepository(db.DB)
//
//	book, err := catalogRepo.GetBookByID(ctx, 1)
//
// # Transactions
//
// Repositories read the transaction from the context, so anything called
// inside TransactionManager.RunInTransaction shares it:
//
//	err := tm.RunInTransaction(ctx, func(ctx context.Context) error {
//		if err := ledgerRepo.CreatePayment(ctx, payment); err != nil {
//			return err
//		}
//		return ledgerRepo.CreateCheckout(ctx, checkout)
//	})
//
// # Interface Implementations
//
//   - accounts.Repository: implements services.AccountStore
//   - catalog.Repository: implements services.CatalogStore
//   - plans.Repository: implements services.PlanStore
//   - ledger.Repository: implements services.LedgerStore
//   - audit.Repository: implements audit.Store
package database
