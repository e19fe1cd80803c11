// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
// Defined in internal/services/interfaces.go, implemented by the
// repositories under internal/database:
//
//   - AccountStore: accounts and roles (database/accounts)
//   - BookReader: read-only catalog access used by checkouts and reports
//   - CatalogStore: books, authors and genres (database/catalog)
//   - PlanStore: subscription plans (database/plans)
//   - LedgerStore: payments and checkouts (database/ledger)
//   - Transactor: runs a function inside one database transaction
//
// ## Audit Interfaces
//
//   - audit.Store: persistence for audit events (database/audit)
//   - AuditReader: the audit trail as seen by reports (audit.Service)
//
// ## Credential Interfaces
//
//   - auth.CredentialPolicy: how passwords are stored and compared
//     (PlaintextPolicy or BcryptPolicy, chosen by auth_password_policy)
//
// ## Console Interfaces
//
//   - services.CheckoutInteraction: the questions asked during a checkout.
//     The console answers them from the terminal, tests answer from a script.
//
// # Adding a New Database Domain
//
//  1. Create sub-package: internal/database/fines/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Use database.GetTxFromContext(ctx, r.db) in every method so the
//     repository joins a transaction started by the Transactor.
//
//  4. Add a migration script for every dialect in internal/database/migrations.
//
//  5. Add compile-time check to checks.go:
//
//     var _ services.FineStore = (*fines.Repository)(nil)
//
// # Compile-Time Interface Checks
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces
