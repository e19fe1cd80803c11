package interfaces

// Compile-time checks that the concrete types satisfy the interfaces the
// services and the audit layer depend on.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/lending-library/internal/audit"
	"github.com/mrlokans/lending-library/internal/auth"
	"github.com/mrlokans/lending-library/internal/database"
	"github.com/mrlokans/lending-library/internal/database/accounts"
	auditRepo "github.com/mrlokans/lending-library/internal/database/audit"
	"github.com/mrlokans/lending-library/internal/database/catalog"
	"github.com/mrlokans/lending-library/internal/database/ledger"
	"github.com/mrlokans/lending-library/internal/database/plans"
	"github.com/mrlokans/lending-library/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ services.AccountStore = (*accounts.Repository)(nil)

var _ services.BookReader = (*catalog.Repository)(nil)
var _ services.CatalogStore = (*catalog.Repository)(nil)

var _ services.PlanStore = (*plans.Repository)(nil)

var _ services.LedgerStore = (*ledger.Repository)(nil)

var _ services.Transactor = (*database.TransactionManager)(nil)

// =============================================================================
// Audit Trail
// =============================================================================

var _ audit.Store = (*auditRepo.Repository)(nil)
var _ services.AuditReader = (*audit.Service)(nil)

// =============================================================================
// Credentials
// =============================================================================

var _ auth.CredentialPolicy = auth.PlaintextPolicy{}
var _ auth.CredentialPolicy = auth.BcryptPolicy{}
