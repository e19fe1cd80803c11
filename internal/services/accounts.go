package services

import (
	"context"
	"log/slog"

	"github.com/mrlokans/lending-library/internal/apperrors"
	"github.com/mrlokans/lending-library/internal/audit"
	"github.com/mrlokans/lending-library/internal/auth"
	"github.com/mrlokans/lending-library/internal/database/storeerr"
	"github.com/mrlokans/lending-library/internal/entities"
	"github.com/mrlokans/lending-library/internal/logger"
	"github.com/mrlokans/lending-library/internal/validation"
)

// ErrInvalidCredentials is returned for an unknown username or a wrong
// password. The two cases are not told apart.
var ErrInvalidCredentials = apperrors.NewUnauthorizedError("Invalid username or password.")

// Registration is the form filled in to create an account.
type Registration struct {
	Username  string        `json:"username" validate:"username"`
	Password  string        `json:"password" validate:"password"`
	FirstName string        `json:"first_name" validate:"personname"`
	LastName  string        `json:"last_name" validate:"personname"`
	Email     string        `json:"email" validate:"libemail"`
	Role      entities.Role `json:"role" validate:"required,oneof=admin customer"`
}

// AccountService handles registration and login.
type AccountService struct {
	accounts AccountStore
	policy   auth.CredentialPolicy
	audit    *audit.Service
	log      *slog.Logger
}

func NewAccountService(accounts AccountStore, policy auth.CredentialPolicy, auditor *audit.Service, log *slog.Logger) *AccountService {
	if policy == nil {
		policy = auth.PlaintextPolicy{}
	}
	if log == nil {
		log = logger.Discard()
	}
	return &AccountService{
		accounts: accounts,
		policy:   policy,
		audit:    auditor,
		log:      logger.WithComponent(log, "accounts"),
	}
}

// Register validates the form and stores a new account. actor is the admin
// creating the account, or empty for self registration.
func (s *AccountService) Register(ctx context.Context, actor string, reg Registration) (*entities.Account, error) {
	if actor == "" {
		actor = reg.Username
	}

	account, err := s.register(ctx, reg)
	s.audit.LogRegistration(ctx, actor, reg.Username, reg.Role, err)
	if err != nil {
		return nil, err
	}

	s.log.Info("account registered",
		slog.String("username", account.Username),
		slog.String("role", string(account.Role)))
	return account, nil
}

func (s *AccountService) register(ctx context.Context, reg Registration) (*entities.Account, error) {
	if err := validation.Struct(reg); err != nil {
		return nil, err
	}

	stored, err := s.policy.Encode(reg.Password)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error(), "password")
	}

	account := &entities.Account{
		Username:  reg.Username,
		Password:  stored,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Email:     reg.Email,
		Role:      reg.Role,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if storeerr.IsDuplicate(err) {
			return nil, apperrors.NewConflictError("Username already exists.", "username").WithCause(err)
		}
		return nil, storeerr.Classify(err, "Failed to register account")
	}
	return account, nil
}

// Authenticate returns the account when the password matches.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*entities.Account, error) {
	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if storeerr.IsNotFound(err) {
			s.audit.LogAuth(ctx, username, "login", false)
			return nil, ErrInvalidCredentials
		}
		return nil, storeerr.Classify(err, "Failed to look up account")
	}

	if err := s.policy.Verify(password, account.Password); err != nil {
		s.audit.LogAuth(ctx, username, "login", false)
		return nil, ErrInvalidCredentials
	}

	s.audit.LogAuth(ctx, username, "login", true)
	s.log.Debug("login", slog.String("username", username), slog.String("role", string(account.Role)))
	return account, nil
}

// Logout only leaves a trace in the audit trail; there is no session state.
func (s *AccountService) Logout(ctx context.Context, username string) {
	s.audit.LogAuth(ctx, username, "logout", true)
}

func (s *AccountService) ListCustomers(ctx context.Context) ([]entities.Account, error) {
	customers, err := s.accounts.ListByRole(ctx, entities.RoleCustomer)
	if err != nil {
		return nil, storeerr.Classify(err, "Failed to list customers")
	}
	return customers, nil
}

// HasAdmin reports whether any admin account exists.
func (s *AccountService) HasAdmin(ctx context.Context) (bool, error) {
	n, err := s.accounts.CountByRole(ctx, entities.RoleAdmin)
	if err != nil {
		return false, storeerr.Classify(err, "Failed to count admins")
	}
	return n > 0, nil
}
