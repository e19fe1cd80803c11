package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mrlokans/lending-library/internal/config"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrPasswordTooLong = errors.New("password exceeds maximum length of 72 bytes")
)

// CredentialPolicy decides how a password is stored and how a login attempt
// is checked against the stored value.
type CredentialPolicy interface {
	Encode(password string) (string, error)
	Verify(password, stored string) error
}

// PlaintextPolicy stores passwords as typed. Login succeeds when the stored
// text equals the submitted text.
type PlaintextPolicy struct{}

func (PlaintextPolicy) Encode(password string) (string, error) {
	return password, nil
}

func (PlaintextPolicy) Verify(password, stored string) error {
	if subtle.ConstantTimeCompare([]byte(password), []byte(stored)) != 1 {
		return ErrInvalidPassword
	}
	return nil
}

// BcryptPolicy stores bcrypt hashes.
type BcryptPolicy struct {
	Cost int
}

func (p BcryptPolicy) Encode(password string) (string, error) {
	cost := p.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return HashPassword(password, cost)
}

func (BcryptPolicy) Verify(password, stored string) error {
	return CheckPassword(password, stored)
}

// NewPolicy returns the policy selected in configuration.
func NewPolicy(cfg config.Auth) (CredentialPolicy, error) {
	switch cfg.PasswordPolicy {
	case config.PasswordPolicyPlaintext, "":
		return PlaintextPolicy{}, nil
	case config.PasswordPolicyBcrypt:
		return BcryptPolicy{Cost: cfg.BcryptCost}, nil
	default:
		return nil, fmt.Errorf("unknown password policy %q", cfg.PasswordPolicy)
	}
}

// HashPassword creates a bcrypt hash of the password.
func HashPassword(password string, cost int) (string, error) {
	// bcrypt has a 72-byte limit
	if len(password) > 72 {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a password with its hash.
func CheckPassword(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}
		return err
	}
	return nil
}
