// Package auth decides how account passwords are stored and checked.
//
// Two credential policies are available:
//   - "plaintext": passwords are stored as typed and compared directly (default)
//   - "bcrypt": passwords are stored as bcrypt hashes
//
// # Configuration
//
//	AUTH_PASSWORD_POLICY=plaintext   # or bcrypt
//	AUTH_BCRYPT_COST=12              # bcrypt cost factor
//
// Switching an existing database from plaintext to bcrypt makes old accounts
// unable to log in, since their stored values are not hashes.
//
// # Usage
//
//	policy, err := auth.NewPolicy(cfg.Auth)
//	stored, err := policy.Encode(password)
//	err = policy.Verify(attempt, stored)
package auth
