// Package validation holds the field rules applied to registration input.
//
// Each rule returns nil or a Problem whose text is the message shown to the
// person typing. The console re-asks for a field until its rule passes.
package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Problem is a failed rule. Its text is user-facing.
type Problem string

func (p Problem) Error() string { return string(p) }

const (
	ErrPasswordLength    Problem = "Password must be between 8 and 24 characters long."
	ErrPasswordUppercase Problem = "Password must contain at least one uppercase letter."
	ErrPasswordDigit     Problem = "Password must contain at least one digit."
	ErrPasswordSpecial   Problem = "Password must contain at least one special character."
	ErrUsername          Problem = "Username must be alphanumeric (letters and numbers only)."
	ErrName              Problem = "Name must be at least 3 characters long and contain only alphabets."
	ErrEmail             Problem = "Email must contain '@' and '.'"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 24
	MinNameLength     = 3

	// SpecialCharacters are the symbols accepted as a password's special character.
	SpecialCharacters = `!@#$%^&*(),.?":{}|<>`
)

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// Password checks length (8 to 24 characters), an uppercase letter A-Z,
// a digit 0-9 and one of SpecialCharacters.
func Password(s string) error {
	n := utf8.RuneCountInString(s)
	if n < MinPasswordLength || n > MaxPasswordLength {
		return ErrPasswordLength
	}
	if !strings.ContainsFunc(s, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return ErrPasswordUppercase
	}
	if !strings.ContainsFunc(s, func(r rune) bool { return r >= '0' && r <= '9' }) {
		return ErrPasswordDigit
	}
	if !strings.ContainsAny(s, SpecialCharacters) {
		return ErrPasswordSpecial
	}
	return nil
}

// Username requires a non-empty run of letters and digits.
func Username(s string) error {
	if s == "" {
		return ErrUsername
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return ErrUsername
		}
	}
	return nil
}

// Name requires at least three letters and nothing else.
func Name(s string) error {
	if utf8.RuneCountInString(s) < MinNameLength {
		return ErrName
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return ErrName
		}
	}
	return nil
}

// Email only checks the local@domain.tld shape.
func Email(s string) error {
	if !emailPattern.MatchString(s) {
		return ErrEmail
	}
	return nil
}

func ValidPassword(s string) bool { return Password(s) == nil }

func ValidUsername(s string) bool { return Username(s) == nil }

func ValidName(s string) bool { return Name(s) == nil }

func ValidEmail(s string) bool { return Email(s) == nil }
