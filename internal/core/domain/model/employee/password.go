package employee

import (
	"dispatch/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// Password is a bcrypt hash. The plain text never leaves NewPassword.
type Password struct {
	hash string
}

var ErrPasswordIsRequired = errs.NewValueIsRequiredError("password")

// NewPassword hashes a plain text password with bcrypt's default cost.
func NewPassword(plain string) (Password, error) {
	if plain == "" {
		return Password{}, ErrPasswordIsRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return Password{}, errs.NewValueIsInvalidErrorWithCause("password", err)
	}

	return Password{hash: string(hash)}, nil
}

// RestorePassword wraps a hash read from storage.
func RestorePassword(hash string) (Password, error) {
	if hash == "" {
		return Password{}, ErrPasswordIsRequired
	}
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return Password{}, errs.NewValueIsInvalidErrorWithCause("password hash", err)
	}
	return Password{hash: hash}, nil
}

// Hash returns the stored form.
func (p Password) Hash() string {
	return p.hash
}

// Matches reports whether plain is the password.
func (p Password) Matches(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.hash), []byte(plain)) == nil
}
