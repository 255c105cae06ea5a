// Package auth verifies the single configured operator account that may
// request access tokens.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	dErrors "github.com/NicoBar2/scrapingdarwin/pkg/domain-errors"
)

// ErrInvalidCredentials is returned for any username or password mismatch.
// Callers cannot tell which of the two was wrong.
var ErrInvalidCredentials = dErrors.New(dErrors.CodeUnauthorized, "Credenciales inválidas")

// HashPassword creates a bcrypt hash suitable for AUTH_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", dErrors.New(dErrors.CodeInvalidInput, "password is too long")
		}
		return "", fmt.Errorf("could not hash password: %w", err)
	}
	return string(hashed), nil
}

// Credentials holds the operator username and the bcrypt hash of its password.
type Credentials struct {
	username string
	hash     []byte
}

// NewCredentials builds the verifier from configuration. A plaintext password
// is hashed once at startup; passwordHash wins when both are provided.
func NewCredentials(username, password, passwordHash string) (*Credentials, error) {
	if username == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "username cannot be empty")
	}

	hash := passwordHash
	if hash == "" {
		var err error
		hash, err = HashPassword(password)
		if err != nil {
			return nil, err
		}
	}
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "password hash is not a valid bcrypt hash")
	}

	return &Credentials{username: username, hash: []byte(hash)}, nil
}

// Username returns the configured operator name.
func (c *Credentials) Username() string {
	return c.username
}

// Verify checks username and password. The bcrypt comparison runs even when
// the username is wrong so both failures take the same time.
func (c *Credentials) Verify(username, password string) error {
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1

	err := bcrypt.CompareHashAndPassword(c.hash, []byte(password))
	if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not verify password")
	}
	if err != nil || !userMatch {
		return ErrInvalidCredentials
	}
	return nil
}
