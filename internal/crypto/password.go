package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"smarta/internal/domain"
)

// MinPasswordLength is the shortest accepted login password.
const MinPasswordLength = 8

// HashPassword returns a bcrypt hash of password.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", domain.ErrWeakPassword
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword compares password with a bcrypt hash. A mismatch is
// domain.ErrWrongPassword.
func CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domain.ErrWrongPassword
	}
	return err
}
