package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword bcrypt-hashes an admin password for the admin_users
// collection. The default cost is plenty for a single-operator login.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword returns nil only when password matches the stored
// hash. An empty hash or password never matches.
func ComparePassword(hash, password string) error {
	if hash == "" || password == "" {
		return errors.New("missing hash or password")
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
