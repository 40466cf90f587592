package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword generates a bcrypt hash for credential storage.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(h), err
}

// ComparePasswordAndHash validates the given cleartext password against
// the stored hash.
func ComparePasswordAndHash(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
