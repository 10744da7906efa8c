package auth

import "golang.org/x/crypto/bcrypt"

// PasswordManager defines one-way hashing and verification of passwords.
type PasswordManager interface {
	// Hash computes a one-way hash of the plaintext password.
	Hash(password string) (string, error)

	// Compare compares a stored hash with a plaintext candidate.
	// Returns nil on match, an error on mismatch.
	Compare(hashedPassword, password string) error
}

// BcryptPasswordManager implements PasswordManager using bcrypt, whose
// comparison is constant-time.
type BcryptPasswordManager struct {
	cost int
}

// NewBcryptPasswordManager creates a BcryptPasswordManager. A cost of 0
// selects bcrypt.DefaultCost.
func NewBcryptPasswordManager(cost int) *BcryptPasswordManager {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordManager{cost: cost}
}

// Hash implements PasswordManager.
func (m *BcryptPasswordManager) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare implements PasswordManager.
func (m *BcryptPasswordManager) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
