package domain

import (
	"errors"
	"time"
)

// Common validation errors for users and roles.
var (
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrEmptyEmail        = errors.New("email cannot be empty")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrPasswordTooLong   = errors.New("password must be at most 72 characters long")
	ErrInvalidRoleID     = errors.New("role id must be positive")
	ErrInvalidUserID     = errors.New("user id must be positive")
	ErrEmptyPasswordHash = errors.New("password hash cannot be empty")
)

// User represents a registered user of the meetup platform.
// Status is a soft-delete flag: inactive users keep their row but are
// invisible to lookups and cannot authenticate.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose the hash in JSON
	Status       bool      `json:"status"`
	RoleID       int64     `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser creates an unsaved active User. The caller is responsible for
// hashing the password and assigning the hash before the user is stored;
// this constructor validates everything except the hash.
func NewUser(name, lastName, email string, roleID int64) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		Name:      name,
		LastName:  lastName,
		Email:     email,
		Status:    true,
		RoleID:    roleID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks the user's fields. The ID is not checked because new
// users receive their id from the database on insert.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrEmptyName
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}
	if u.RoleID <= 0 {
		return ErrInvalidRoleID
	}
	return nil
}

// Role is a read-mostly reference entity; users point at exactly one role.
type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      bool   `json:"status"`
}

// validEmailFormat performs a minimal structural check: one '@' with a
// dotted domain after it. Full RFC 5322 validation is left to the request
// layer, which uses the validator package's email rule.
func validEmailFormat(email string) bool {
	at := -1
	for i, c := range email {
		if c == '@' {
			at = i
			break
		}
	}
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := -1
	for i, c := range domain {
		if c == '.' {
			dot = i
			break
		}
	}
	return dot > 0 && dot < len(domain)-1
}
