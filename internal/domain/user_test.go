package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("Ada", "Lovelace", "ada@example.com", 2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.Name != "Ada" {
		t.Errorf("Expected name Ada, got %s", user.Name)
	}
	if user.LastName != "Lovelace" {
		t.Errorf("Expected last name Lovelace, got %s", user.LastName)
	}
	if user.Email != "ada@example.com" {
		t.Errorf("Expected email ada@example.com, got %s", user.Email)
	}
	if !user.Status {
		t.Error("Expected new user to be active")
	}
	if user.RoleID != 2 {
		t.Errorf("Expected role id 2, got %d", user.RoleID)
	}
	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}
	if user.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Invalid inputs
	if _, err := NewUser("", "Lovelace", "ada@example.com", 2); err != ErrEmptyName {
		t.Errorf("Expected error %v, got %v", ErrEmptyName, err)
	}
	if _, err := NewUser("Ada", "Lovelace", "", 2); err != ErrEmptyEmail {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}
	if _, err := NewUser("Ada", "Lovelace", "not-an-email", 2); err != ErrInvalidEmail {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}
	if _, err := NewUser("Ada", "Lovelace", "ada@example.com", 0); err != ErrInvalidRoleID {
		t.Errorf("Expected error %v, got %v", ErrInvalidRoleID, err)
	}
}

func TestUserValidate(t *testing.T) {
	valid := User{
		Name:   "Ada",
		Email:  "ada@example.com",
		RoleID: 1,
	}

	if err := valid.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalid := valid
	invalid.Email = "ada@nodot"
	if err := invalid.Validate(); err != ErrInvalidEmail {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}

	invalid = valid
	invalid.RoleID = -3
	if err := invalid.Validate(); err != ErrInvalidRoleID {
		t.Errorf("Expected error %v, got %v", ErrInvalidRoleID, err)
	}
}

func TestUserJSONHidesPasswordHash(t *testing.T) {
	user := User{
		ID:           1,
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$secret",
		RoleID:       1,
	}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if strings.Contains(string(data), "secret") {
		t.Errorf("Password hash leaked into JSON: %s", data)
	}
}

func TestValidEmailFormat(t *testing.T) {
	cases := map[string]bool{
		"ada@example.com":   true,
		"a@b.co":            true,
		"no-at-sign":        false,
		"@example.com":      false,
		"ada@":              false,
		"ada@nodot":         false,
		"ada@.com":          false,
		"ada@example.":      false,
	}

	for email, want := range cases {
		if got := validEmailFormat(email); got != want {
			t.Errorf("validEmailFormat(%q) = %v, want %v", email, got, want)
		}
	}
}
