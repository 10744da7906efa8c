package api

import (
	"time"

	"github.com/meetuphub/meetup-api/internal/domain"
)

// Request and response shapes for every endpoint. Conversions between
// these DTOs and domain entities are hand-written below; there is no
// reflection-based mapping anywhere.

// RegisterUserRequest is the payload for user registration.
type RegisterUserRequest struct {
	Name     string `json:"name"      validate:"required"`
	LastName string `json:"last_name"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=6,max=72"`
	RoleID   int64  `json:"role_id"   validate:"required,gt=0"`
}

// UpdateUserRequest is the payload for profile updates.
type UpdateUserRequest struct {
	Name     string `json:"name"      validate:"required"`
	LastName string `json:"last_name"`
	Status   bool   `json:"status"`
	RoleID   int64  `json:"role_id"   validate:"required,gt=0"`
}

// LoginRequest is the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdatePasswordRequest is the payload for the password change endpoint.
type UpdatePasswordRequest struct {
	Email        string `json:"email"         validate:"required,email"`
	Password     string `json:"password"      validate:"required,min=6,max=72"`
	LastPassword string `json:"last_password" validate:"required"`
}

// UserResponse is the public projection of a user. It never carries the
// password hash.
type UserResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
	Status   bool   `json:"status"`
	RoleID   int64  `json:"role_id"`
}

// NewUserResponse converts a domain user to its public projection.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		LastName: u.LastName,
		Email:    u.Email,
		Status:   u.Status,
		RoleID:   u.RoleID,
	}
}

// TokenResponse is the successful login payload.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// AddCountryRequest is the payload for country registration.
type AddCountryRequest struct {
	Name string `json:"name" validate:"required"`
}

// AddCityRequest is the payload for city registration.
type AddCityRequest struct {
	Name      string `json:"name"       validate:"required"`
	CountryID int64  `json:"country_id" validate:"required,gt=0"`
}

// AddLocationRequest is the payload for venue creation.
type AddLocationRequest struct {
	Name     string `json:"name"     validate:"required"`
	Address  string `json:"address"  validate:"required"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
	CityID   int64  `json:"city_id"  validate:"required,gt=0"`
}

// UpdateLocationRequest is the payload for venue updates.
type UpdateLocationRequest struct {
	Name     string `json:"name"     validate:"required"`
	Address  string `json:"address"  validate:"required"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
	CityID   int64  `json:"city_id"  validate:"required,gt=0"`
}

// AddMeetUpRequest is the payload for meetup creation.
type AddMeetUpRequest struct {
	Name        string    `json:"name"         validate:"required"`
	InitialDate time.Time `json:"initial_date" validate:"required"`
	FinalDate   time.Time `json:"final_date"   validate:"required"`
	LocationID  int64     `json:"location_id"  validate:"required,gt=0"`
}

// UpdateMeetUpRequest is the payload for meetup updates.
type UpdateMeetUpRequest struct {
	Name        string    `json:"name"         validate:"required"`
	InitialDate time.Time `json:"initial_date" validate:"required"`
	FinalDate   time.Time `json:"final_date"   validate:"required"`
	LocationID  int64     `json:"location_id"  validate:"required,gt=0"`
}

// AddEventRequest is the payload for event creation.
type AddEventRequest struct {
	Name        string    `json:"name"         validate:"required"`
	InitialDate time.Time `json:"initial_date" validate:"required"`
	FinalDate   time.Time `json:"final_date"   validate:"required"`
	Details     string    `json:"details"`
	MeetUpID    int64     `json:"meetup_id"    validate:"required,gt=0"`
}

// UpdateEventRequest is the payload for event updates.
type UpdateEventRequest struct {
	Name        string    `json:"name"         validate:"required"`
	InitialDate time.Time `json:"initial_date" validate:"required"`
	FinalDate   time.Time `json:"final_date"   validate:"required"`
	Details     string    `json:"details"`
	MeetUpID    int64     `json:"meetup_id"    validate:"required,gt=0"`
}

// AttendanceRequest links a user to a meetup, either as owner or attendee.
type AttendanceRequest struct {
	UserID   int64 `json:"user_id"   validate:"required,gt=0"`
	MeetUpID int64 `json:"meetup_id" validate:"required,gt=0"`
}
