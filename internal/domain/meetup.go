package domain

import (
	"errors"
	"time"
)

// Meetup and event validation errors.
var (
	ErrInvalidLocationID  = errors.New("location id must be positive")
	ErrInvalidMeetUpID    = errors.New("meetup id must be positive")
	ErrInitialDateInPast  = errors.New("initial date cannot be in the past")
	ErrFinalBeforeInitial = errors.New("final date cannot precede the initial date")
)

// MeetUp is a scheduled gathering at a location. Status is a soft-delete
// flag, mirroring User.Status.
type MeetUp struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	InitialDate time.Time `json:"initial_date"`
	FinalDate   time.Time `json:"final_date"`
	Status      bool      `json:"status"`
	LocationID  int64     `json:"location_id"`
}

// NewMeetUp creates an unsaved active meetup. Date sanity is checked
// against the supplied clock so tests can pin time.
func NewMeetUp(name string, initialDate, finalDate time.Time, locationID int64, now time.Time) (*MeetUp, error) {
	m := &MeetUp{
		Name:        name,
		InitialDate: initialDate,
		FinalDate:   finalDate,
		Status:      true,
		LocationID:  locationID,
	}
	if err := m.ValidateAt(now); err != nil {
		return nil, err
	}
	return m, nil
}

// ValidateAt checks the meetup's fields relative to the given instant.
func (m *MeetUp) ValidateAt(now time.Time) error {
	if m.Name == "" {
		return ErrEmptyName
	}
	if m.LocationID <= 0 {
		return ErrInvalidLocationID
	}
	if m.InitialDate.Before(now) {
		return ErrInitialDateInPast
	}
	if m.FinalDate.Before(m.InitialDate) {
		return ErrFinalBeforeInitial
	}
	return nil
}

// Event is a single agenda item within a meetup.
type Event struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	InitialDate time.Time `json:"initial_date"`
	FinalDate   time.Time `json:"final_date"`
	Details     string    `json:"details"`
	Status      bool      `json:"status"`
	MeetUpID    int64     `json:"meetup_id"`
}

// NewEvent creates an unsaved active event.
func NewEvent(name, details string, initialDate, finalDate time.Time, meetUpID int64, now time.Time) (*Event, error) {
	e := &Event{
		Name:        name,
		InitialDate: initialDate,
		FinalDate:   finalDate,
		Details:     details,
		Status:      true,
		MeetUpID:    meetUpID,
	}
	if err := e.ValidateAt(now); err != nil {
		return nil, err
	}
	return e, nil
}

// ValidateAt checks the event's fields relative to the given instant.
func (e *Event) ValidateAt(now time.Time) error {
	if e.Name == "" {
		return ErrEmptyName
	}
	if e.MeetUpID <= 0 {
		return ErrInvalidMeetUpID
	}
	if e.InitialDate.Before(now) {
		return ErrInitialDateInPast
	}
	if e.FinalDate.Before(e.InitialDate) {
		return ErrFinalBeforeInitial
	}
	return nil
}

// MeetUpOwner links a user to a meetup they organize.
type MeetUpOwner struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	MeetUpID  int64     `json:"meetup_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MeetUpAttendee records a user's reservation for a meetup. Status false
// means the reservation was cancelled.
type MeetUpAttendee struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	MeetUpID   int64     `json:"meetup_id"`
	ReservedAt time.Time `json:"reserved_at"`
	Status     bool      `json:"status"`
}
