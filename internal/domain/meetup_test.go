package domain

import (
	"testing"
	"time"
)

var clock = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewMeetUp(t *testing.T) {
	initial := clock.Add(24 * time.Hour)
	final := initial.Add(4 * time.Hour)

	meetUp, err := NewMeetUp("Go Meetup", initial, final, 3, clock)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if meetUp.Name != "Go Meetup" {
		t.Errorf("Expected name Go Meetup, got %s", meetUp.Name)
	}
	if !meetUp.Status {
		t.Error("Expected new meetup to be active")
	}
	if meetUp.LocationID != 3 {
		t.Errorf("Expected location id 3, got %d", meetUp.LocationID)
	}

	tests := []struct {
		name        string
		meetUpName  string
		initialDate time.Time
		finalDate   time.Time
		locationID  int64
		wantErr     error
	}{
		{"empty name", "", initial, final, 3, ErrEmptyName},
		{"bad location", "Go Meetup", initial, final, 0, ErrInvalidLocationID},
		{"initial in past", "Go Meetup", clock.Add(-time.Hour), final, 3, ErrInitialDateInPast},
		{"final before initial", "Go Meetup", initial, initial.Add(-time.Minute), 3, ErrFinalBeforeInitial},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMeetUp(tc.meetUpName, tc.initialDate, tc.finalDate, tc.locationID, clock)
			if err != tc.wantErr {
				t.Errorf("Expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestMeetUpValidateAtBoundary(t *testing.T) {
	// A meetup starting exactly now is allowed; Before is strict.
	meetUp := MeetUp{Name: "Go Meetup", InitialDate: clock, FinalDate: clock, LocationID: 1}
	if err := meetUp.ValidateAt(clock); err != nil {
		t.Errorf("Expected no error for meetup starting now, got %v", err)
	}
}

func TestNewEvent(t *testing.T) {
	initial := clock.Add(24 * time.Hour)
	final := initial.Add(time.Hour)

	event, err := NewEvent("Opening talk", "Welcome and agenda", initial, final, 7, clock)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if event.Details != "Welcome and agenda" {
		t.Errorf("Expected details to be kept, got %s", event.Details)
	}
	if !event.Status {
		t.Error("Expected new event to be active")
	}
	if event.MeetUpID != 7 {
		t.Errorf("Expected meetup id 7, got %d", event.MeetUpID)
	}

	tests := []struct {
		name        string
		eventName   string
		initialDate time.Time
		finalDate   time.Time
		meetUpID    int64
		wantErr     error
	}{
		{"empty name", "", initial, final, 7, ErrEmptyName},
		{"bad meetup", "Opening talk", initial, final, -1, ErrInvalidMeetUpID},
		{"initial in past", "Opening talk", clock.Add(-time.Second), final, 7, ErrInitialDateInPast},
		{"final before initial", "Opening talk", initial, initial.Add(-time.Hour), 7, ErrFinalBeforeInitial},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewEvent(tc.eventName, "details", tc.initialDate, tc.finalDate, tc.meetUpID, clock)
			if err != tc.wantErr {
				t.Errorf("Expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}
