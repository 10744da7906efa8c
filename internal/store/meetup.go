package store

import (
	"context"
	"time"

	"github.com/meetuphub/meetup-api/internal/domain"
)

// MeetUpStore defines persistence for meetups, their events, and the
// owner/attendee links. Reads only return active (status=true) rows;
// deletes are soft.
type MeetUpStore interface {
	// Meetups.
	CreateMeetUp(ctx context.Context, meetUp *domain.MeetUp) error
	GetMeetUp(ctx context.Context, id int64) (*domain.MeetUp, error)
	ListMeetUps(ctx context.Context) ([]domain.MeetUp, error)
	ListMeetUpsByLocation(ctx context.Context, locationID int64) ([]domain.MeetUp, error)
	ListMeetUpsByDate(ctx context.Context, date time.Time) ([]domain.MeetUp, error)
	UpdateMeetUp(ctx context.Context, meetUp *domain.MeetUp) error
	DeleteMeetUp(ctx context.Context, id int64) error

	// Events.
	CreateEvent(ctx context.Context, event *domain.Event) error
	GetEvent(ctx context.Context, id int64) (*domain.Event, error)
	ListEventsByMeetUp(ctx context.Context, meetUpID int64) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, event *domain.Event) error
	DeleteEvent(ctx context.Context, id int64) error

	// Ownership and attendance.
	AssignOwner(ctx context.Context, owner *domain.MeetUpOwner) error
	RegisterAttendance(ctx context.Context, attendee *domain.MeetUpAttendee) error
	RemoveAttendance(ctx context.Context, userID, meetUpID int64) error
}
