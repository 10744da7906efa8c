package mocks

import (
	"context"
	"time"

	"github.com/meetuphub/meetup-api/internal/domain"
	"github.com/meetuphub/meetup-api/internal/store"
)

// MockMeetUpStore implements store.MeetUpStore for testing.
type MockMeetUpStore struct {
	CreateMeetUpFn          func(ctx context.Context, meetUp *domain.MeetUp) error
	GetMeetUpFn             func(ctx context.Context, id int64) (*domain.MeetUp, error)
	ListMeetUpsFn           func(ctx context.Context) ([]domain.MeetUp, error)
	ListMeetUpsByLocationFn func(ctx context.Context, locationID int64) ([]domain.MeetUp, error)
	ListMeetUpsByDateFn     func(ctx context.Context, date time.Time) ([]domain.MeetUp, error)
	UpdateMeetUpFn          func(ctx context.Context, meetUp *domain.MeetUp) error
	DeleteMeetUpFn          func(ctx context.Context, id int64) error

	CreateEventFn       func(ctx context.Context, event *domain.Event) error
	GetEventFn          func(ctx context.Context, id int64) (*domain.Event, error)
	ListEventsByMeetUpFn func(ctx context.Context, meetUpID int64) ([]domain.Event, error)
	UpdateEventFn       func(ctx context.Context, event *domain.Event) error
	DeleteEventFn       func(ctx context.Context, id int64) error

	AssignOwnerFn        func(ctx context.Context, owner *domain.MeetUpOwner) error
	RegisterAttendanceFn func(ctx context.Context, attendee *domain.MeetUpAttendee) error
	RemoveAttendanceFn   func(ctx context.Context, userID, meetUpID int64) error

	MeetUps   map[int64]*domain.MeetUp
	Events    map[int64]*domain.Event
	Owners    []*domain.MeetUpOwner
	Attendees []*domain.MeetUpAttendee
	NextID    int64
}

var _ store.MeetUpStore = (*MockMeetUpStore)(nil)

// NewMockMeetUpStore creates an empty mock store.
func NewMockMeetUpStore() *MockMeetUpStore {
	return &MockMeetUpStore{
		MeetUps: make(map[int64]*domain.MeetUp),
		Events:  make(map[int64]*domain.Event),
		NextID:  1,
	}
}

func (m *MockMeetUpStore) nextID() int64 {
	id := m.NextID
	m.NextID++
	return id
}

// CreateMeetUp implements store.MeetUpStore.
func (m *MockMeetUpStore) CreateMeetUp(ctx context.Context, meetUp *domain.MeetUp) error {
	if m.CreateMeetUpFn != nil {
		return m.CreateMeetUpFn(ctx, meetUp)
	}
	meetUp.ID = m.nextID()
	m.MeetUps[meetUp.ID] = meetUp
	return nil
}

// GetMeetUp implements store.MeetUpStore.
func (m *MockMeetUpStore) GetMeetUp(ctx context.Context, id int64) (*domain.MeetUp, error) {
	if m.GetMeetUpFn != nil {
		return m.GetMeetUpFn(ctx, id)
	}
	meetUp, exists := m.MeetUps[id]
	if !exists || !meetUp.Status {
		return nil, store.ErrMeetUpNotFound
	}
	return meetUp, nil
}

// ListMeetUps implements store.MeetUpStore.
func (m *MockMeetUpStore) ListMeetUps(ctx context.Context) ([]domain.MeetUp, error) {
	if m.ListMeetUpsFn != nil {
		return m.ListMeetUpsFn(ctx)
	}
	meetUps := make([]domain.MeetUp, 0, len(m.MeetUps))
	for _, meetUp := range m.MeetUps {
		if meetUp.Status {
			meetUps = append(meetUps, *meetUp)
		}
	}
	return meetUps, nil
}

// ListMeetUpsByLocation implements store.MeetUpStore.
func (m *MockMeetUpStore) ListMeetUpsByLocation(ctx context.Context, locationID int64) ([]domain.MeetUp, error) {
	if m.ListMeetUpsByLocationFn != nil {
		return m.ListMeetUpsByLocationFn(ctx, locationID)
	}
	var meetUps []domain.MeetUp
	for _, meetUp := range m.MeetUps {
		if meetUp.Status && meetUp.LocationID == locationID {
			meetUps = append(meetUps, *meetUp)
		}
	}
	return meetUps, nil
}

// ListMeetUpsByDate implements store.MeetUpStore.
func (m *MockMeetUpStore) ListMeetUpsByDate(ctx context.Context, date time.Time) ([]domain.MeetUp, error) {
	if m.ListMeetUpsByDateFn != nil {
		return m.ListMeetUpsByDateFn(ctx, date)
	}
	y, mo, d := date.Date()
	var meetUps []domain.MeetUp
	for _, meetUp := range m.MeetUps {
		my, mmo, md := meetUp.InitialDate.Date()
		if meetUp.Status && my == y && mmo == mo && md == d {
			meetUps = append(meetUps, *meetUp)
		}
	}
	return meetUps, nil
}

// UpdateMeetUp implements store.MeetUpStore.
func (m *MockMeetUpStore) UpdateMeetUp(ctx context.Context, meetUp *domain.MeetUp) error {
	if m.UpdateMeetUpFn != nil {
		return m.UpdateMeetUpFn(ctx, meetUp)
	}
	if _, exists := m.MeetUps[meetUp.ID]; !exists {
		return store.ErrMeetUpNotFound
	}
	m.MeetUps[meetUp.ID] = meetUp
	return nil
}

// DeleteMeetUp implements store.MeetUpStore as a soft delete.
func (m *MockMeetUpStore) DeleteMeetUp(ctx context.Context, id int64) error {
	if m.DeleteMeetUpFn != nil {
		return m.DeleteMeetUpFn(ctx, id)
	}
	meetUp, exists := m.MeetUps[id]
	if !exists || !meetUp.Status {
		return store.ErrMeetUpNotFound
	}
	meetUp.Status = false
	return nil
}

// CreateEvent implements store.MeetUpStore.
func (m *MockMeetUpStore) CreateEvent(ctx context.Context, event *domain.Event) error {
	if m.CreateEventFn != nil {
		return m.CreateEventFn(ctx, event)
	}
	if _, exists := m.MeetUps[event.MeetUpID]; !exists {
		return store.ErrInvalidEntity
	}
	event.ID = m.nextID()
	m.Events[event.ID] = event
	return nil
}

// GetEvent implements store.MeetUpStore.
func (m *MockMeetUpStore) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	if m.GetEventFn != nil {
		return m.GetEventFn(ctx, id)
	}
	event, exists := m.Events[id]
	if !exists || !event.Status {
		return nil, store.ErrEventNotFound
	}
	return event, nil
}

// ListEventsByMeetUp implements store.MeetUpStore.
func (m *MockMeetUpStore) ListEventsByMeetUp(ctx context.Context, meetUpID int64) ([]domain.Event, error) {
	if m.ListEventsByMeetUpFn != nil {
		return m.ListEventsByMeetUpFn(ctx, meetUpID)
	}
	var events []domain.Event
	for _, event := range m.Events {
		if event.Status && event.MeetUpID == meetUpID {
			events = append(events, *event)
		}
	}
	return events, nil
}

// UpdateEvent implements store.MeetUpStore.
func (m *MockMeetUpStore) UpdateEvent(ctx context.Context, event *domain.Event) error {
	if m.UpdateEventFn != nil {
		return m.UpdateEventFn(ctx, event)
	}
	if _, exists := m.Events[event.ID]; !exists {
		return store.ErrEventNotFound
	}
	m.Events[event.ID] = event
	return nil
}

// DeleteEvent implements store.MeetUpStore as a soft delete.
func (m *MockMeetUpStore) DeleteEvent(ctx context.Context, id int64) error {
	if m.DeleteEventFn != nil {
		return m.DeleteEventFn(ctx, id)
	}
	event, exists := m.Events[id]
	if !exists || !event.Status {
		return store.ErrEventNotFound
	}
	event.Status = false
	return nil
}

// AssignOwner implements store.MeetUpStore.
func (m *MockMeetUpStore) AssignOwner(ctx context.Context, owner *domain.MeetUpOwner) error {
	if m.AssignOwnerFn != nil {
		return m.AssignOwnerFn(ctx, owner)
	}
	for _, existing := range m.Owners {
		if existing.UserID == owner.UserID && existing.MeetUpID == owner.MeetUpID {
			return store.ErrDuplicate
		}
	}
	owner.ID = m.nextID()
	m.Owners = append(m.Owners, owner)
	return nil
}

// RegisterAttendance implements store.MeetUpStore.
func (m *MockMeetUpStore) RegisterAttendance(ctx context.Context, attendee *domain.MeetUpAttendee) error {
	if m.RegisterAttendanceFn != nil {
		return m.RegisterAttendanceFn(ctx, attendee)
	}
	attendee.ID = m.nextID()
	m.Attendees = append(m.Attendees, attendee)
	return nil
}

// RemoveAttendance implements store.MeetUpStore.
func (m *MockMeetUpStore) RemoveAttendance(ctx context.Context, userID, meetUpID int64) error {
	if m.RemoveAttendanceFn != nil {
		return m.RemoveAttendanceFn(ctx, userID, meetUpID)
	}
	for _, attendee := range m.Attendees {
		if attendee.UserID == userID && attendee.MeetUpID == meetUpID && attendee.Status {
			attendee.Status = false
			return nil
		}
	}
	return store.ErrNotFound
}
