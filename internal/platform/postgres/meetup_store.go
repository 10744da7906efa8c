package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/meetuphub/meetup-api/internal/domain"
	"github.com/meetuphub/meetup-api/internal/platform/logger"
	"github.com/meetuphub/meetup-api/internal/store"
)

// MeetUpStore implements store.MeetUpStore on PostgreSQL. Reads filter on
// status = TRUE; deletes only flip the flag.
type MeetUpStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewMeetUpStore creates a PostgreSQL-backed meetup store.
func NewMeetUpStore(db store.DBTX, logger *slog.Logger) *MeetUpStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MeetUpStore{
		db:     db,
		logger: logger.With(slog.String("component", "meetup_store")),
	}
}

var _ store.MeetUpStore = (*MeetUpStore)(nil)

const meetUpColumns = `id, name, initial_date, final_date, status, location_id`

// CreateMeetUp inserts a meetup row and fills in the generated id.
func (s *MeetUpStore) CreateMeetUp(ctx context.Context, meetUp *domain.MeetUp) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO meetups (name, initial_date, final_date, status, location_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		meetUp.Name,
		meetUp.InitialDate,
		meetUp.FinalDate,
		meetUp.Status,
		meetUp.LocationID,
	).Scan(&meetUp.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: location %d not found", store.ErrInvalidEntity, meetUp.LocationID)
		}
		log.Error("failed to create meetup",
			slog.String("error", err.Error()),
			slog.String("name", meetUp.Name))
		return err
	}

	log.Info("meetup created", slog.Int64("meetup_id", meetUp.ID))
	return nil
}

// GetMeetUp retrieves an active meetup by id.
func (s *MeetUpStore) GetMeetUp(ctx context.Context, id int64) (*domain.MeetUp, error) {
	query := `SELECT ` + meetUpColumns + ` FROM meetups WHERE id = $1 AND status = TRUE`

	var m domain.MeetUp
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.InitialDate, &m.FinalDate, &m.Status, &m.LocationID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrMeetUpNotFound
		}
		return nil, fmt.Errorf("failed to get meetup: %w", err)
	}
	return &m, nil
}

func (s *MeetUpStore) listMeetUps(ctx context.Context, query string, args ...any) ([]domain.MeetUp, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetups: %w", err)
	}
	defer func() { _ = rows.Close() }()

	meetUps := make([]domain.MeetUp, 0)
	for rows.Next() {
		var m domain.MeetUp
		if err := rows.Scan(&m.ID, &m.Name, &m.InitialDate, &m.FinalDate, &m.Status, &m.LocationID); err != nil {
			return nil, fmt.Errorf("failed to scan meetup: %w", err)
		}
		meetUps = append(meetUps, m)
	}
	return meetUps, rows.Err()
}

// ListMeetUps returns all active meetups ordered by start date.
func (s *MeetUpStore) ListMeetUps(ctx context.Context) ([]domain.MeetUp, error) {
	return s.listMeetUps(ctx,
		`SELECT `+meetUpColumns+` FROM meetups WHERE status = TRUE ORDER BY initial_date`)
}

// ListMeetUpsByLocation returns active meetups at the given location.
func (s *MeetUpStore) ListMeetUpsByLocation(ctx context.Context, locationID int64) ([]domain.MeetUp, error) {
	return s.listMeetUps(ctx,
		`SELECT `+meetUpColumns+` FROM meetups WHERE location_id = $1 AND status = TRUE ORDER BY initial_date`,
		locationID)
}

// ListMeetUpsByDate returns active meetups starting on the given calendar day.
func (s *MeetUpStore) ListMeetUpsByDate(ctx context.Context, date time.Time) ([]domain.MeetUp, error) {
	return s.listMeetUps(ctx,
		`SELECT `+meetUpColumns+` FROM meetups WHERE initial_date::date = $1::date AND status = TRUE ORDER BY initial_date`,
		date)
}

// UpdateMeetUp persists changes to an existing meetup row.
func (s *MeetUpStore) UpdateMeetUp(ctx context.Context, meetUp *domain.MeetUp) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE meetups
		SET name = $1, initial_date = $2, final_date = $3, location_id = $4
		WHERE id = $5 AND status = TRUE
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		meetUp.Name,
		meetUp.InitialDate,
		meetUp.FinalDate,
		meetUp.LocationID,
		meetUp.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: location %d not found", store.ErrInvalidEntity, meetUp.LocationID)
		}
		log.Error("failed to update meetup",
			slog.String("error", err.Error()),
			slog.Int64("meetup_id", meetUp.ID))
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrMeetUpNotFound
	}
	return nil
}

// DeleteMeetUp soft-deletes a meetup.
func (s *MeetUpStore) DeleteMeetUp(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		`UPDATE meetups SET status = FALSE WHERE id = $1 AND status = TRUE`,
		id,
	)
	if err != nil {
		log.Error("failed to soft-delete meetup",
			slog.String("error", err.Error()),
			slog.Int64("meetup_id", id))
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrMeetUpNotFound
	}

	log.Info("meetup deactivated", slog.Int64("meetup_id", id))
	return nil
}

const eventColumns = `id, name, initial_date, final_date, details, status, meetup_id`

// CreateEvent inserts an event row and fills in the generated id.
func (s *MeetUpStore) CreateEvent(ctx context.Context, event *domain.Event) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO events (name, initial_date, final_date, details, status, meetup_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		event.Name,
		event.InitialDate,
		event.FinalDate,
		event.Details,
		event.Status,
		event.MeetUpID,
	).Scan(&event.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: meetup %d not found", store.ErrInvalidEntity, event.MeetUpID)
		}
		log.Error("failed to create event",
			slog.String("error", err.Error()),
			slog.String("name", event.Name))
		return err
	}

	log.Info("event created", slog.Int64("event_id", event.ID))
	return nil
}

// GetEvent retrieves an active event by id.
func (s *MeetUpStore) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 AND status = TRUE`

	var e domain.Event
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.InitialDate, &e.FinalDate, &e.Details, &e.Status, &e.MeetUpID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &e, nil
}

// ListEventsByMeetUp returns active events belonging to a meetup.
func (s *MeetUpStore) ListEventsByMeetUp(ctx context.Context, meetUpID int64) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE meetup_id = $1 AND status = TRUE ORDER BY initial_date`

	rows, err := s.db.QueryContext(ctx, query, meetUpID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	events := make([]domain.Event, 0)
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.InitialDate, &e.FinalDate, &e.Details, &e.Status, &e.MeetUpID); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// UpdateEvent persists changes to an existing event row.
func (s *MeetUpStore) UpdateEvent(ctx context.Context, event *domain.Event) error {
	query := `
		UPDATE events
		SET name = $1, initial_date = $2, final_date = $3, details = $4, meetup_id = $5
		WHERE id = $6 AND status = TRUE
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		event.Name,
		event.InitialDate,
		event.FinalDate,
		event.Details,
		event.MeetUpID,
		event.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: meetup %d not found", store.ErrInvalidEntity, event.MeetUpID)
		}
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrEventNotFound
	}
	return nil
}

// DeleteEvent soft-deletes an event.
func (s *MeetUpStore) DeleteEvent(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(
		ctx,
		`UPDATE events SET status = FALSE WHERE id = $1 AND status = TRUE`,
		id,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrEventNotFound
	}
	return nil
}

// AssignOwner links a user to a meetup as its organizer.
func (s *MeetUpStore) AssignOwner(ctx context.Context, owner *domain.MeetUpOwner) error {
	if owner.CreatedAt.IsZero() {
		owner.CreatedAt = time.Now().UTC()
	}

	err := s.db.QueryRowContext(
		ctx,
		`INSERT INTO meetup_owners (user_id, meetup_id, created_at) VALUES ($1, $2, $3) RETURNING id`,
		owner.UserID,
		owner.MeetUpID,
		owner.CreatedAt,
	).Scan(&owner.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user already owns this meetup", store.ErrDuplicate)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: user or meetup not found", store.ErrInvalidEntity)
		}
		return err
	}
	return nil
}

// RegisterAttendance records a user's reservation for a meetup.
func (s *MeetUpStore) RegisterAttendance(ctx context.Context, attendee *domain.MeetUpAttendee) error {
	if attendee.ReservedAt.IsZero() {
		attendee.ReservedAt = time.Now().UTC()
	}
	attendee.Status = true

	err := s.db.QueryRowContext(
		ctx,
		`INSERT INTO meetup_attendees (user_id, meetup_id, reserved_at, status) VALUES ($1, $2, $3, TRUE) RETURNING id`,
		attendee.UserID,
		attendee.MeetUpID,
		attendee.ReservedAt,
	).Scan(&attendee.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: user or meetup not found", store.ErrInvalidEntity)
		}
		return err
	}
	return nil
}

// RemoveAttendance cancels a user's reservation by flipping its status.
func (s *MeetUpStore) RemoveAttendance(ctx context.Context, userID, meetUpID int64) error {
	result, err := s.db.ExecContext(
		ctx,
		`UPDATE meetup_attendees SET status = FALSE WHERE user_id = $1 AND meetup_id = $2 AND status = TRUE`,
		userID,
		meetUpID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrNotFound
	}
	return nil
}
