package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/meetuphub/meetup-api/internal/domain"
	"github.com/meetuphub/meetup-api/internal/platform/logger"
	"github.com/meetuphub/meetup-api/internal/store"
)

// LocationStore implements store.LocationStore on PostgreSQL.
type LocationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewLocationStore creates a PostgreSQL-backed location store.
func NewLocationStore(db store.DBTX, logger *slog.Logger) *LocationStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LocationStore{
		db:     db,
		logger: logger.With(slog.String("component", "location_store")),
	}
}

var _ store.LocationStore = (*LocationStore)(nil)

// CreateCountry inserts a country row and fills in the generated id.
func (s *LocationStore) CreateCountry(ctx context.Context, country *domain.Country) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowContext(
		ctx,
		`INSERT INTO countries (name) VALUES ($1) RETURNING id`,
		country.Name,
	).Scan(&country.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: country %q", store.ErrDuplicate, country.Name)
		}
		log.Error("failed to create country",
			slog.String("error", err.Error()),
			slog.String("name", country.Name))
		return err
	}

	log.Info("country created", slog.Int64("country_id", country.ID))
	return nil
}

// GetCountry retrieves a country by id.
func (s *LocationStore) GetCountry(ctx context.Context, id int64) (*domain.Country, error) {
	var c domain.Country
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM countries WHERE id = $1`, id).
		Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCountryNotFound
		}
		return nil, fmt.Errorf("failed to get country: %w", err)
	}
	return &c, nil
}

// GetCountryByName retrieves a country by exact name.
func (s *LocationStore) GetCountryByName(ctx context.Context, name string) (*domain.Country, error) {
	var c domain.Country
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM countries WHERE name = $1`, name).
		Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCountryNotFound
		}
		return nil, fmt.Errorf("failed to get country by name: %w", err)
	}
	return &c, nil
}

// ListCountries returns all countries ordered by name.
func (s *LocationStore) ListCountries(ctx context.Context) ([]domain.Country, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM countries ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	countries := make([]domain.Country, 0)
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan country: %w", err)
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}

// CreateCity inserts a city row and fills in the generated id.
func (s *LocationStore) CreateCity(ctx context.Context, city *domain.City) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowContext(
		ctx,
		`INSERT INTO cities (name, country_id) VALUES ($1, $2) RETURNING id`,
		city.Name,
		city.CountryID,
	).Scan(&city.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: country %d not found", store.ErrInvalidEntity, city.CountryID)
		}
		log.Error("failed to create city",
			slog.String("error", err.Error()),
			slog.String("name", city.Name))
		return err
	}

	log.Info("city created", slog.Int64("city_id", city.ID))
	return nil
}

// GetCity retrieves a city by id.
func (s *LocationStore) GetCity(ctx context.Context, id int64) (*domain.City, error) {
	var c domain.City
	err := s.db.QueryRowContext(ctx, `SELECT id, name, country_id FROM cities WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.CountryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCityNotFound
		}
		return nil, fmt.Errorf("failed to get city: %w", err)
	}
	return &c, nil
}

// ListCities returns all cities ordered by name.
func (s *LocationStore) ListCities(ctx context.Context) ([]domain.City, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, country_id FROM cities ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cities := make([]domain.City, 0)
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.ID, &c.Name, &c.CountryID); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

// CreateLocation inserts a location row and fills in the generated id.
func (s *LocationStore) CreateLocation(ctx context.Context, location *domain.Location) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := location.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	err := s.db.QueryRowContext(
		ctx,
		`INSERT INTO locations (name, address, capacity, city_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		location.Name,
		location.Address,
		location.Capacity,
		location.CityID,
	).Scan(&location.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: city %d not found", store.ErrInvalidEntity, location.CityID)
		}
		log.Error("failed to create location",
			slog.String("error", err.Error()),
			slog.String("name", location.Name))
		return err
	}

	log.Info("location created", slog.Int64("location_id", location.ID))
	return nil
}

// GetLocation retrieves a location by id.
func (s *LocationStore) GetLocation(ctx context.Context, id int64) (*domain.Location, error) {
	var l domain.Location
	err := s.db.QueryRowContext(
		ctx,
		`SELECT id, name, address, capacity, city_id FROM locations WHERE id = $1`,
		id,
	).Scan(&l.ID, &l.Name, &l.Address, &l.Capacity, &l.CityID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return &l, nil
}

// ListLocations returns all locations ordered by name.
func (s *LocationStore) ListLocations(ctx context.Context) ([]domain.Location, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, name, address, capacity, city_id FROM locations ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	locations := make([]domain.Location, 0)
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.Capacity, &l.CityID); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

// UpdateLocation persists changes to an existing location row.
func (s *LocationStore) UpdateLocation(ctx context.Context, location *domain.Location) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		`UPDATE locations SET name = $1, address = $2, capacity = $3, city_id = $4 WHERE id = $5`,
		location.Name,
		location.Address,
		location.Capacity,
		location.CityID,
		location.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: city %d not found", store.ErrInvalidEntity, location.CityID)
		}
		log.Error("failed to update location",
			slog.String("error", err.Error()),
			slog.Int64("location_id", location.ID))
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrLocationNotFound
	}
	return nil
}

// DeleteLocation removes a location row.
func (s *LocationStore) DeleteLocation(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete location",
			slog.String("error", err.Error()),
			slog.Int64("location_id", id))
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrLocationNotFound
	}

	log.Info("location deleted", slog.Int64("location_id", id))
	return nil
}
