package mocks

import (
	"context"

	"github.com/meetuphub/meetup-api/internal/domain"
	"github.com/meetuphub/meetup-api/internal/store"
)

// MockLocationStore implements store.LocationStore for testing, backed by
// in-memory maps keyed by id.
type MockLocationStore struct {
	CreateCountryFn    func(ctx context.Context, country *domain.Country) error
	GetCountryFn       func(ctx context.Context, id int64) (*domain.Country, error)
	GetCountryByNameFn func(ctx context.Context, name string) (*domain.Country, error)
	ListCountriesFn    func(ctx context.Context) ([]domain.Country, error)

	CreateCityFn func(ctx context.Context, city *domain.City) error
	GetCityFn    func(ctx context.Context, id int64) (*domain.City, error)
	ListCitiesFn func(ctx context.Context) ([]domain.City, error)

	CreateLocationFn func(ctx context.Context, location *domain.Location) error
	GetLocationFn    func(ctx context.Context, id int64) (*domain.Location, error)
	ListLocationsFn  func(ctx context.Context) ([]domain.Location, error)
	UpdateLocationFn func(ctx context.Context, location *domain.Location) error
	DeleteLocationFn func(ctx context.Context, id int64) error

	Countries map[int64]*domain.Country
	Cities    map[int64]*domain.City
	Locations map[int64]*domain.Location
	NextID    int64
}

var _ store.LocationStore = (*MockLocationStore)(nil)

// NewMockLocationStore creates an empty mock store.
func NewMockLocationStore() *MockLocationStore {
	return &MockLocationStore{
		Countries: make(map[int64]*domain.Country),
		Cities:    make(map[int64]*domain.City),
		Locations: make(map[int64]*domain.Location),
		NextID:    1,
	}
}

func (m *MockLocationStore) nextID() int64 {
	id := m.NextID
	m.NextID++
	return id
}

// CreateCountry implements store.LocationStore.
func (m *MockLocationStore) CreateCountry(ctx context.Context, country *domain.Country) error {
	if m.CreateCountryFn != nil {
		return m.CreateCountryFn(ctx, country)
	}
	for _, existing := range m.Countries {
		if existing.Name == country.Name {
			return store.ErrDuplicate
		}
	}
	country.ID = m.nextID()
	m.Countries[country.ID] = country
	return nil
}

// GetCountry implements store.LocationStore.
func (m *MockLocationStore) GetCountry(ctx context.Context, id int64) (*domain.Country, error) {
	if m.GetCountryFn != nil {
		return m.GetCountryFn(ctx, id)
	}
	country, exists := m.Countries[id]
	if !exists {
		return nil, store.ErrCountryNotFound
	}
	return country, nil
}

// GetCountryByName implements store.LocationStore.
func (m *MockLocationStore) GetCountryByName(ctx context.Context, name string) (*domain.Country, error) {
	if m.GetCountryByNameFn != nil {
		return m.GetCountryByNameFn(ctx, name)
	}
	for _, country := range m.Countries {
		if country.Name == name {
			return country, nil
		}
	}
	return nil, store.ErrCountryNotFound
}

// ListCountries implements store.LocationStore.
func (m *MockLocationStore) ListCountries(ctx context.Context) ([]domain.Country, error) {
	if m.ListCountriesFn != nil {
		return m.ListCountriesFn(ctx)
	}
	countries := make([]domain.Country, 0, len(m.Countries))
	for _, country := range m.Countries {
		countries = append(countries, *country)
	}
	return countries, nil
}

// CreateCity implements store.LocationStore.
func (m *MockLocationStore) CreateCity(ctx context.Context, city *domain.City) error {
	if m.CreateCityFn != nil {
		return m.CreateCityFn(ctx, city)
	}
	if _, exists := m.Countries[city.CountryID]; !exists {
		return store.ErrInvalidEntity
	}
	city.ID = m.nextID()
	m.Cities[city.ID] = city
	return nil
}

// GetCity implements store.LocationStore.
func (m *MockLocationStore) GetCity(ctx context.Context, id int64) (*domain.City, error) {
	if m.GetCityFn != nil {
		return m.GetCityFn(ctx, id)
	}
	city, exists := m.Cities[id]
	if !exists {
		return nil, store.ErrCityNotFound
	}
	return city, nil
}

// ListCities implements store.LocationStore.
func (m *MockLocationStore) ListCities(ctx context.Context) ([]domain.City, error) {
	if m.ListCitiesFn != nil {
		return m.ListCitiesFn(ctx)
	}
	cities := make([]domain.City, 0, len(m.Cities))
	for _, city := range m.Cities {
		cities = append(cities, *city)
	}
	return cities, nil
}

// CreateLocation implements store.LocationStore.
func (m *MockLocationStore) CreateLocation(ctx context.Context, location *domain.Location) error {
	if m.CreateLocationFn != nil {
		return m.CreateLocationFn(ctx, location)
	}
	if _, exists := m.Cities[location.CityID]; !exists {
		return store.ErrInvalidEntity
	}
	location.ID = m.nextID()
	m.Locations[location.ID] = location
	return nil
}

// GetLocation implements store.LocationStore.
func (m *MockLocationStore) GetLocation(ctx context.Context, id int64) (*domain.Location, error) {
	if m.GetLocationFn != nil {
		return m.GetLocationFn(ctx, id)
	}
	location, exists := m.Locations[id]
	if !exists {
		return nil, store.ErrLocationNotFound
	}
	return location, nil
}

// ListLocations implements store.LocationStore.
func (m *MockLocationStore) ListLocations(ctx context.Context) ([]domain.Location, error) {
	if m.ListLocationsFn != nil {
		return m.ListLocationsFn(ctx)
	}
	locations := make([]domain.Location, 0, len(m.Locations))
	for _, location := range m.Locations {
		locations = append(locations, *location)
	}
	return locations, nil
}

// UpdateLocation implements store.LocationStore.
func (m *MockLocationStore) UpdateLocation(ctx context.Context, location *domain.Location) error {
	if m.UpdateLocationFn != nil {
		return m.UpdateLocationFn(ctx, location)
	}
	if _, exists := m.Locations[location.ID]; !exists {
		return store.ErrLocationNotFound
	}
	m.Locations[location.ID] = location
	return nil
}

// DeleteLocation implements store.LocationStore.
func (m *MockLocationStore) DeleteLocation(ctx context.Context, id int64) error {
	if m.DeleteLocationFn != nil {
		return m.DeleteLocationFn(ctx, id)
	}
	if _, exists := m.Locations[id]; !exists {
		return store.ErrLocationNotFound
	}
	delete(m.Locations, id)
	return nil
}
