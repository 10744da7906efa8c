package domain

import "errors"

// Location hierarchy validation errors.
var (
	ErrInvalidCountryID = errors.New("country id must be positive")
	ErrInvalidCityID    = errors.New("city id must be positive")
	ErrEmptyAddress     = errors.New("address cannot be empty")
	ErrInvalidCapacity  = errors.New("capacity must be positive")
)

// Country is the root of the location hierarchy.
type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewCountry creates an unsaved country.
func NewCountry(name string) (*Country, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Country{Name: name}, nil
}

// City belongs to exactly one country.
type City struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CountryID int64  `json:"country_id"`
}

// NewCity creates an unsaved city. The referenced country's existence is
// checked by the caller against the store, not here.
func NewCity(name string, countryID int64) (*City, error) {
	c := &City{Name: name, CountryID: countryID}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the city's fields.
func (c *City) Validate() error {
	if c.Name == "" {
		return ErrEmptyName
	}
	if c.CountryID <= 0 {
		return ErrInvalidCountryID
	}
	return nil
}

// Location is a venue where meetups take place.
type Location struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Capacity int    `json:"capacity"`
	CityID   int64  `json:"city_id"`
}

// NewLocation creates an unsaved location.
func NewLocation(name, address string, capacity int, cityID int64) (*Location, error) {
	l := &Location{Name: name, Address: address, Capacity: capacity, CityID: cityID}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate checks the location's fields.
func (l *Location) Validate() error {
	if l.Name == "" {
		return ErrEmptyName
	}
	if l.Address == "" {
		return ErrEmptyAddress
	}
	if l.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if l.CityID <= 0 {
		return ErrInvalidCityID
	}
	return nil
}
