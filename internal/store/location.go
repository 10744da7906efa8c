package store

import (
	"context"

	"github.com/meetuphub/meetup-api/internal/domain"
)

// LocationStore defines persistence for the country/city/location hierarchy.
type LocationStore interface {
	// Countries.
	CreateCountry(ctx context.Context, country *domain.Country) error
	GetCountry(ctx context.Context, id int64) (*domain.Country, error)
	GetCountryByName(ctx context.Context, name string) (*domain.Country, error)
	ListCountries(ctx context.Context) ([]domain.Country, error)

	// Cities. CreateCity returns ErrInvalidEntity when the referenced
	// country does not exist.
	CreateCity(ctx context.Context, city *domain.City) error
	GetCity(ctx context.Context, id int64) (*domain.City, error)
	ListCities(ctx context.Context) ([]domain.City, error)

	// Locations. CreateLocation returns ErrInvalidEntity when the
	// referenced city does not exist.
	CreateLocation(ctx context.Context, location *domain.Location) error
	GetLocation(ctx context.Context, id int64) (*domain.Location, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
	UpdateLocation(ctx context.Context, location *domain.Location) error
	DeleteLocation(ctx context.Context, id int64) error
}
