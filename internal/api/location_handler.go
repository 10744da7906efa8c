package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/meetuphub/meetup-api/internal/api/shared"
	"github.com/meetuphub/meetup-api/internal/domain"
	"github.com/meetuphub/meetup-api/internal/store"
)

// LocationHandler serves the country/city/location hierarchy.
type LocationHandler struct {
	locations store.LocationStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewLocationHandler creates a LocationHandler.
func NewLocationHandler(locations store.LocationStore, logger *slog.Logger) *LocationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LocationHandler{
		locations: locations,
		validator: validator.New(),
		logger:    logger.With(slog.String("component", "location_handler")),
	}
}

// RegisterCountry handles POST /api/locations/countries.
func (h *LocationHandler) RegisterCountry(w http.ResponseWriter, r *http.Request) {
	var req AddCountryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	country, err := domain.NewCountry(req.Name)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.locations.CreateCountry(r.Context(), country); err != nil {
		h.logger.Error("failed to create country", "error", err, "name", req.Name)
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, country)
}

// ListCountries handles GET /api/locations/countries. A `name` query
// parameter narrows the result to the exactly matching country.
func (h *LocationHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("name"); name != "" {
		country, err := h.locations.GetCountryByName(r.Context(), name)
		if err != nil {
			respondWithMappedError(w, r, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, []domain.Country{*country})
		return
	}

	countries, err := h.locations.ListCountries(r.Context())
	if err != nil {
		h.logger.Error("failed to list countries", "error", err)
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, countries)
}

// GetCountry handles GET /api/locations/countries/{id}.
func (h *LocationHandler) GetCountry(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	country, err := h.locations.GetCountry(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, country)
}

// RegisterCity handles POST /api/locations/cities. The referenced country
// must exist.
func (h *LocationHandler) RegisterCity(w http.ResponseWriter, r *http.Request) {
	var req AddCityRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	if _, err := h.locations.GetCountry(r.Context(), req.CountryID); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	city, err := domain.NewCity(req.Name, req.CountryID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.locations.CreateCity(r.Context(), city); err != nil {
		h.logger.Error("failed to create city", "error", err, "name", req.Name)
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, city)
}

// ListCities handles GET /api/locations/cities.
func (h *LocationHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.locations.ListCities(r.Context())
	if err != nil {
		h.logger.Error("failed to list cities", "error", err)
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cities)
}

// GetCity handles GET /api/locations/cities/{id}.
func (h *LocationHandler) GetCity(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	city, err := h.locations.GetCity(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, city)
}

// AddLocation handles POST /api/locations. The referenced city must exist.
func (h *LocationHandler) AddLocation(w http.ResponseWriter, r *http.Request) {
	var req AddLocationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	if _, err := h.locations.GetCity(r.Context(), req.CityID); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	location, err := domain.NewLocation(req.Name, req.Address, req.Capacity, req.CityID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.locations.CreateLocation(r.Context(), location); err != nil {
		h.logger.Error("failed to create location", "error", err, "name", req.Name)
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, location)
}

// UpdateLocation handles PUT /api/locations/{id}.
func (h *LocationHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdateLocationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	if _, err := h.locations.GetCity(r.Context(), req.CityID); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	location, err := h.locations.GetLocation(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	location.Name = req.Name
	location.Address = req.Address
	location.Capacity = req.Capacity
	location.CityID = req.CityID

	if err := h.locations.UpdateLocation(r.Context(), location); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, location)
}

// DeleteLocation handles DELETE /api/locations/{id}.
func (h *LocationHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.locations.DeleteLocation(r.Context(), id); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "location deleted"})
}

// ListLocations handles GET /api/locations.
func (h *LocationHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.locations.ListLocations(r.Context())
	if err != nil {
		h.logger.Error("failed to list locations", "error", err)
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, locations)
}

// GetLocation handles GET /api/locations/{id}.
func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	location, err := h.locations.GetLocation(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, location)
}
