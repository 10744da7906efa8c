package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/meetuphub/meetup-api/internal/api/shared"
	"github.com/meetuphub/meetup-api/internal/domain"
	"github.com/meetuphub/meetup-api/internal/store"
)

// MeetUpHandler serves meetups, their events, and owner/attendee links.
type MeetUpHandler struct {
	meetUps   store.MeetUpStore
	locations store.LocationStore
	validator *validator.Validate
	logger    *slog.Logger
	now       func() time.Time // Injectable for testing date validation
}

// NewMeetUpHandler creates a MeetUpHandler.
func NewMeetUpHandler(meetUps store.MeetUpStore, locations store.LocationStore, logger *slog.Logger) *MeetUpHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MeetUpHandler{
		meetUps:   meetUps,
		locations: locations,
		validator: validator.New(),
		logger:    logger.With(slog.String("component", "meetup_handler")),
		now:       time.Now,
	}
}

// CreateMeetUp handles POST /api/meetups. Dates must be in the future and
// the location must exist.
func (h *MeetUpHandler) CreateMeetUp(w http.ResponseWriter, r *http.Request) {
	var req AddMeetUpRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	if _, err := h.locations.GetLocation(r.Context(), req.LocationID); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	meetUp, err := domain.NewMeetUp(req.Name, req.InitialDate, req.FinalDate, req.LocationID, h.now())
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.meetUps.CreateMeetUp(r.Context(), meetUp); err != nil {
		h.logger.Error("failed to create meetup", "error", err, "name", req.Name)
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, meetUp)
}

// UpdateMeetUp handles PUT /api/meetups/{id}. The referenced location
// must exist.
func (h *MeetUpHandler) UpdateMeetUp(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdateMeetUpRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	if _, err := h.locations.GetLocation(r.Context(), req.LocationID); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	meetUp, err := h.meetUps.GetMeetUp(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	meetUp.Name = req.Name
	meetUp.InitialDate = req.InitialDate
	meetUp.FinalDate = req.FinalDate
	meetUp.LocationID = req.LocationID

	if err := meetUp.ValidateAt(h.now()); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.meetUps.UpdateMeetUp(r.Context(), meetUp); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, meetUp)
}

// DeleteMeetUp handles DELETE /api/meetups/{id} as a soft delete.
func (h *MeetUpHandler) DeleteMeetUp(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.meetUps.DeleteMeetUp(r.Context(), id); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "meetup deleted"})
}

// ListMeetUps handles GET /api/meetups.
func (h *MeetUpHandler) ListMeetUps(w http.ResponseWriter, r *http.Request) {
	meetUps, err := h.meetUps.ListMeetUps(r.Context())
	if err != nil {
		h.logger.Error("failed to list meetups", "error", err)
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, meetUps)
}

// GetMeetUp handles GET /api/meetups/{id}.
func (h *MeetUpHandler) GetMeetUp(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	meetUp, err := h.meetUps.GetMeetUp(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, meetUp)
}

// ListMeetUpsByLocation handles GET /api/meetups/by-location/{id}. The
// location must exist; an unknown location answers 404, not an empty list.
func (h *MeetUpHandler) ListMeetUpsByLocation(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.locations.GetLocation(r.Context(), id); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	meetUps, err := h.meetUps.ListMeetUpsByLocation(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to list meetups by location", "error", err, "location_id", id)
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, meetUps)
}

// ListMeetUpsByDate handles GET /api/meetups/by-date?date=YYYY-MM-DD.
func (h *MeetUpHandler) ListMeetUpsByDate(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "date must be in YYYY-MM-DD format")
		return
	}

	meetUps, err := h.meetUps.ListMeetUpsByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("failed to list meetups by date", "error", err, "date", raw)
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, meetUps)
}

// CreateEvent handles POST /api/meetups/events. The parent meetup must
// exist.
func (h *MeetUpHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req AddEventRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	if _, err := h.meetUps.GetMeetUp(r.Context(), req.MeetUpID); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	event, err := domain.NewEvent(req.Name, req.Details, req.InitialDate, req.FinalDate, req.MeetUpID, h.now())
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.meetUps.CreateEvent(r.Context(), event); err != nil {
		h.logger.Error("failed to create event", "error", err, "name", req.Name)
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, event)
}

// UpdateEvent handles PUT /api/meetups/events/{id}. The referenced
// meetup must exist.
func (h *MeetUpHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdateEventRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	if _, err := h.meetUps.GetMeetUp(r.Context(), req.MeetUpID); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	event, err := h.meetUps.GetEvent(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	event.Name = req.Name
	event.InitialDate = req.InitialDate
	event.FinalDate = req.FinalDate
	event.Details = req.Details
	event.MeetUpID = req.MeetUpID

	if err := event.ValidateAt(h.now()); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.meetUps.UpdateEvent(r.Context(), event); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, event)
}

// DeleteEvent handles DELETE /api/meetups/events/{id} as a soft delete.
func (h *MeetUpHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.meetUps.DeleteEvent(r.Context(), id); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "event deleted"})
}

// GetEvent handles GET /api/meetups/events/{id}.
func (h *MeetUpHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	event, err := h.meetUps.GetEvent(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, event)
}

// ListEventsByMeetUp handles GET /api/meetups/{id}/events.
func (h *MeetUpHandler) ListEventsByMeetUp(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.meetUps.GetMeetUp(r.Context(), id); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	events, err := h.meetUps.ListEventsByMeetUp(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to list events", "error", err, "meetup_id", id)
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, events)
}

// AssignOwner handles POST /api/meetups/owners.
func (h *MeetUpHandler) AssignOwner(w http.ResponseWriter, r *http.Request) {
	var req AttendanceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	owner := &domain.MeetUpOwner{UserID: req.UserID, MeetUpID: req.MeetUpID, CreatedAt: h.now().UTC()}
	if err := h.meetUps.AssignOwner(r.Context(), owner); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, owner)
}

// RegisterAttendance handles POST /api/meetups/attendees.
func (h *MeetUpHandler) RegisterAttendance(w http.ResponseWriter, r *http.Request) {
	var req AttendanceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	attendee := &domain.MeetUpAttendee{UserID: req.UserID, MeetUpID: req.MeetUpID, ReservedAt: h.now().UTC(), Status: true}
	if err := h.meetUps.RegisterAttendance(r.Context(), attendee); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, attendee)
}

// RemoveAttendance handles DELETE /api/meetups/attendees.
func (h *MeetUpHandler) RemoveAttendance(w http.ResponseWriter, r *http.Request) {
	var req AttendanceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	if err := h.meetUps.RemoveAttendance(r.Context(), req.UserID, req.MeetUpID); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "attendance removed"})
}
