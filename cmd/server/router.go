package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apiMiddleware "github.com/meetuphub/meetup-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware. Registration, login, and read-only listings are public;
// every mutation requires a valid bearer token backed by an active
// session.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService, app.sessionStore, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			// Public endpoints.
			r.Post("/register", app.userHandler.Register)
			r.Post("/login", app.userHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Post("/logout/{id}", app.userHandler.Logout)
				r.Put("/password", app.userHandler.ChangePassword)
				r.Get("/{id}", app.userHandler.GetUser)
				r.Put("/{id}", app.userHandler.UpdateUser)
				r.Delete("/{id}", app.userHandler.DeleteUser)
			})
		})

		r.Route("/locations", func(r chi.Router) {
			// Public listings.
			r.Get("/", app.locationHandler.ListLocations)
			r.Get("/{id}", app.locationHandler.GetLocation)
			r.Get("/countries", app.locationHandler.ListCountries)
			r.Get("/countries/{id}", app.locationHandler.GetCountry)
			r.Get("/cities", app.locationHandler.ListCities)
			r.Get("/cities/{id}", app.locationHandler.GetCity)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Post("/countries", app.locationHandler.RegisterCountry)
				r.Post("/cities", app.locationHandler.RegisterCity)
				r.Post("/", app.locationHandler.AddLocation)
				r.Put("/{id}", app.locationHandler.UpdateLocation)
				r.Delete("/{id}", app.locationHandler.DeleteLocation)
			})
		})

		r.Route("/meetups", func(r chi.Router) {
			// Public listings.
			r.Get("/", app.meetUpHandler.ListMeetUps)
			r.Get("/by-date", app.meetUpHandler.ListMeetUpsByDate)
			r.Get("/by-location/{id}", app.meetUpHandler.ListMeetUpsByLocation)
			r.Get("/{id}", app.meetUpHandler.GetMeetUp)
			r.Get("/{id}/events", app.meetUpHandler.ListEventsByMeetUp)
			r.Get("/events/{id}", app.meetUpHandler.GetEvent)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Post("/", app.meetUpHandler.CreateMeetUp)
				r.Put("/{id}", app.meetUpHandler.UpdateMeetUp)
				r.Delete("/{id}", app.meetUpHandler.DeleteMeetUp)

				r.Post("/events", app.meetUpHandler.CreateEvent)
				r.Put("/events/{id}", app.meetUpHandler.UpdateEvent)
				r.Delete("/events/{id}", app.meetUpHandler.DeleteEvent)

				r.Post("/owners", app.meetUpHandler.AssignOwner)
				r.Post("/attendees", app.meetUpHandler.RegisterAttendance)
				r.Delete("/attendees", app.meetUpHandler.RemoveAttendance)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
