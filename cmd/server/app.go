package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/meetuphub/meetup-api/internal/api"
	"github.com/meetuphub/meetup-api/internal/config"
	"github.com/meetuphub/meetup-api/internal/platform/mail"
	"github.com/meetuphub/meetup-api/internal/platform/postgres"
	"github.com/meetuphub/meetup-api/internal/service/auth"
	"github.com/meetuphub/meetup-api/internal/store"
)

// application holds the shared application dependencies so wiring and
// cleanup happen in one place.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore     store.UserStore
	roleStore     store.RoleStore
	sessionStore  store.SessionStore
	locationStore store.LocationStore
	meetUpStore   store.MeetUpStore

	tokenService auth.TokenService
	passwords    auth.PasswordManager
	mailer       mail.Mailer

	userHandler     *api.UserHandler
	locationHandler *api.LocationHandler
	meetUpHandler   *api.MeetUpHandler
}

// newApplication creates an application with all dependencies initialized.
// Core dependencies that must exist beforehand, configuration, logger, and
// the database connection, are passed in.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.tokenService, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("token service initialized",
		"token_lifetime_hours", cfg.Auth.TokenLifetimeHours)

	app.passwords = auth.NewBcryptPasswordManager(cfg.Auth.BcryptCost)

	app.userStore = postgres.NewUserStore(db, logger)
	app.roleStore = postgres.NewRoleStore(db, logger)
	app.sessionStore = postgres.NewSessionStore(db, logger)
	app.locationStore = postgres.NewLocationStore(db, logger)
	app.meetUpStore = postgres.NewMeetUpStore(db, logger)

	if cfg.SMTP.Host != "" {
		app.mailer = mail.NewSMTPMailer(cfg.SMTP, logger)
	} else {
		logger.Warn("no SMTP host configured, outbound email disabled")
		app.mailer = mail.NewNoopMailer(logger)
	}

	app.userHandler = api.NewUserHandler(
		db,
		app.userStore,
		app.roleStore,
		app.sessionStore,
		app.tokenService,
		app.passwords,
		app.mailer,
		logger,
	)
	app.locationHandler = api.NewLocationHandler(app.locationStore, logger)
	app.meetUpHandler = api.NewMeetUpHandler(app.meetUpStore, app.locationStore, logger)

	logger.Info("application initialized")
	return app, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources during shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}
