package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/cashbook/internal/membership/http"
	"github.com/aussiebroadwan/cashbook/internal/membership/notify"
	"github.com/aussiebroadwan/cashbook/internal/membership/service"
	"github.com/aussiebroadwan/cashbook/internal/membership/store"
	"github.com/aussiebroadwan/cashbook/internal/membership/store/drivers/sqlite"
	"github.com/aussiebroadwan/cashbook/pkg/cryptox"
	"github.com/aussiebroadwan/cashbook/pkg/httpx"
	"github.com/aussiebroadwan/cashbook/pkg/jwtx"
	"github.com/aussiebroadwan/cashbook/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the membership service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db        store.Store
	keys      *jwtx.KeySet
	verifier  jwtx.Verifier
	refresher *KeyRefresher // nil with an inline JWKS
	sealer    *cryptox.Sealer

	// Services
	rosterService     *service.RosterService
	membershipService *service.MembershipService
	inviteService     *service.InviteService
	userService       *service.UserService
	businessService   *service.BusinessService
	accessService     *service.AccessService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "membership-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keys, verifier, refresher, err := InitVerifier(context.Background(), app.cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize token verification: %w", err)
	}
	app.keys, app.verifier, app.refresher = keys, verifier, refresher

	if err := app.initSealer(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	notifier, err := NewNotifier(app.cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices(notifier)
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	if app.refresher != nil {
		app.refresher.Start()
	}

	app.logger.Info("membership service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down membership service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.refresher != nil {
		app.refresher.Stop()
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("membership service stopped")
	return nil
}

// initDatabase opens the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(app.cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initSealer sets up encryption of stored invite tokens. Without a
// configured secret a random one is used, and pending invites can no longer
// be resent after a restart.
func (app *Application) initSealer() error {
	secret := app.cfg.InviteSecret
	if app.cfg.InviteSecretFile != "" {
		b, err := os.ReadFile(app.cfg.InviteSecretFile)
		if err != nil {
			return fmt.Errorf("failed to read INVITE_SECRET_FILE: %w", err)
		}
		secret = strings.TrimSpace(string(b))
	}

	if secret == "" {
		if app.cfg.Env == "prod" {
			return errors.New("INVITE_SECRET or INVITE_SECRET_FILE is required in prod")
		}
		sealer, err := cryptox.NewEphemeralSealer(service.InviteTokenPurpose)
		if err != nil {
			return fmt.Errorf("failed to create invite sealer: %w", err)
		}
		app.logger.Warn("no invite secret configured, using an ephemeral one")
		app.sealer = sealer
		return nil
	}

	sealer, err := cryptox.NewSealer([]byte(secret), service.InviteTokenPurpose)
	if err != nil {
		return fmt.Errorf("failed to create invite sealer: %w", err)
	}
	app.sealer = sealer
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices(notifier notify.Notifier) {
	app.rosterService = &service.RosterService{Store: app.db}
	app.membershipService = &service.MembershipService{Store: app.db}
	app.userService = &service.UserService{Store: app.db}
	app.businessService = &service.BusinessService{Store: app.db}
	app.accessService = &service.AccessService{Store: app.db}
	app.inviteService = &service.InviteService{
		Store:          app.db,
		Sealer:         app.sealer,
		Notifier:       notifier,
		ConsoleBaseURL: app.cfg.ConsoleBaseURL,
		TTL:            app.cfg.InviteTTL,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
		httpx.DefaultCORSConfig(app.cfg.CORSAllowedOrigins),
	)

	router.RosterService = app.rosterService
	router.MembershipService = app.membershipService
	router.InviteService = app.inviteService
	router.UserService = app.userService
	router.BusinessService = app.businessService
	router.AccessService = app.accessService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
