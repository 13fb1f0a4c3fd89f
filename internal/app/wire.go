package app

import (
	"os"

	"github.com/rs/zerolog"

	"smarta/internal/domain"
	"smarta/internal/pin"
	bankingsvc "smarta/internal/services/banking"
	coachsvc "smarta/internal/services/coach"
	sessionsvc "smarta/internal/services/session"
	"smarta/internal/store"
)

// Wire bundles the stores and services built from Config.
type Wire struct {
	Config   Config
	Log      zerolog.Logger
	Sessions domain.SessionService
	Banking  domain.BankingService
	Coach    *coachsvc.Service
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log zerolog.Logger) (*Wire, error) {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	// File-based stores
	sessionStore := store.NewSessionFileStore(cfg.Home)
	pinStore := store.NewPinFileStore(cfg.Home)
	credentialStore := store.NewCredentialFileStore(cfg.Home)
	settingsStore := store.NewSettingsFileStore(cfg.Home)
	accountStore := store.NewAccountFileStore(cfg.Home)
	chatStore := store.NewChatFileStore(cfg.Home)

	sessionOpts := []sessionsvc.Option{sessionsvc.WithLogger(Component(log, "session"))}
	if cfg.AcceptAnyPin {
		sessionOpts = append(sessionOpts, sessionsvc.WithVerifier(pin.AcceptAny))
	}

	coach, err := coachsvc.New(chatStore,
		coachsvc.WithDelay(cfg.CoachDelay),
		coachsvc.WithLogger(Component(log, "coach")),
	)
	if err != nil {
		return nil, err
	}

	return &Wire{
		Config:   cfg,
		Log:      log,
		Sessions: sessionsvc.New(sessionStore, pinStore, credentialStore, settingsStore, sessionOpts...),
		Banking:  bankingsvc.New(accountStore, bankingsvc.WithLogger(Component(log, "banking"))),
		Coach:    coach,
	}, nil
}

// Close flushes pending coach replies.
func (w *Wire) Close() error { return w.Coach.Close() }
