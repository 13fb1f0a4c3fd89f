package session

import (
	"context"
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"smarta/internal/crypto"
	"smarta/internal/domain"
	"smarta/internal/navigation"
	"smarta/internal/pin"
)

// guarded actions carry a precondition and must go through the dedicated
// method instead of Act.
var guarded = map[domain.Action]string{
	domain.ActionLogin:       "Login",
	domain.ActionPinComplete: "SetupPin",
	domain.ActionPinSuccess:  "VerifyPin",
}

// dropsPin lists the actions that leave the user without a stored PIN.
var dropsPin = map[domain.Action]bool{
	domain.ActionSkip:    true,
	domain.ActionConfirm: true,
}

// Service implements domain.SessionService over the file stores.
type Service struct {
	mu sync.Mutex

	sessions domain.SessionStore
	pins     domain.PinStore
	creds    domain.CredentialStore
	settings domain.SettingsStore

	verifier pin.Verifier
	now      func() time.Time
	log      zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithVerifier replaces the stored-hash PIN check, e.g. with pin.AcceptAny.
func WithVerifier(v pin.Verifier) Option { return func(s *Service) { s.verifier = v } }

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// WithLogger sets the logger; the default discards.
func WithLogger(l zerolog.Logger) Option { return func(s *Service) { s.log = l } }

// New returns a session service over the given stores.
func New(
	sessions domain.SessionStore,
	pins domain.PinStore,
	creds domain.CredentialStore,
	settings domain.SettingsStore,
	opts ...Option,
) *Service {
	s := &Service{
		sessions: sessions,
		pins:     pins,
		creds:    creds,
		settings: settings,
		verifier: crypto.HashVerifier{Store: pins},
		now:      time.Now,
		log:      zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Current returns the session, applying the inactivity timeout. Reading a
// logged-in session counts as activity.
func (s *Service) Current(ctx context.Context) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.load()
	if err != nil || !sess.LoggedIn {
		return sess, err
	}
	return s.save(sess)
}

// Act applies a navigation action from the current screen.
func (s *Service) Act(ctx context.Context, action domain.Action) (domain.Session, error) {
	if method, ok := guarded[action]; ok {
		return domain.Session{}, fmt.Errorf("%s requires %s: %w", action, method, domain.ErrActionNotAllowed)
	}
	var pre func(*domain.Session) error
	if dropsPin[action] {
		pre = s.dropPin
	}
	return s.transition(ctx, action, pre)
}

// Navigate opens screen from the sidebar or the current screen's links.
// Unknown screens resolve to the dashboard.
func (s *Service) Navigate(ctx context.Context, screen domain.Screen) (domain.Session, error) {
	return s.transition(ctx, domain.Open(navigation.Resolve(screen.String())), nil)
}

// Login validates email, registers the credential on first use or checks
// the password, then moves on to PIN setup.
func (s *Service) Login(ctx context.Context, email, password string) (domain.Session, error) {
	email = strings.TrimSpace(email)
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return domain.Session{}, fmt.Errorf("%q: %w", email, domain.ErrInvalidEmail)
	}
	return s.transition(ctx, domain.ActionLogin, func(sess *domain.Session) error {
		if err := s.authenticate(email, password); err != nil {
			return err
		}
		sess.Email = email
		return nil
	})
}

func (s *Service) authenticate(email, password string) error {
	cred, ok, err := s.creds.LoadCredential(email)
	if err != nil {
		return err
	}
	if ok {
		return crypto.CheckPassword(cred.PassHash, password)
	}
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.creds.SaveCredential(domain.Credential{Email: email, PassHash: hash, CreatedAt: s.now()}); err != nil {
		return err
	}
	s.log.Info().Str("email", email).Msg("registered")
	return nil
}

// SetupPin runs the create/confirm flow and stores the PIN.
func (s *Service) SetupPin(ctx context.Context, digits, confirm string) (domain.Session, error) {
	return s.transition(ctx, domain.ActionPinComplete, func(sess *domain.Session) error {
		setup := pin.NewSetup()
		if r := setup.Enter(digits); r.Err != nil {
			return r.Err
		}
		r := setup.Enter(confirm)
		if r.Event != pin.EventCompleted {
			return r.Err
		}
		rec, err := crypto.HashPin(r.Pin)
		if err != nil {
			return err
		}
		if err := s.pins.SavePin(rec); err != nil {
			return err
		}
		sess.PinAttempts = 0
		return nil
	})
}

// SkipPin goes straight to the dashboard without a PIN.
func (s *Service) SkipPin(ctx context.Context) (domain.Session, error) {
	return s.transition(ctx, domain.ActionSkip, s.dropPin)
}

func (s *Service) dropPin(*domain.Session) error { return s.pins.DeletePin() }

// VerifyPin checks digits against the configured verifier. The failure
// count survives restarts; the last allowed failure returns to login.
func (s *Service) VerifyPin(ctx context.Context, digits string) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.load()
	if err != nil {
		return domain.Session{}, err
	}
	if sess.Screen != domain.ScreenVerifyPin {
		return sess, fmt.Errorf("%s on %s: %w", domain.ActionPinSuccess, sess.Screen, domain.ErrActionNotAllowed)
	}

	v := pin.NewVerify(s.verifier, sess.PinAttempts)
	r := v.Enter(digits)
	switch r.Event {
	case pin.EventSuccess:
		next, err := navigation.Apply(sess, domain.ActionPinSuccess)
		if err != nil {
			return sess, err
		}
		next.PinAttempts = 0
		s.log.Info().Str("email", next.Email).Msg("pin verified")
		return s.save(next)
	case pin.EventFailed:
		sess.PinAttempts = v.Attempts()
		s.log.Warn().Int("remaining", r.Remaining).Msg("wrong pin")
		if sess, err = s.save(sess); err != nil {
			return sess, err
		}
		return sess, fmt.Errorf("%w: %d attempts left", r.Err, r.Remaining)
	case pin.EventLocked:
		next, err := navigation.Apply(sess, domain.ActionBack)
		if err != nil {
			return sess, err
		}
		next.PinAttempts = 0
		next.LoggedIn = false
		s.log.Warn().Str("email", next.Email).Msg("pin locked, back to login")
		if next, err = s.save(next); err != nil {
			return next, err
		}
		return next, r.Err
	default:
		return sess, r.Err
	}
}

// ChangePin replaces the stored PIN after checking the current one.
func (s *Service) ChangePin(ctx context.Context, current, next, confirm string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.load()
	if err != nil {
		return err
	}
	if !sess.LoggedIn {
		return fmt.Errorf("change pin while logged out: %w", domain.ErrActionNotAllowed)
	}
	rec, ok, err := s.pins.LoadPin()
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNoPin
	}
	match, err := crypto.CheckPin(rec, current)
	if err != nil {
		return err
	}
	if !match {
		return domain.ErrWrongPin
	}

	setup := pin.NewSetup()
	if r := setup.Enter(next); r.Err != nil {
		return r.Err
	}
	r := setup.Enter(confirm)
	if r.Event != pin.EventCompleted {
		return r.Err
	}
	fresh, err := crypto.HashPin(r.Pin)
	if err != nil {
		return err
	}
	if err := s.pins.SavePin(fresh); err != nil {
		return err
	}
	sess.HasPin = true
	s.log.Info().Msg("pin changed")
	_, err = s.save(sess)
	return err
}

// Settings returns the security settings, defaults if none were saved.
func (s *Service) Settings(ctx context.Context) (domain.SecuritySettings, error) {
	if err := ctx.Err(); err != nil {
		return domain.SecuritySettings{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadSettings()
}

// UpdateSettings stores set. The timeout must be one of
// domain.SessionTimeouts.
func (s *Service) UpdateSettings(ctx context.Context, set domain.SecuritySettings) (domain.SecuritySettings, error) {
	if err := ctx.Err(); err != nil {
		return domain.SecuritySettings{}, err
	}
	if !slices.Contains(domain.SessionTimeouts, set.TimeoutMinutes) {
		return domain.SecuritySettings{}, fmt.Errorf("%d minutes: %w", set.TimeoutMinutes, domain.ErrInvalidTimeout)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.settings.SaveSettings(set); err != nil {
		return domain.SecuritySettings{}, err
	}
	return set, nil
}

// Logout confirms logout, passing through the confirmation screen if the
// user is not already on it. The stored PIN is removed.
func (s *Service) Logout(ctx context.Context) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.load()
	if err != nil {
		return domain.Session{}, err
	}
	if sess.Screen != domain.ScreenLogout {
		if sess, err = navigation.Apply(sess, domain.ActionLogout); err != nil {
			return sess, err
		}
	}
	email := sess.Email
	next, err := navigation.Apply(sess, domain.ActionConfirm)
	if err != nil {
		return sess, err
	}
	if err := s.pins.DeletePin(); err != nil {
		return sess, err
	}
	s.log.Info().Str("email", email).Msg("logged out")
	return s.save(next)
}

// Reset returns to the initial state: onboarding, no PIN, default
// settings. Registered credentials are kept.
func (s *Service) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.pins.DeletePin(); err != nil {
		return err
	}
	if err := s.settings.SaveSettings(domain.DefaultSecuritySettings()); err != nil {
		return err
	}
	s.log.Info().Msg("session reset")
	return s.sessions.SaveSession(domain.NewSession())
}

// transition loads the session, applies action and, if pre succeeds,
// persists the result. pre runs before the screen changes and may adjust
// the session.
func (s *Service) transition(ctx context.Context, action domain.Action, pre func(*domain.Session) error) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.load()
	if err != nil {
		return domain.Session{}, err
	}
	next, err := navigation.Apply(sess, action)
	if err != nil {
		return sess, err
	}
	if pre != nil {
		if err := pre(&next); err != nil {
			return sess, err
		}
	}
	s.log.Debug().Str("action", string(action)).Str("from", sess.Screen.String()).Str("to", next.Screen.String()).Msg("navigate")
	return s.save(next)
}

// load reads the session and expires it if it has been idle too long.
func (s *Service) load() (domain.Session, error) {
	sess, ok, err := s.sessions.LoadSession()
	if err != nil {
		return domain.Session{}, err
	}
	if !ok {
		return domain.NewSession(), nil
	}
	sess.Screen = navigation.Resolve(sess.Screen.String())
	if !sess.LoggedIn || sess.LastActive.IsZero() {
		return sess, nil
	}

	set, err := s.loadSettings()
	if err != nil {
		return domain.Session{}, err
	}
	idle := s.now().Sub(sess.LastActive)
	if idle <= set.Timeout() {
		return sess, nil
	}

	sess.LoggedIn = false
	sess.PinAttempts = 0
	if sess.HasPin {
		sess.Screen = domain.ScreenVerifyPin
	} else {
		sess.Screen = domain.ScreenLogin
	}
	s.log.Info().Dur("idle", idle).Str("screen", sess.Screen.String()).Msg("session expired")
	if err := s.sessions.SaveSession(sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

// save stamps LastActive and persists sess.
func (s *Service) save(sess domain.Session) (domain.Session, error) {
	sess.LastActive = s.now()
	if err := s.sessions.SaveSession(sess); err != nil {
		return sess, err
	}
	return sess, nil
}

func (s *Service) loadSettings() (domain.SecuritySettings, error) {
	set, ok, err := s.settings.LoadSettings()
	if err != nil {
		return domain.SecuritySettings{}, err
	}
	if !ok {
		return domain.DefaultSecuritySettings(), nil
	}
	return set, nil
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)
