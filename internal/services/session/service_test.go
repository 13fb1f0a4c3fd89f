package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"smarta/internal/domain"
	"smarta/internal/pin"
	"smarta/internal/services/session"
	"smarta/internal/store"
)

const (
	email    = "budi@example.com"
	password = "rahasia123"
	goodPin  = "123456"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newService(t *testing.T, home string, clk *clock, opts ...session.Option) *session.Service {
	t.Helper()
	opts = append([]session.Option{session.WithClock(clk.now)}, opts...)
	return session.New(
		store.NewSessionFileStore(home),
		store.NewPinFileStore(home),
		store.NewCredentialFileStore(home),
		store.NewSettingsFileStore(home),
		opts...,
	)
}

func mustAct(t *testing.T, svc *session.Service, a domain.Action) domain.Session {
	t.Helper()
	s, err := svc.Act(context.Background(), a)
	if err != nil {
		t.Fatalf("act %s: %v", a, err)
	}
	return s
}

// toSetupPin walks onboarding, terms and login.
func toSetupPin(t *testing.T, svc *session.Service) domain.Session {
	t.Helper()
	mustAct(t, svc, domain.ActionStart)
	mustAct(t, svc, domain.ActionAccept)
	s, err := svc.Login(context.Background(), email, password)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return s
}

// toDashboard sets goodPin and verifies it.
func toDashboard(t *testing.T, svc *session.Service) domain.Session {
	t.Helper()
	ctx := context.Background()
	toSetupPin(t, svc)
	if _, err := svc.SetupPin(ctx, goodPin, goodPin); err != nil {
		t.Fatalf("setup pin: %v", err)
	}
	s, err := svc.VerifyPin(ctx, goodPin)
	if err != nil {
		t.Fatalf("verify pin: %v", err)
	}
	return s
}

func start() *clock { return &clock{t: time.Date(2025, 12, 20, 9, 0, 0, 0, time.UTC)} }

func TestFlow_HappyPath(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, t.TempDir(), start())

	s, err := svc.Current(ctx)
	if err != nil || s.Screen != domain.ScreenOnboarding {
		t.Fatalf("initial: %+v %v", s, err)
	}

	s = toSetupPin(t, svc)
	if s.Screen != domain.ScreenSetupPin || s.Email != email || s.LoggedIn {
		t.Fatalf("after login: %+v", s)
	}

	s, err = svc.SetupPin(ctx, goodPin, goodPin)
	if err != nil {
		t.Fatalf("setup pin: %v", err)
	}
	if s.Screen != domain.ScreenVerifyPin || !s.HasPin {
		t.Fatalf("after setup: %+v", s)
	}

	s, err = svc.VerifyPin(ctx, goodPin)
	if err != nil {
		t.Fatalf("verify pin: %v", err)
	}
	if s.Screen != domain.ScreenDashboard || !s.LoggedIn || s.PinAttempts != 0 {
		t.Fatalf("after verify: %+v", s)
	}
}

func TestAct_GuardedActionsRejected(t *testing.T) {
	svc := newService(t, t.TempDir(), start())
	toSetupPin(t, svc)

	for _, a := range []domain.Action{domain.ActionLogin, domain.ActionPinComplete, domain.ActionPinSuccess} {
		if _, err := svc.Act(context.Background(), a); !errors.Is(err, domain.ErrActionNotAllowed) {
			t.Fatalf("Act(%s): want ErrActionNotAllowed, got %v", a, err)
		}
	}
}

func TestAct_LogoutAndSkipDropPinRecord(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()
	svc := newService(t, home, start())
	toDashboard(t, svc)

	mustAct(t, svc, domain.Open(domain.ScreenProfile))
	mustAct(t, svc, domain.ActionLogout)
	if s := mustAct(t, svc, domain.ActionConfirm); s.HasPin || s.LoggedIn {
		t.Fatalf("after confirm: %+v", s)
	}
	if _, ok, _ := store.NewPinFileStore(home).LoadPin(); ok {
		t.Fatal("pin record survived confirm")
	}

	toSetupPin(t, svc)
	mustAct(t, svc, domain.ActionSkip)
	if err := svc.ChangePin(ctx, goodPin, "654321", "654321"); !errors.Is(err, domain.ErrNoPin) {
		t.Fatalf("change after skip: want ErrNoPin, got %v", err)
	}
}

func TestAct_UndeclaredKeepsScreen(t *testing.T) {
	svc := newService(t, t.TempDir(), start())
	s, err := svc.Act(context.Background(), domain.ActionBack)
	if !errors.Is(err, domain.ErrActionNotAllowed) {
		t.Fatalf("want ErrActionNotAllowed, got %v", err)
	}
	if s.Screen != domain.ScreenOnboarding {
		t.Fatalf("screen = %s", s.Screen)
	}
}

func TestLogin_Errors(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()
	svc := newService(t, home, start())
	mustAct(t, svc, domain.ActionStart)
	mustAct(t, svc, domain.ActionAccept)

	if _, err := svc.Login(ctx, "not-an-email", password); !errors.Is(err, domain.ErrInvalidEmail) {
		t.Fatalf("want ErrInvalidEmail, got %v", err)
	}
	if _, err := svc.Login(ctx, email, "short"); !errors.Is(err, domain.ErrWeakPassword) {
		t.Fatalf("want ErrWeakPassword, got %v", err)
	}
	if _, err := svc.Login(ctx, email, password); err != nil {
		t.Fatalf("register: %v", err)
	}

	// A second login with the wrong password fails and stays on login.
	if _, err := svc.Act(ctx, domain.ActionSkip); err != nil {
		t.Fatalf("skip: %v", err)
	}
	if _, err := svc.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	mustAct(t, svc, domain.ActionStart)
	mustAct(t, svc, domain.ActionAccept)
	s, err := svc.Login(ctx, email, "wrong-password")
	if !errors.Is(err, domain.ErrWrongPassword) {
		t.Fatalf("want ErrWrongPassword, got %v", err)
	}
	if s.Screen != domain.ScreenLogin {
		t.Fatalf("screen = %s", s.Screen)
	}
}

func TestLogin_OnlyFromLoginScreen(t *testing.T) {
	svc := newService(t, t.TempDir(), start())
	if _, err := svc.Login(context.Background(), email, password); !errors.Is(err, domain.ErrActionNotAllowed) {
		t.Fatalf("want ErrActionNotAllowed, got %v", err)
	}
}

func TestSetupPin_Errors(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, t.TempDir(), start())
	toSetupPin(t, svc)

	if _, err := svc.SetupPin(ctx, "123", "123"); !errors.Is(err, domain.ErrIncompletePin) {
		t.Fatalf("want ErrIncompletePin, got %v", err)
	}
	s, err := svc.SetupPin(ctx, goodPin, "654321")
	if !errors.Is(err, domain.ErrPinMismatch) {
		t.Fatalf("want ErrPinMismatch, got %v", err)
	}
	if s.Screen != domain.ScreenSetupPin || s.HasPin {
		t.Fatalf("after mismatch: %+v", s)
	}
}

func TestSkipPin(t *testing.T) {
	svc := newService(t, t.TempDir(), start())
	toSetupPin(t, svc)

	s, err := svc.SkipPin(context.Background())
	if err != nil {
		t.Fatalf("skip: %v", err)
	}
	if s.Screen != domain.ScreenDashboard || !s.LoggedIn || s.HasPin {
		t.Fatalf("after skip: %+v", s)
	}
}

func TestVerifyPin_LocksAfterThreeFailures(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()
	clk := start()
	svc := newService(t, home, clk)
	toSetupPin(t, svc)
	if _, err := svc.SetupPin(ctx, goodPin, goodPin); err != nil {
		t.Fatalf("setup: %v", err)
	}

	s, err := svc.VerifyPin(ctx, "000000")
	if !errors.Is(err, domain.ErrWrongPin) || s.PinAttempts != 1 {
		t.Fatalf("first failure: %+v %v", s, err)
	}

	// The count survives a restart.
	svc = newService(t, home, clk)
	s, err = svc.VerifyPin(ctx, "111111")
	if !errors.Is(err, domain.ErrWrongPin) || s.PinAttempts != 2 {
		t.Fatalf("second failure: %+v %v", s, err)
	}

	s, err = svc.VerifyPin(ctx, "222222")
	if !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("want ErrTooManyAttempts, got %v", err)
	}
	if s.Screen != domain.ScreenLogin || s.PinAttempts != 0 || s.LoggedIn {
		t.Fatalf("after lock: %+v", s)
	}
}

func TestVerifyPin_SuccessResetsAttempts(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, t.TempDir(), start())
	toSetupPin(t, svc)
	if _, err := svc.SetupPin(ctx, goodPin, goodPin); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := svc.VerifyPin(ctx, "999999"); !errors.Is(err, domain.ErrWrongPin) {
		t.Fatalf("want ErrWrongPin, got %v", err)
	}
	s, err := svc.VerifyPin(ctx, goodPin)
	if err != nil || s.PinAttempts != 0 || s.Screen != domain.ScreenDashboard {
		t.Fatalf("after success: %+v %v", s, err)
	}
}

func TestVerifyPin_AcceptAny(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, t.TempDir(), start(), session.WithVerifier(pin.AcceptAny))
	toSetupPin(t, svc)
	if _, err := svc.SetupPin(ctx, goodPin, goodPin); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := svc.VerifyPin(ctx, "987654"); err != nil {
		t.Fatalf("accept-any rejected a valid pin: %v", err)
	}
}

func TestVerifyPin_WrongScreen(t *testing.T) {
	svc := newService(t, t.TempDir(), start())
	if _, err := svc.VerifyPin(context.Background(), goodPin); !errors.Is(err, domain.ErrActionNotAllowed) {
		t.Fatalf("want ErrActionNotAllowed, got %v", err)
	}
}

func TestInactivity_WithPinGoesToVerify(t *testing.T) {
	ctx := context.Background()
	clk := start()
	svc := newService(t, t.TempDir(), clk)
	toDashboard(t, svc)

	clk.advance(10 * time.Minute)
	if s, _ := svc.Current(ctx); s.Screen != domain.ScreenDashboard || !s.LoggedIn {
		t.Fatalf("expired too early: %+v", s)
	}

	clk.advance(16 * time.Minute)
	s, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if s.Screen != domain.ScreenVerifyPin || s.LoggedIn || !s.HasPin {
		t.Fatalf("after timeout: %+v", s)
	}
	if s, err = svc.VerifyPin(ctx, goodPin); err != nil || s.Screen != domain.ScreenDashboard {
		t.Fatalf("re-verify: %+v %v", s, err)
	}
}

func TestInactivity_ReadsKeepSessionAlive(t *testing.T) {
	ctx := context.Background()
	clk := start()
	svc := newService(t, t.TempDir(), clk)
	toDashboard(t, svc)

	for i := 0; i < 3; i++ {
		clk.advance(10 * time.Minute)
		s, err := svc.Current(ctx)
		if err != nil || !s.LoggedIn || s.Screen != domain.ScreenDashboard {
			t.Fatalf("read %d after %d minutes: %+v %v", i, (i+1)*10, s, err)
		}
	}
}

func TestInactivity_WithoutPinGoesToLogin(t *testing.T) {
	ctx := context.Background()
	clk := start()
	svc := newService(t, t.TempDir(), clk)
	toSetupPin(t, svc)
	if _, err := svc.SkipPin(ctx); err != nil {
		t.Fatalf("skip: %v", err)
	}
	if _, err := svc.UpdateSettings(ctx, domain.SecuritySettings{TimeoutMinutes: 5}); err != nil {
		t.Fatalf("settings: %v", err)
	}

	clk.advance(6 * time.Minute)
	s, err := svc.Current(ctx)
	if err != nil || s.Screen != domain.ScreenLogin || s.LoggedIn {
		t.Fatalf("after timeout: %+v %v", s, err)
	}
}

func TestNavigate(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, t.TempDir(), start())

	if _, err := svc.Navigate(ctx, domain.ScreenDashboard); !errors.Is(err, domain.ErrActionNotAllowed) {
		t.Fatalf("logged-out sidebar jump: %v", err)
	}

	toDashboard(t, svc)
	s, err := svc.Navigate(ctx, domain.ScreenInsight)
	if err != nil || s.Screen != domain.ScreenInsight {
		t.Fatalf("open insight: %+v %v", s, err)
	}
	// Sidebar jump straight to security from insight.
	s, err = svc.Navigate(ctx, domain.ScreenSecurity)
	if err != nil || s.Screen != domain.ScreenSecurity {
		t.Fatalf("open security: %+v %v", s, err)
	}
	// Unknown screens resolve to the dashboard.
	s, err = svc.Navigate(ctx, domain.Screen("nowhere"))
	if err != nil || s.Screen != domain.ScreenDashboard {
		t.Fatalf("unknown screen: %+v %v", s, err)
	}
}

func TestLogout_ClearsState(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()
	svc := newService(t, home, start())
	toDashboard(t, svc)

	s, err := svc.Logout(ctx)
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if s.Screen != domain.ScreenOnboarding || s.LoggedIn || s.HasPin || s.Email != "" {
		t.Fatalf("after logout: %+v", s)
	}
	if _, ok, _ := store.NewPinFileStore(home).LoadPin(); ok {
		t.Fatal("pin record survived logout")
	}
}

func TestLogout_Cancel(t *testing.T) {
	svc := newService(t, t.TempDir(), start())
	toDashboard(t, svc)
	mustAct(t, svc, domain.Open(domain.ScreenProfile))
	mustAct(t, svc, domain.ActionLogout)
	if s := mustAct(t, svc, domain.ActionCancel); s.Screen != domain.ScreenProfile || !s.LoggedIn {
		t.Fatalf("after cancel: %+v", s)
	}
}

func TestChangePin(t *testing.T) {
	ctx := context.Background()
	clk := start()
	svc := newService(t, t.TempDir(), clk)
	toDashboard(t, svc)

	if err := svc.ChangePin(ctx, "000000", "654321", "654321"); !errors.Is(err, domain.ErrWrongPin) {
		t.Fatalf("want ErrWrongPin, got %v", err)
	}
	if err := svc.ChangePin(ctx, goodPin, "654321", "111111"); !errors.Is(err, domain.ErrPinMismatch) {
		t.Fatalf("want ErrPinMismatch, got %v", err)
	}
	if err := svc.ChangePin(ctx, goodPin, "654321", "654321"); err != nil {
		t.Fatalf("change: %v", err)
	}

	clk.advance(time.Hour)
	if _, err := svc.VerifyPin(ctx, goodPin); !errors.Is(err, domain.ErrWrongPin) {
		t.Fatalf("old pin still accepted: %v", err)
	}
	if s, err := svc.VerifyPin(ctx, "654321"); err != nil || !s.LoggedIn {
		t.Fatalf("new pin: %+v %v", s, err)
	}
}

func TestSettings(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, t.TempDir(), start())

	got, err := svc.Settings(ctx)
	if err != nil || got != domain.DefaultSecuritySettings() {
		t.Fatalf("defaults: %+v %v", got, err)
	}
	if _, err := svc.UpdateSettings(ctx, domain.SecuritySettings{TimeoutMinutes: 7}); !errors.Is(err, domain.ErrInvalidTimeout) {
		t.Fatalf("want ErrInvalidTimeout, got %v", err)
	}
	want := domain.SecuritySettings{Biometric: true, TimeoutMinutes: 60}
	if _, err := svc.UpdateSettings(ctx, want); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got, _ := svc.Settings(ctx); got != want {
		t.Fatalf("settings = %+v", got)
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, t.TempDir(), start())
	toDashboard(t, svc)

	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	s, err := svc.Current(ctx)
	if err != nil || s.Screen != domain.ScreenOnboarding || s.LoggedIn || s.HasPin {
		t.Fatalf("after reset: %+v %v", s, err)
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := newService(t, t.TempDir(), start())
	if _, err := svc.Current(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
