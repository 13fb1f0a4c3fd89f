package domain

import "time"

// Screen identifies which view is active.
type Screen string

const (
	ScreenOnboarding    Screen = "onboarding"
	ScreenTerms         Screen = "terms"
	ScreenLogin         Screen = "login"
	ScreenSetupPin      Screen = "setup-pin"
	ScreenVerifyPin     Screen = "verify-pin"
	ScreenDashboard     Screen = "dashboard"
	ScreenTransactions  Screen = "transactions"
	ScreenInsight       Screen = "insight"
	ScreenCoach         Screen = "coach"
	ScreenGoal          Screen = "goal"
	ScreenNotifications Screen = "notifications"
	ScreenProfile       Screen = "profile"
	ScreenSecurity      Screen = "security"
	ScreenLinkBanking   Screen = "link-banking"
	ScreenLogout        Screen = "logout"
)

// Screens lists every screen in flow order.
var Screens = []Screen{
	ScreenOnboarding,
	ScreenTerms,
	ScreenLogin,
	ScreenSetupPin,
	ScreenVerifyPin,
	ScreenDashboard,
	ScreenTransactions,
	ScreenInsight,
	ScreenCoach,
	ScreenGoal,
	ScreenNotifications,
	ScreenProfile,
	ScreenSecurity,
	ScreenLinkBanking,
	ScreenLogout,
}

func (s Screen) String() string { return string(s) }

// Session is the per-user navigation state plus the two session flags.
type Session struct {
	Screen      Screen    `json:"screen"`
	LoggedIn    bool      `json:"logged_in"`
	HasPin      bool      `json:"has_pin"`
	Email       string    `json:"email,omitempty"`
	PinAttempts int       `json:"pin_attempts"`
	LastActive  time.Time `json:"last_active"`
}

// NewSession returns the state a fresh install starts in.
func NewSession() Session {
	return Session{Screen: ScreenOnboarding}
}

// SecuritySettings holds the toggles on the security screen.
type SecuritySettings struct {
	TwoFactor      bool `json:"two_factor"`
	Biometric      bool `json:"biometric"`
	TimeoutMinutes int  `json:"timeout_minutes"`
}

// SessionTimeouts are the inactivity timeouts a user can pick, in minutes.
var SessionTimeouts = []int{5, 15, 30, 60}

// DefaultSecuritySettings mirrors a new account: 2FA on, biometrics off,
// 15 minute timeout.
func DefaultSecuritySettings() SecuritySettings {
	return SecuritySettings{TwoFactor: true, TimeoutMinutes: 15}
}

// Timeout returns the inactivity timeout as a duration.
func (s SecuritySettings) Timeout() time.Duration {
	return time.Duration(s.TimeoutMinutes) * time.Minute
}

// Credential is a registered login.
type Credential struct {
	Email     string    `json:"email"`
	PassHash  string    `json:"pass_hash"`
	CreatedAt time.Time `json:"created_at"`
}

// PinRecord is the stored, one-way hashed PIN with its KDF parameters.
type PinRecord struct {
	V     int       `json:"v"`
	Salt  []byte    `json:"salt"`
	N     int       `json:"scrypt_N"`
	R     int       `json:"scrypt_r"`
	P     int       `json:"scrypt_p"`
	Hash  []byte    `json:"hash"`
	SetAt time.Time `json:"set_at"`
}
