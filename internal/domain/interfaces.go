package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// SessionStore persists the navigation session.
type SessionStore interface {
	SaveSession(s Session) error
	LoadSession() (Session, bool, error)
}

// PinStore persists the hashed PIN.
type PinStore interface {
	SavePin(rec PinRecord) error
	LoadPin() (PinRecord, bool, error)
	DeletePin() error
}

// CredentialStore persists login credentials keyed by email.
type CredentialStore interface {
	SaveCredential(c Credential) error
	LoadCredential(email string) (Credential, bool, error)
}

// SettingsStore persists security settings.
type SettingsStore interface {
	SaveSettings(s SecuritySettings) error
	LoadSettings() (SecuritySettings, bool, error)
}

// AccountStore persists the bank and e-wallet account list.
type AccountStore interface {
	SaveAccounts(accounts []BankAccount) error
	LoadAccounts() ([]BankAccount, bool, error)
}

// ChatStore persists the coach conversation.
type ChatStore interface {
	SaveMessages(msgs []ChatMessage) error
	LoadMessages() ([]ChatMessage, bool, error)
}

// SessionService drives the screen flow and its side effects.
type SessionService interface {
	Current(ctx context.Context) (Session, error)
	Act(ctx context.Context, action Action) (Session, error)
	Navigate(ctx context.Context, screen Screen) (Session, error)
	Login(ctx context.Context, email, password string) (Session, error)
	SetupPin(ctx context.Context, pin, confirm string) (Session, error)
	SkipPin(ctx context.Context) (Session, error)
	VerifyPin(ctx context.Context, pin string) (Session, error)
	ChangePin(ctx context.Context, current, next, confirm string) error
	Settings(ctx context.Context) (SecuritySettings, error)
	UpdateSettings(ctx context.Context, s SecuritySettings) (SecuritySettings, error)
	Logout(ctx context.Context) (Session, error)
	Reset(ctx context.Context) error
}

// AccountOverview splits accounts into connected and available ones.
type AccountOverview struct {
	Connected []BankAccount   `json:"connected"`
	Available []BankAccount   `json:"available"`
	Total     decimal.Decimal `json:"total"`
}

// BankingService links bank and e-wallet accounts.
type BankingService interface {
	Accounts(ctx context.Context) (AccountOverview, error)
	Connect(ctx context.Context, id string) (BankAccount, error)
	Disconnect(ctx context.Context, id string) (BankAccount, error)
	Link(ctx context.Context, kind AccountType, provider string) (BankAccount, error)
}

// CoachService is the chat coach. Ask returns the user's message at once;
// the reply arrives on the channel after the simulated latency.
type CoachService interface {
	Ask(ctx context.Context, text string) (ChatMessage, <-chan ChatMessage, error)
	History(ctx context.Context) ([]ChatMessage, error)
	Close() error
}
