package banking

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"smarta/internal/domain"
	"smarta/internal/finance"
)

// Service implements domain.BankingService.
type Service struct {
	mu    sync.Mutex
	store domain.AccountStore
	newID func() string
	log   zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithIDs overrides the UUID generator for linked accounts.
func WithIDs(next func() string) Option { return func(s *Service) { s.newID = next } }

// WithLogger sets the logger; the default discards.
func WithLogger(l zerolog.Logger) Option { return func(s *Service) { s.log = l } }

// New returns a banking service backed by store.
func New(store domain.AccountStore, opts ...Option) *Service {
	s := &Service{store: store, newID: uuid.NewString, log: zerolog.Nop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Accounts splits the accounts into connected and available and totals the
// connected balances.
func (s *Service) Accounts(ctx context.Context) (domain.AccountOverview, error) {
	if err := ctx.Err(); err != nil {
		return domain.AccountOverview{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.load()
	if err != nil {
		return domain.AccountOverview{}, err
	}
	return overview(accounts), nil
}

// Connect marks the account connected.
func (s *Service) Connect(ctx context.Context, id string) (domain.BankAccount, error) {
	return s.setConnected(ctx, id, true)
}

// Disconnect marks the account available again.
func (s *Service) Disconnect(ctx context.Context, id string) (domain.BankAccount, error) {
	return s.setConnected(ctx, id, false)
}

// Link adds a provider from the catalog as a new, unconnected account.
// Provider matches the catalog ID or display name, ignoring case.
func (s *Service) Link(ctx context.Context, kind domain.AccountType, provider string) (domain.BankAccount, error) {
	if err := ctx.Err(); err != nil {
		return domain.BankAccount{}, err
	}
	p, ok := finance.FindProvider(kind, provider)
	if !ok {
		return domain.BankAccount{}, fmt.Errorf("%s %q: %w", kind, provider, domain.ErrUnknownProvider)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.load()
	if err != nil {
		return domain.BankAccount{}, err
	}
	for _, a := range accounts {
		if a.Type == p.Type && strings.EqualFold(a.Name, p.Name) {
			return a, fmt.Errorf("%s: %w", p.Name, domain.ErrAlreadyLinked)
		}
	}

	acc := domain.BankAccount{
		ID:      s.newID(),
		Name:    p.Name,
		Type:    p.Type,
		Balance: decimal.Zero,
	}
	accounts = append(accounts, acc)
	if err := s.store.SaveAccounts(accounts); err != nil {
		return domain.BankAccount{}, err
	}
	s.log.Info().Str("id", acc.ID).Str("provider", p.Name).Msg("account linked")
	return acc, nil
}

func (s *Service) setConnected(ctx context.Context, id string, connected bool) (domain.BankAccount, error) {
	if err := ctx.Err(); err != nil {
		return domain.BankAccount{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.load()
	if err != nil {
		return domain.BankAccount{}, err
	}
	i := indexOf(accounts, id)
	if i < 0 {
		return domain.BankAccount{}, fmt.Errorf("account %q: %w", id, domain.ErrNotFound)
	}
	switch {
	case connected && accounts[i].Connected:
		return accounts[i], fmt.Errorf("%s: %w", accounts[i].Name, domain.ErrAlreadyConnected)
	case !connected && !accounts[i].Connected:
		return accounts[i], fmt.Errorf("%s: %w", accounts[i].Name, domain.ErrNotConnected)
	}

	accounts[i].Connected = connected
	if err := s.store.SaveAccounts(accounts); err != nil {
		return domain.BankAccount{}, err
	}
	s.log.Info().Str("id", id).Bool("connected", connected).Msg("account updated")
	return accounts[i], nil
}

func (s *Service) load() ([]domain.BankAccount, error) {
	accounts, ok, err := s.store.LoadAccounts()
	if err != nil {
		return nil, err
	}
	if !ok {
		return finance.SeedAccounts(), nil
	}
	return accounts, nil
}

func indexOf(accounts []domain.BankAccount, id string) int {
	for i, a := range accounts {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func overview(accounts []domain.BankAccount) domain.AccountOverview {
	ov := domain.AccountOverview{
		Connected: []domain.BankAccount{},
		Available: []domain.BankAccount{},
		Total:     decimal.Zero,
	}
	for _, a := range accounts {
		if a.Connected {
			ov.Connected = append(ov.Connected, a)
			ov.Total = ov.Total.Add(a.Balance)
		} else {
			ov.Available = append(ov.Available, a)
		}
	}
	return ov
}

// Compile-time assertion that Service implements domain.BankingService.
var _ domain.BankingService = (*Service)(nil)
