package coach

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"smarta/internal/coach"
	"smarta/internal/domain"
)

// Service implements domain.CoachService.
type Service struct {
	conv *coach.Conversation
	log  zerolog.Logger
}

// Option configures a Service.
type Option func(*config)

type config struct {
	delay time.Duration
	now   func() time.Time
	log   zerolog.Logger
}

// WithDelay sets the simulated reply latency.
func WithDelay(d time.Duration) Option { return func(c *config) { c.delay = d } }

// WithClock overrides time.Now for message timestamps.
func WithClock(now func() time.Time) Option { return func(c *config) { c.now = now } }

// WithLogger sets the logger; the default discards.
func WithLogger(l zerolog.Logger) Option { return func(c *config) { c.log = l } }

// New loads the stored transcript from store and starts the conversation.
// The caller must Close the service to flush pending replies.
func New(store domain.ChatStore, opts ...Option) (*Service, error) {
	cfg := config{delay: coach.DefaultDelay, now: time.Now, log: zerolog.Nop()}
	for _, o := range opts {
		o(&cfg)
	}

	history, _, err := store.LoadMessages()
	if err != nil {
		return nil, err
	}

	s := &Service{log: cfg.log}
	s.conv = coach.NewConversation(
		coach.WithDelay(cfg.delay),
		coach.WithClock(cfg.now),
		coach.WithHistory(history),
		coach.OnChange(func(msgs []domain.ChatMessage) {
			if err := store.SaveMessages(msgs); err != nil {
				s.log.Error().Err(err).Msg("save chat")
			}
		}),
	)
	return s, nil
}

// Ask sends text to the coach. The reply is delivered on the channel once
// it has been appended and saved.
func (s *Service) Ask(ctx context.Context, text string) (domain.ChatMessage, <-chan domain.ChatMessage, error) {
	if err := ctx.Err(); err != nil {
		return domain.ChatMessage{}, nil, err
	}
	msg, reply, err := s.conv.Send(text)
	if err != nil {
		return domain.ChatMessage{}, nil, err
	}
	s.log.Debug().Int("id", msg.ID).Str("topic", string(coach.Respond(text).Topic)).Msg("question")
	return msg, reply, nil
}

// History returns the transcript.
func (s *Service) History(ctx context.Context) ([]domain.ChatMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.conv.Messages(), nil
}

// Suggestions returns the suggested questions while the conversation is
// fresh, nil afterwards.
func (s *Service) Suggestions() []string {
	if !s.conv.ShowSuggestions() {
		return nil
	}
	return coach.SuggestedQuestions()
}

// Close waits for pending replies.
func (s *Service) Close() error { return s.conv.Close() }

// Compile-time assertion that Service implements domain.CoachService.
var _ domain.CoachService = (*Service)(nil)
