// Package telegram answers chat messages through the finance coach.
//
// Commands: /start (or /help) greets, /saran lists suggested questions,
// /saldo reports the connected balance. Any other text is forwarded to the
// coach and the reply is sent back. /saldo and coach questions need a
// logged-in session.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"smarta/internal/coach"
	"smarta/internal/domain"
	"smarta/internal/finance"
)

// Sender is the part of *tgbotapi.BotAPI the bot uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// ErrNotLoggedIn is reported for requests that need a session.
var ErrNotLoggedIn = errors.New("belum login, masuk lewat aplikasi SMARTA terlebih dahulu")

// Bot routes updates to the coach and banking services.
type Bot struct {
	api      Sender
	sessions domain.SessionService
	coach    domain.CoachService
	banking  domain.BankingService
	log      zerolog.Logger
}

// New returns a Bot that replies through api.
func New(api Sender, sessions domain.SessionService, coachSvc domain.CoachService, banking domain.BankingService, log zerolog.Logger) *Bot {
	return &Bot{api: api, sessions: sessions, coach: coachSvc, banking: banking, log: log}
}

// Run handles updates until ctx is done or updates is closed.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case u, ok := <-updates:
			if !ok {
				return nil
			}
			if u.Message == nil {
				continue
			}
			if err := b.Handle(ctx, u.Message); err != nil {
				b.log.Error().Err(err).Int64("chat", u.Message.Chat.ID).Msg("handle message")
			}
		}
	}
}

// Handle answers one message.
func (b *Bot) Handle(ctx context.Context, msg *tgbotapi.Message) error {
	text, err := b.reply(ctx, msg)
	if err != nil {
		text = "❌ " + err.Error()
	}
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ReplyToMessageID = msg.MessageID
	_, sendErr := b.api.Send(out)
	return sendErr
}

func (b *Bot) reply(ctx context.Context, msg *tgbotapi.Message) (string, error) {
	if msg.IsCommand() {
		switch msg.Command() {
		case "start", "help":
			return coach.Greeting + "\n\n/saran - pertanyaan yang sering diajukan\n/saldo - total saldo akun terhubung", nil
		case "saran":
			var sb strings.Builder
			sb.WriteString("Pertanyaan yang sering diajukan:\n")
			for _, q := range coach.SuggestedQuestions() {
				fmt.Fprintf(&sb, "• %s\n", q)
			}
			return sb.String(), nil
		case "saldo":
			if err := b.requireLogin(ctx); err != nil {
				return "", err
			}
			ov, err := b.banking.Accounts(ctx)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("💰 Total saldo (%d akun): %s", len(ov.Connected), finance.FormatIDR(ov.Total)), nil
		default:
			return "ℹ️ Gunakan /help untuk daftar perintah", nil
		}
	}

	if err := b.requireLogin(ctx); err != nil {
		return "", err
	}
	_, replyCh, err := b.coach.Ask(ctx, msg.Text)
	if err != nil {
		return "", err
	}
	select {
	case ai := <-replyCh:
		return ai.Text, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (b *Bot) requireLogin(ctx context.Context) error {
	sess, err := b.sessions.Current(ctx)
	if err != nil {
		return err
	}
	if !sess.LoggedIn {
		return ErrNotLoggedIn
	}
	return nil
}
