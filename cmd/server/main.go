package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"smarta/internal/app"
	"smarta/internal/pkg/grpcserver"
	"smarta/internal/server"
	"smarta/internal/telegram"
)

func main() {
	if err := run(); err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("server")
	}
}

func run() error {
	v := app.NewViper()
	flags := pflag.NewFlagSet("server", pflag.ExitOnError)
	flags.String(app.KeyHome, "", "state dir (default ~/.smarta)")
	flags.String(app.KeyAddr, ":8080", "HTTP listen address")
	flags.String(app.KeyGRPCAddr, ":50051", "gRPC health listen address")
	flags.String(app.KeyLogLevel, "info", "log level")
	flags.Duration(app.KeyCoachDelay, time.Second, "simulated coach reply latency")
	flags.Bool(app.KeyAcceptAnyPin, false, "accept any 6-digit PIN on verification")
	flags.String(app.KeyTelegramToken, "", "Telegram bot token (bot disabled if empty)")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}
	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	cfg, err := app.LoadConfig(v)
	if err != nil {
		return err
	}
	log, err := app.NewLogger(cfg.LogLevel, os.Stdout)
	if err != nil {
		return err
	}
	w, err := app.NewWire(cfg, log)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// gRPC health
	gs := grpcserver.New(cfg.GRPCAddr, app.Component(log, "grpc"))
	go func() {
		if err := gs.Start(); err != nil {
			log.Error().Err(err).Msg("grpc serve")
			stop()
		}
	}()
	defer gs.Stop()

	// Telegram
	if cfg.TelegramToken != "" {
		api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
		if err != nil {
			return err
		}
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 60
		updates := api.GetUpdatesChan(u)
		defer api.StopReceivingUpdates()

		bot := telegram.New(api, w.Sessions, w.Coach, w.Banking, app.Component(log, "telegram"))
		go func() {
			if err := bot.Run(ctx, updates); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("telegram")
			}
		}()
		log.Info().Str("bot", api.Self.UserName).Msg("telegram bot started")
	}

	// HTTP API
	httpApp := server.New(w.Sessions, w.Banking, w.Coach, app.Component(log, "http")).App()
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("api listening")
		errc <- httpApp.Listen(cfg.Addr)
	}()
	gs.SetServing(true)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	gs.SetServing(false)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpApp.ShutdownWithContext(shutdownCtx)
}
