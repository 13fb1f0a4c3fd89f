package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"smarta/internal/app"
	"smarta/internal/domain"
)

func TestLoadConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	v := app.NewViper()
	v.Set(app.KeyHome, home)

	cfg, err := app.LoadConfig(v)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Home != home || cfg.Addr != ":8080" || cfg.GRPCAddr != ":50051" || cfg.CoachDelay != time.Second || cfg.AcceptAnyPin {
		t.Fatalf("defaults: %+v", cfg)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SMARTA_HOME", t.TempDir())
	t.Setenv("SMARTA_GRPC_ADDR", ":6000")
	t.Setenv("SMARTA_ACCEPT_ANY_PIN", "true")
	t.Setenv("SMARTA_COACH_DELAY", "250ms")

	cfg, err := app.LoadConfig(app.NewViper())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.GRPCAddr != ":6000" || !cfg.AcceptAnyPin || cfg.CoachDelay != 250*time.Millisecond {
		t.Fatalf("env overrides: %+v", cfg)
	}
}

func TestLoadConfig_File(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte("addr: \":9090\"\nlog-level: debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	v := app.NewViper()
	v.Set(app.KeyHome, home)

	cfg, err := app.LoadConfig(v)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.LogLevel != "debug" {
		t.Fatalf("file config: %+v", cfg)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := app.NewLogger("warn", &buf)
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	log.Info().Msg("hidden")
	cl := app.Component(log, "test")
	cl.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"component":"test"`) {
		t.Fatalf("log output: %s", out)
	}
	if _, err := app.NewLogger("loud", &buf); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewWire(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested")
	log, _ := app.NewLogger("", &bytes.Buffer{})
	w, err := app.NewWire(app.Config{Home: home}, log)
	if err != nil {
		t.Fatalf("wire: %v", err)
	}
	defer w.Close()

	s, err := w.Sessions.Current(context.Background())
	if err != nil || s.Screen != domain.ScreenOnboarding {
		t.Fatalf("session: %+v %v", s, err)
	}
	if _, err := os.Stat(home); err != nil {
		t.Fatalf("home not created: %v", err)
	}
}
