package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"smarta/internal/coach"
)

// Config keys, shared by flags, environment and the config file.
const (
	KeyHome          = "home"
	KeyAddr          = "addr"
	KeyGRPCAddr      = "grpc-addr"
	KeyLogLevel      = "log-level"
	KeyCoachDelay    = "coach-delay"
	KeyAcceptAnyPin  = "accept-any-pin"
	KeyTelegramToken = "telegram-token"
)

// EnvPrefix prefixes every environment override, e.g. SMARTA_GRPC_ADDR.
const EnvPrefix = "SMARTA"

// Config holds runtime wiring options.
type Config struct {
	Home          string        // state directory, e.g. $HOME/.smarta
	Addr          string        // HTTP listen address
	GRPCAddr      string        // gRPC health listen address
	LogLevel      string        // zerolog level name
	CoachDelay    time.Duration // simulated coach latency
	AcceptAnyPin  bool          // skip the stored-hash PIN check
	TelegramToken string        // bot token; empty disables the bot
}

// NewViper returns a viper instance with defaults and SMARTA_* environment
// overrides applied.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyAddr, ":8080")
	v.SetDefault(KeyGRPCAddr, ":50051")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyCoachDelay, coach.DefaultDelay)
	v.SetDefault(KeyAcceptAnyPin, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig resolves Config from v. Home defaults to ~/.smarta; a
// config.{yaml,json,toml} file inside it is read if present.
func LoadConfig(v *viper.Viper) (Config, error) {
	home := v.GetString(KeyHome)
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		home = filepath.Join(dir, ".smarta")
	}

	v.SetConfigName("config")
	v.AddConfigPath(home)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Home:          home,
		Addr:          v.GetString(KeyAddr),
		GRPCAddr:      v.GetString(KeyGRPCAddr),
		LogLevel:      v.GetString(KeyLogLevel),
		CoachDelay:    v.GetDuration(KeyCoachDelay),
		AcceptAnyPin:  v.GetBool(KeyAcceptAnyPin),
		TelegramToken: v.GetString(KeyTelegramToken),
	}
	if cfg.CoachDelay < 0 {
		return Config{}, fmt.Errorf("%s must not be negative", KeyCoachDelay)
	}
	return cfg, nil
}
