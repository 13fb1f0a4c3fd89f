package app

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger returns a timestamped logger writing to w at the named level.
// An empty level means info.
func NewLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(level); err != nil {
			return zerolog.Nop(), err
		}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// Component derives a child logger tagged with name.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
