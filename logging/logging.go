package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global logger. format "json" writes one JSON object
// per line, anything else writes human readable console output.
func Init(level, format string) {
	initWithWriter(os.Stdout, level, format)
}

func initWithWriter(out io.Writer, level, format string) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(ParseLevel(level))

	if strings.ToLower(format) != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info
func ParseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.InfoLevel
	}
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}

// DefaultFormat picks the log format for an environment when none is set
func DefaultFormat(env string) string {
	if env == "production" {
		return "json"
	}
	return "console"
}

// Format returns the configured format, or the environment's default when
// none is set
func Format(configured, env string) string {
	if configured != "" {
		return configured
	}
	return DefaultFormat(env)
}
