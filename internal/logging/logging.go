// Package logging builds the zerolog loggers used across the application.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when the configured level is empty or unknown
const DefaultLevel = zerolog.InfoLevel

// ParseLevel maps a level name to a zerolog level. The second result is false
// when the name is not recognised and DefaultLevel was returned.
func ParseLevel(name string) (zerolog.Level, bool) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return DefaultLevel, false
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return DefaultLevel, false
	}
	return level, true
}

// New creates a console logger writing to w at the named level
func New(w io.Writer, level string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl, _ := ParseLevel(level)
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	return zerolog.New(console).Level(lvl).With().Timestamp().Logger()
}

// Component returns a child logger tagged with the component name
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
