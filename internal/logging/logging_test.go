package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
		ok   bool
	}{
		{"debug", zerolog.DebugLevel, true},
		{" WARN ", zerolog.WarnLevel, true},
		{"error", zerolog.ErrorLevel, true},
		{"", DefaultLevel, false},
		{"loud", DefaultLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	logger.Info().Msg("hidden")
	logger.Warn().Str("theme", "purple").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Info should be filtered at warn level, got: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "purple") {
		t.Errorf("Expected warn line with field, got: %s", out)
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(New(&buf, "debug"), "export")
	logger.Debug().Msg("hello")

	if !strings.Contains(buf.String(), "export") {
		t.Errorf("Expected component name in output, got: %s", buf.String())
	}
}
