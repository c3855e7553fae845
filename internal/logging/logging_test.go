package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	t.Setenv(LevelEnv, "")

	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	t.Setenv(LevelEnv, "error")
	if got := ParseLevel(""); got != zerolog.ErrorLevel {
		t.Errorf("ParseLevel with env = %s, want error", got)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", false)

	log.Debug().Msg("hidden")
	log.Info().Str("fen", "8/8/8/8/8/8/8/8 b - - 0 1").Msg("board cleared")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "board cleared" || entry["level"] != "info" {
		t.Errorf("unexpected entry: %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Error("expected a timestamp")
	}
}
