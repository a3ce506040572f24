package main

import (
	"os"
	"strings"
	"testing"

	"github.com/samdwyer/termwordle/internal/game"
)

func TestFarewell(t *testing.T) {
	tests := []struct {
		stats game.Stats
		want  string
	}{
		{game.Stats{}, "No rounds finished"},
		{game.Stats{Played: 4, Won: 3, MaxStreak: 2}, "Won 3 of 4 (75%), best streak 2."},
	}

	for _, tt := range tests {
		if got := farewell(tt.stats); !strings.Contains(got, tt.want) {
			t.Errorf("farewell(%+v) = %q, want it to contain %q", tt.stats, got, tt.want)
		}
	}
}

func TestSetupHoneycombEnv(t *testing.T) {
	t.Setenv("HONEYCOMB_API_KEY", "secret")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	setupHoneycombEnv()

	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != "https://api.honeycomb.io" {
		t.Errorf("endpoint = %q", got)
	}
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != "x-honeycomb-team=secret" {
		t.Errorf("headers = %q", got)
	}
}

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	if err := cmd.Execute(); err == nil {
		t.Error("Execute() with positional args succeeded, want error")
	}
}
