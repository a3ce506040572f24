package game

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSessionSpansAndLogs(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	var buf bytes.Buffer

	in := script(keys("pious"), enter, keys("crane"), enter, keys("n"))
	s := NewSession(newWordSet([]string{"crane"}, "pious"), in, &recordingRenderer{}, Config{Seed: 3},
		WithTracer(tp.Tracer("test")),
		WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)),
	)

	if _, err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	counts := make(map[string]int)
	for _, span := range recorder.Ended() {
		counts[span.Name()]++
	}
	want := map[string]int{"session.run": 1, "round.start": 1, "round.guess": 2, "round.end": 1}
	for name, n := range want {
		if counts[name] != n {
			t.Errorf("%d %q spans, want %d", counts[name], name, n)
		}
	}

	logs := buf.String()
	for _, msg := range []string{"session started", "guess submitted", "round finished", "session ended"} {
		if !strings.Contains(logs, msg) {
			t.Errorf("log output missing %q", msg)
		}
	}
	if !strings.Contains(logs, `"marks":"GGGGG"`) {
		t.Errorf("winning guess marks not logged: %s", logs)
	}
}
