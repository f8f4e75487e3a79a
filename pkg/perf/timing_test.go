package perf

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestStopLogsThroughLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))) })

	Start("tmux new-session").Stop("line", "'tmux' 'new-session'")

	out := buf.String()
	if !strings.Contains(out, "tmux new-session") {
		t.Errorf("log missing timer name: %q", out)
	}
	if !strings.Contains(out, "elapsed=") {
		t.Errorf("log missing elapsed: %q", out)
	}
	if !strings.Contains(out, "line=") {
		t.Errorf("log missing extra attribute: %q", out)
	}
}
