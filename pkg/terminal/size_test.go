package terminal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestProbeFallsBackToEnv(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "not-a-tty"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := probe([]*os.File{f}, env(map[string]string{"COLUMNS": "120", "LINES": "40"}))
	if err != nil {
		t.Fatalf("probe() error: %v", err)
	}
	if got != (Size{Cols: 120, Rows: 40}) {
		t.Errorf("probe() = %+v, want 120x40", got)
	}
}

func TestProbeNoTerminal(t *testing.T) {
	cases := []map[string]string{
		{},
		{"COLUMNS": "120"},
		{"COLUMNS": "abc", "LINES": "40"},
		{"COLUMNS": "0", "LINES": "40"},
	}
	for _, vars := range cases {
		_, err := probe(nil, env(vars))
		if !errors.Is(err, ErrNoTerminal) {
			t.Errorf("probe(%v) error = %v, want ErrNoTerminal", vars, err)
		}
	}
}
