package workspace

import "github.com/brendandebeasi/tmux-up/pkg/tmux"

// EventKind identifies what happened during a build.
type EventKind int

const (
	SessionCreated EventKind = iota
	SessionSkipped
	WindowCreated
	PaneCreated
	KeysSent
	Attached
)

func (k EventKind) String() string {
	switch k {
	case SessionCreated:
		return "session-created"
	case SessionSkipped:
		return "session-skipped"
	case WindowCreated:
		return "window-created"
	case PaneCreated:
		return "pane-created"
	case KeysSent:
		return "keys-sent"
	case Attached:
		return "attached"
	}
	return "unknown"
}

// Event describes one step of a build.
type Event struct {
	Kind    EventKind
	Session string // session label, "(anonymous)" for unnamed sessions
	Window  string // window name, if any
	Target  tmux.Target
	Dir     string
	Split   string

	// Exactly one of Command (typed then Enter) or Keys (sent verbatim) is
	// set on KeysSent.
	Command string
	Keys    []string
}

// Reporter receives build events.
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Event)

func (f ReporterFunc) Report(ev Event) { f(ev) }

type nopReporter struct{}

func (nopReporter) Report(Event) {}
