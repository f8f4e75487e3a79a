package tmux

import "strings"

// Target addresses a session, window or pane by tmux-assigned identifier
// ($session, @window, %pane).
type Target struct {
	Session string
	Window  string
	Pane    string
}

// WithPane returns the target of pane id in the same window.
func (t Target) WithPane(id string) Target {
	return Target{Session: t.Session, Window: t.Window, Pane: id}
}

// SessionOnly drops the window and pane components.
func (t Target) SessionOnly() Target {
	return Target{Session: t.Session}
}

// String renders the tmux target syntax: $1, $1:@2 or $1:@2.%3.
func (t Target) String() string {
	var b strings.Builder
	b.WriteString(t.Session)
	if t.Window != "" {
		b.WriteString(":")
		b.WriteString(t.Window)
		if t.Pane != "" {
			b.WriteString(".")
			b.WriteString(t.Pane)
		}
	}
	return b.String()
}

// IsZero reports whether no identifier has been assigned.
func (t Target) IsZero() bool {
	return t == Target{}
}
