package workspace

import "github.com/brendandebeasi/tmux-up/pkg/tmux"

// Result records the identifiers tmux assigned during a build, in profile
// order. Every command after a creation addresses its entity through these
// targets only.
type Result struct {
	Sessions []SessionResult
	// Attached is the session brought to the foreground, if any.
	Attached tmux.Target
}

// SessionResult is one session of the profile. A skipped session has no
// target and no windows.
type SessionResult struct {
	Name    string
	Skipped bool
	Target  tmux.Target
	Windows []WindowResult
}

// WindowResult holds a window target and the targets of the panes split
// from it, in declared order.
type WindowResult struct {
	Target tmux.Target
	Panes  []tmux.Target
}

func (r *SessionResult) addWindow(t tmux.Target) {
	r.Windows = append(r.Windows, WindowResult{Target: tmux.Target{Session: t.Session, Window: t.Window}})
}

func (w *WindowResult) addPane(t tmux.Target) {
	w.Panes = append(w.Panes, t)
}
