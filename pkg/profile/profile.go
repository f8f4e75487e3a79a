// Package profile holds the typed workspace description: sessions made of
// windows made of panes.
//
// A profile is produced in two steps. Normalize turns the generic tree from
// pkg/document into typed values, keeping only recognized fields. Resolve
// then fills in inherited directories and returns a new tree; the input is
// never modified.
package profile

// Split is the orientation of a pane split.
type Split string

const (
	SplitHorizontal Split = "h"
	SplitVertical   Split = "v"
)

// Profile is an ordered list of sessions.
type Profile struct {
	Sessions []Session
}

// Session is a top-level container of windows. An empty Name marks an
// anonymous session.
type Session struct {
	Name    string
	Dir     string
	Attach  bool
	Windows []Window
}

// Anonymous reports whether the session has no name.
func (s Session) Anonymous() bool {
	return s.Name == ""
}

// Label is the display name used in reports.
func (s Session) Label() string {
	if s.Anonymous() {
		return "(anonymous)"
	}
	return s.Name
}

// Window is a tab-like container of panes. Cmd holds startup commands typed
// into the window followed by Enter; Send holds raw key tokens.
type Window struct {
	Name  string
	Dir   string
	Cmd   []string
	Send  []string
	Panes []Pane
}

// Pane is a split of its window.
type Pane struct {
	Dir   string
	Split Split
	Size  string
	Cmd   []string
	Send  []string
}

// Vertical reports whether the pane splits vertically.
func (p Pane) Vertical() bool {
	return p.Split == SplitVertical
}

// AttachTarget returns the index of the first session marked attach, or -1.
func (p Profile) AttachTarget() int {
	for i, s := range p.Sessions {
		if s.Attach {
			return i
		}
	}
	return -1
}
