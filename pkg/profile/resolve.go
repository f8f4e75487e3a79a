package profile

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// homeDir is replaced in tests.
var homeDir = os.UserHomeDir

// Resolve returns a copy of p with directory defaults filled in:
//
//   - a session's directory is never inherited
//   - every window without a directory takes the session's directory
//   - every pane without a directory takes its window's resolved directory
//
// A session without windows gets one empty window so the session directory
// reaches the window tmux creates with the session. Resolve is idempotent.
func Resolve(p Profile) Profile {
	out := Profile{Sessions: make([]Session, len(p.Sessions))}
	for i, s := range p.Sessions {
		out.Sessions[i] = resolveSession(s)
	}
	return out
}

func resolveSession(s Session) Session {
	s.Dir = expandHome(s.Dir)

	windows := s.Windows
	if len(windows) == 0 {
		windows = []Window{{}}
	}
	s.Windows = make([]Window, len(windows))
	for i, w := range windows {
		// Windows inherit from the session, not from the first window.
		s.Windows[i] = resolveWindow(w, s.Dir)
	}
	return s
}

func resolveWindow(w Window, sessionDir string) Window {
	w.Dir = expandHome(w.Dir)
	if w.Dir == "" {
		w.Dir = sessionDir
	}
	w.Cmd = slices.Clone(w.Cmd)
	w.Send = slices.Clone(w.Send)

	panes := w.Panes
	w.Panes = nil
	for _, p := range panes {
		p.Dir = expandHome(p.Dir)
		if p.Dir == "" {
			p.Dir = w.Dir
		}
		if p.Split == "" {
			p.Split = SplitHorizontal
		}
		p.Cmd = slices.Clone(p.Cmd)
		p.Send = slices.Clone(p.Send)
		w.Panes = append(w.Panes, p)
	}
	return w
}

// expandHome rewrites a leading "~" to the user's home directory. Commands
// are quoted before they reach the shell, so tmux would otherwise receive a
// literal tilde.
func expandHome(dir string) string {
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir
	}
	home, err := homeDir()
	if err != nil || home == "" {
		return dir
	}
	return filepath.Join(home, strings.TrimPrefix(dir, "~"))
}
