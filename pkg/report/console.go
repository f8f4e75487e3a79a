// Package report renders build progress and profile listings for people.
package report

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/brendandebeasi/tmux-up/pkg/workspace"
)

// Level controls how much of a build the console shows.
type Level int

const (
	Quiet   Level = iota - 1 // nothing
	Normal                   // sessions and attach
	Verbose                  // plus windows and panes
	Trace                    // plus every key transmission
)

// LevelFor maps the -v count and -q flag to a Level. Quiet wins.
func LevelFor(verbose int, quiet bool) Level {
	switch {
	case quiet:
		return Quiet
	case verbose <= 0:
		return Normal
	case verbose == 1:
		return Verbose
	default:
		return Trace
	}
}

func (l Level) shows(k workspace.EventKind) bool {
	switch k {
	case workspace.SessionCreated, workspace.SessionSkipped, workspace.Attached:
		return l >= Normal
	case workspace.WindowCreated, workspace.PaneCreated:
		return l >= Verbose
	case workspace.KeysSent:
		return l >= Trace
	}
	return false
}

type styles struct {
	created lipgloss.Style
	skipped lipgloss.Style
	attach  lipgloss.Style
	name    lipgloss.Style
	dim     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	if termenv.EnvNoColor() {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		created: r.NewStyle().Foreground(lipgloss.Color("2")),
		skipped: r.NewStyle().Foreground(lipgloss.Color("3")),
		attach:  r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		name:    r.NewStyle().Bold(true),
		dim:     r.NewStyle().Faint(true),
	}
}

// Console writes one line per shown event. It implements workspace.Reporter
// and is safe for concurrent use.
type Console struct {
	mu    sync.Mutex
	w     io.Writer
	level Level
	st    styles
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer, level Level) *Console {
	return &Console{w: w, level: level, st: newStyles(w)}
}

func (c *Console) Report(ev workspace.Event) {
	if !c.level.shows(ev.Kind) {
		return
	}
	line := c.format(ev)
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, line)
}

func (c *Console) format(ev workspace.Event) string {
	st := c.st
	switch ev.Kind {
	case workspace.SessionCreated:
		return fmt.Sprintf("%s session %s %s%s",
			st.created.Render("created"), st.name.Render(ev.Session), st.dim.Render(ev.Target.String()), c.dir(ev.Dir))
	case workspace.SessionSkipped:
		return fmt.Sprintf("%s session %s already exists",
			st.skipped.Render("skipped"), st.name.Render(ev.Session))
	case workspace.Attached:
		return fmt.Sprintf("%s session %s %s",
			st.attach.Render("attach"), st.name.Render(ev.Session), st.dim.Render(ev.Target.String()))
	case workspace.WindowCreated:
		name := ev.Window
		if name == "" {
			name = "(unnamed)"
		}
		return fmt.Sprintf("  %s window %s %s%s",
			st.created.Render("created"), name, st.dim.Render(ev.Target.String()), c.dir(ev.Dir))
	case workspace.PaneCreated:
		return fmt.Sprintf("    %s pane %s split=%s%s",
			st.created.Render("created"), st.dim.Render(ev.Target.String()), ev.Split, c.dir(ev.Dir))
	case workspace.KeysSent:
		if ev.Command != "" {
			return fmt.Sprintf("      %s %s %s", st.dim.Render("type"), st.dim.Render(ev.Target.String()), ev.Command)
		}
		return fmt.Sprintf("      %s %s %s", st.dim.Render("keys"), st.dim.Render(ev.Target.String()), strings.Join(ev.Keys, " "))
	}
	return ev.Kind.String()
}

func (c *Console) dir(d string) string {
	if d == "" {
		return ""
	}
	return " " + c.st.dim.Render("in "+d)
}
