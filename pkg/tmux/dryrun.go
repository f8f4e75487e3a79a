package tmux

import (
	"context"
	"fmt"
	"io"
)

// dryExit mimics the exit status of has-session for a missing session.
type dryExit struct{}

func (dryExit) Error() string { return "exit status 1 (dry run)" }
func (dryExit) ExitCode() int { return 1 }

// DryRunner prints command lines instead of running them. Creation
// commands are answered with made-up identifiers so dependent commands can
// still be composed, and no session is ever reported as existing.
type DryRunner struct {
	Out io.Writer

	sessions int
	windows  int
	panes    int
}

func (r *DryRunner) Output(ctx context.Context, cmd Command) (string, error) {
	fmt.Fprintln(r.Out, cmd.Line())

	switch cmd.Subcommand() {
	case "has-session":
		return "", &CommandError{Line: cmd.Line(), Err: dryExit{}}
	case "new-session":
		s, w, p := r.nextSession(), r.nextWindow(), r.nextPane()
		return s + fieldSep + w + fieldSep + p + "\n", nil
	case "new-window":
		w, p := r.nextWindow(), r.nextPane()
		return w + fieldSep + p + "\n", nil
	case "split-window":
		return r.nextPane() + "\n", nil
	case "display-message":
		return "$0\n", nil
	}
	return "", nil
}

func (r *DryRunner) Foreground(ctx context.Context, cmd Command) error {
	fmt.Fprintln(r.Out, cmd.Line())
	return nil
}

func (r *DryRunner) nextSession() string {
	id := fmt.Sprintf("$%d", r.sessions)
	r.sessions++
	return id
}

func (r *DryRunner) nextWindow() string {
	id := fmt.Sprintf("@%d", r.windows)
	r.windows++
	return id
}

func (r *DryRunner) nextPane() string {
	id := fmt.Sprintf("%%%d", r.panes)
	r.panes++
	return id
}
