package tmux

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

const sessionFormat = "#{session_id}" + fieldSep + "#{window_id}" + fieldSep + "#{pane_id}"

var sessionNameReplacer = strings.NewReplacer(".", "_", ":", "_")

// SessionName returns name as tmux stores it. tmux replaces "." and ":" in
// session names with "_", so lookups must use the replaced form.
func SessionName(name string) string {
	return sessionNameReplacer.Replace(name)
}

// SessionOptions describes a new session and its first window. Empty
// fields and non-positive sizes are left to tmux.
type SessionOptions struct {
	Name       string
	WindowName string
	Dir        string
	Width      int
	Height     int
}

// HasSession reports whether a session with exactly this name exists.
// tmux exits non-zero both for a missing session and for a server that is
// not running; either means absent. An error is returned only when tmux
// could not be run at all.
func (c *Client) HasSession(ctx context.Context, name string) (bool, error) {
	_, err := c.output(ctx, "has-session", "-t", "="+SessionName(name))
	if err == nil {
		return true, nil
	}
	var exit interface{ ExitCode() int }
	if errors.As(err, &exit) {
		return false, nil
	}
	return false, err
}

// NewSession creates a detached session and returns the target of its
// first pane.
func (c *Client) NewSession(ctx context.Context, opts SessionOptions) (Target, error) {
	args := []string{"new-session", "-d", "-P", "-F", sessionFormat}
	if opts.Name != "" {
		args = append(args, "-s", SessionName(opts.Name))
	}
	if opts.WindowName != "" {
		args = append(args, "-n", opts.WindowName)
	}
	if opts.Dir != "" {
		args = append(args, "-c", opts.Dir)
	}
	if opts.Width > 0 && opts.Height > 0 {
		args = append(args, "-x", strconv.Itoa(opts.Width), "-y", strconv.Itoa(opts.Height))
	}

	out, err := c.output(ctx, args...)
	if err != nil {
		return Target{}, err
	}
	ids, err := parseReply("new-session", out, "$", "@", "%")
	if err != nil {
		return Target{}, err
	}
	return Target{Session: ids[0], Window: ids[1], Pane: ids[2]}, nil
}

// SessionID looks up the identifier of an existing session by exact name.
func (c *Client) SessionID(ctx context.Context, name string) (Target, error) {
	out, err := c.output(ctx, "display-message", "-p", "-t", "="+SessionName(name), "#{session_id}")
	if err != nil {
		return Target{}, err
	}
	ids, err := parseReply("display-message", out, "$")
	if err != nil {
		return Target{}, err
	}
	return Target{Session: ids[0]}, nil
}

// Attach brings the session to the foreground of the calling terminal,
// switching the current client instead when already inside tmux.
func (c *Client) Attach(ctx context.Context, session Target) error {
	verb := "attach-session"
	if c.nested {
		verb = "switch-client"
	}
	cmd := c.command(verb, "-t", session.SessionOnly().String())
	return c.runner.Foreground(ctx, cmd)
}
