package tmux

import (
	"context"
)

const (
	windowFormat = "#{window_id}" + fieldSep + "#{pane_id}"
	paneFormat   = "#{pane_id}"
)

// WindowOptions describes an additional window.
type WindowOptions struct {
	Name string
	Dir  string
}

// SplitOptions describes a pane split. Size is passed to -l as given, so
// both "20" and "30%" work.
type SplitOptions struct {
	Dir      string
	Vertical bool
	Size     string
}

// NewWindow appends a detached window to session and returns the target of
// its first pane.
func (c *Client) NewWindow(ctx context.Context, session Target, opts WindowOptions) (Target, error) {
	// A trailing colon selects the next free index in the session.
	args := []string{"new-window", "-d", "-P", "-F", windowFormat, "-t", session.Session + ":"}
	if opts.Name != "" {
		args = append(args, "-n", opts.Name)
	}
	if opts.Dir != "" {
		args = append(args, "-c", opts.Dir)
	}

	out, err := c.output(ctx, args...)
	if err != nil {
		return Target{}, err
	}
	ids, err := parseReply("new-window", out, "@", "%")
	if err != nil {
		return Target{}, err
	}
	return Target{Session: session.Session, Window: ids[0], Pane: ids[1]}, nil
}

// SplitWindow splits window and returns the new pane's target.
func (c *Client) SplitWindow(ctx context.Context, window Target, opts SplitOptions) (Target, error) {
	window = Target{Session: window.Session, Window: window.Window}
	args := []string{"split-window", "-P", "-F", paneFormat, "-t", window.String()}
	if opts.Dir != "" {
		args = append(args, "-c", opts.Dir)
	}
	if opts.Vertical {
		args = append(args, "-v")
	} else {
		args = append(args, "-h")
	}
	if opts.Size != "" {
		args = append(args, "-l", opts.Size)
	}

	out, err := c.output(ctx, args...)
	if err != nil {
		return Target{}, err
	}
	ids, err := parseReply("split-window", out, "%")
	if err != nil {
		return Target{}, err
	}
	return window.WithPane(ids[0]), nil
}

// SendKeys transmits key tokens to target as-is, without a terminator. The
// tokens follow "--" so one starting with "-" is sent, not parsed as a flag.
func (c *Client) SendKeys(ctx context.Context, target Target, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	args := make([]string, 0, len(keys)+4)
	args = append(args, "send-keys", "-t", target.String(), "--")
	for _, k := range keys {
		args = append(args, escapeKey(k))
	}
	_, err := c.output(ctx, args...)
	return err
}

// Type sends command one character at a time followed by Enter.
func (c *Client) Type(ctx context.Context, target Target, command string) error {
	return c.SendKeys(ctx, target, Keystrokes(command)...)
}
