// Package tmux drives a tmux server through its command line interface.
//
// Every command that creates something asks tmux for structured output
// (-P -F) so identifiers are read from a fixed-format reply instead of
// scraped from free text. Later commands address sessions, windows and
// panes only by those identifiers.
package tmux

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/brendandebeasi/tmux-up/pkg/perf"
)

// fieldSep separates fields in -F replies.
const fieldSep = "\x1f"

// ReplyError reports a structured reply that did not have the expected shape.
type ReplyError struct {
	Command string
	Reply   string
}

func (e *ReplyError) Error() string {
	return fmt.Sprintf("tmux %s: unexpected reply %q", e.Command, e.Reply)
}

// Client issues tmux commands through a Runner.
type Client struct {
	runner Runner
	binary string
	socket string
	nested bool
}

// Option configures a Client.
type Option func(*Client)

// WithBinary sets the tmux executable. Default "tmux".
func WithBinary(binary string) Option {
	return func(c *Client) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithSocket targets the server listening on the named socket (-L).
func WithSocket(name string) Option {
	return func(c *Client) { c.socket = name }
}

// WithNested overrides whether the caller runs inside tmux. Inside tmux the
// foreground action is switch-client rather than attach-session. Default is
// taken from $TMUX.
func WithNested(nested bool) Option {
	return func(c *Client) { c.nested = nested }
}

// NewClient returns a Client that runs commands through runner.
func NewClient(runner Runner, opts ...Option) *Client {
	c := &Client{
		runner: runner,
		binary: "tmux",
		nested: os.Getenv("TMUX") != "",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) command(args ...string) Command {
	full := []string{c.binary}
	if c.socket != "" {
		full = append(full, "-L", c.socket)
	}
	return Command{Args: append(full, args...)}
}

func (c *Client) output(ctx context.Context, args ...string) (string, error) {
	cmd := c.command(args...)
	timer := perf.Start("tmux " + cmd.Subcommand())
	out, err := c.runner.Output(ctx, cmd)
	timer.Stop("line", cmd.Line(), "ok", err == nil)
	return out, err
}

// parseReply splits a -F reply into fields and checks each field starts
// with the expected identifier sigil.
func parseReply(subcommand, out string, sigils ...string) ([]string, error) {
	reply := strings.TrimSpace(out)
	fields := strings.Split(reply, fieldSep)
	if len(fields) != len(sigils) {
		return nil, &ReplyError{Command: subcommand, Reply: reply}
	}
	for i, f := range fields {
		if len(f) < 2 || !strings.HasPrefix(f, sigils[i]) {
			return nil, &ReplyError{Command: subcommand, Reply: reply}
		}
	}
	return fields, nil
}
