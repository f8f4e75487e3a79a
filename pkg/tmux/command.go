package tmux

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command is one tmux invocation. Args[0] is the tmux binary.
type Command struct {
	Args []string
}

// Subcommand returns the tmux subcommand name, skipping global flags.
func (c Command) Subcommand() string {
	for i := 1; i < len(c.Args); i++ {
		a := c.Args[i]
		if a == "-L" || a == "-S" || a == "-f" {
			i++
			continue
		}
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	return ""
}

// Line renders the command as a shell command line with every token quoted.
func (c Command) Line() string {
	quoted := make([]string, len(c.Args))
	for i, a := range c.Args {
		quoted[i] = Quote(a)
	}
	return strings.Join(quoted, " ")
}

// CommandError reports a tmux command that exited unsuccessfully.
type CommandError struct {
	Line   string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v (%s)", e.Line, e.Err, e.Stderr)
}

func (e *CommandError) Unwrap() error { return e.Err }

// Runner executes tmux commands.
//
// Output runs a command to completion and returns its stdout. Foreground
// runs a command attached to the caller's terminal, as attach-session
// requires.
type Runner interface {
	Output(ctx context.Context, cmd Command) (string, error)
	Foreground(ctx context.Context, cmd Command) error
}

// ShellRunner hands the quoted command line to a POSIX shell.
type ShellRunner struct {
	Shell  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewShellRunner returns a runner using shell, or /bin/sh when empty, wired
// to the process's standard streams.
func NewShellRunner(shell string) *ShellRunner {
	if shell == "" {
		shell = "/bin/sh"
	}
	return &ShellRunner{
		Shell:  shell,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (r *ShellRunner) Output(ctx context.Context, cmd Command) (string, error) {
	line := cmd.Line()
	c := exec.CommandContext(ctx, r.Shell, "-c", line)
	var stderr strings.Builder
	c.Stderr = &stderr
	out, err := c.Output()
	if err != nil {
		return "", &CommandError{Line: line, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}
	return string(out), nil
}

func (r *ShellRunner) Foreground(ctx context.Context, cmd Command) error {
	line := cmd.Line()
	c := exec.CommandContext(ctx, r.Shell, "-c", line)
	c.Stdin = r.Stdin
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr
	if err := c.Run(); err != nil {
		return &CommandError{Line: line, Err: err}
	}
	return nil
}

// ErrNotInstalled is returned by LookPath when the tmux binary is missing.
var ErrNotInstalled = errors.New("tmux is not installed")

// LookPath verifies that binary can be executed.
func LookPath(binary string) (string, error) {
	path, err := exec.LookPath(binary)
	if err != nil {
		return "", fmt.Errorf("%w: %s not found in PATH", ErrNotInstalled, binary)
	}
	return path, nil
}
