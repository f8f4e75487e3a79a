package tmux

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records commands and answers by subcommand.
type fakeRunner struct {
	calls      []Command
	foreground []Command
	replies    map[string][]string
	errs       map[string]error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		replies: make(map[string][]string),
		errs:    make(map[string]error),
	}
}

func (f *fakeRunner) Output(ctx context.Context, cmd Command) (string, error) {
	f.calls = append(f.calls, cmd)
	sub := cmd.Subcommand()
	if err, ok := f.errs[sub]; ok {
		return "", err
	}
	queue := f.replies[sub]
	if len(queue) == 0 {
		return "", nil
	}
	f.replies[sub] = queue[1:]
	return queue[0], nil
}

func (f *fakeRunner) Foreground(ctx context.Context, cmd Command) error {
	f.foreground = append(f.foreground, cmd)
	return nil
}

func (f *fakeRunner) reply(sub string, out ...string) {
	f.replies[sub] = append(f.replies[sub], out...)
}

func reply(ids ...string) string {
	return strings.Join(ids, fieldSep) + "\n"
}

func TestNewSessionFlags(t *testing.T) {
	ctx := context.Background()

	t.Run("all fields", func(t *testing.T) {
		fake := newFakeRunner()
		fake.reply("new-session", reply("$3", "@7", "%9"))
		c := NewClient(fake, WithNested(false))

		target, err := c.NewSession(ctx, SessionOptions{Name: "dev", WindowName: "editor", Dir: "/src", Width: 200, Height: 50})
		require.NoError(t, err)
		assert.Equal(t, Target{Session: "$3", Window: "@7", Pane: "%9"}, target)

		require.Len(t, fake.calls, 1)
		assert.Equal(t, []string{
			"tmux", "new-session", "-d", "-P", "-F", sessionFormat,
			"-s", "dev", "-n", "editor", "-c", "/src", "-x", "200", "-y", "50",
		}, fake.calls[0].Args)
	})

	t.Run("anonymous without size", func(t *testing.T) {
		fake := newFakeRunner()
		fake.reply("new-session", reply("$0", "@0", "%0"))
		c := NewClient(fake)

		_, err := c.NewSession(ctx, SessionOptions{})
		require.NoError(t, err)
		assert.Equal(t, []string{"tmux", "new-session", "-d", "-P", "-F", sessionFormat}, fake.calls[0].Args)
	})
}

func TestNewSessionBadReply(t *testing.T) {
	fake := newFakeRunner()
	fake.reply("new-session", "some banner text\n")
	c := NewClient(fake)

	_, err := c.NewSession(context.Background(), SessionOptions{Name: "dev"})
	var rerr *ReplyError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "new-session", rerr.Command)
}

func TestSocketAndBinary(t *testing.T) {
	fake := newFakeRunner()
	c := NewClient(fake, WithBinary("/opt/bin/tmux"), WithSocket("work"))

	c.HasSession(context.Background(), "dev")

	assert.Equal(t, []string{"/opt/bin/tmux", "-L", "work", "has-session", "-t", "=dev"}, fake.calls[0].Args)
	assert.Equal(t, "has-session", fake.calls[0].Subcommand())
}

// exitStatus stands in for *exec.ExitError.
type exitStatus int

func (e exitStatus) Error() string { return "exit status " + strconv.Itoa(int(e)) }
func (e exitStatus) ExitCode() int { return int(e) }

func TestHasSession(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRunner()
	c := NewClient(fake)

	exists, err := c.HasSession(ctx, "dev")
	require.NoError(t, err)
	assert.True(t, exists)

	fake.errs["has-session"] = &CommandError{Line: "tmux has-session", Err: exitStatus(1)}
	exists, err = c.HasSession(ctx, "dev")
	require.NoError(t, err, "a non-zero exit means absent")
	assert.False(t, exists)

	broken := errors.New("fork/exec /bin/sh: permission denied")
	fake.errs["has-session"] = &CommandError{Line: "tmux has-session", Err: broken}
	_, err = c.HasSession(ctx, "dev")
	assert.ErrorIs(t, err, broken)
}

func TestSessionNameMatchesTmux(t *testing.T) {
	assert.Equal(t, "my_app", SessionName("my.app"))
	assert.Equal(t, "host_8080_x", SessionName("host:8080.x"))
	assert.Equal(t, "dev-1", SessionName("dev-1"))

	ctx := context.Background()
	fake := newFakeRunner()
	fake.reply("new-session", reply("$1", "@1", "%1"))
	fake.reply("display-message", "$1\n")
	c := NewClient(fake)

	_, err := c.HasSession(ctx, "my.app")
	require.NoError(t, err)
	_, err = c.NewSession(ctx, SessionOptions{Name: "my.app"})
	require.NoError(t, err)
	_, err = c.SessionID(ctx, "my.app")
	require.NoError(t, err)

	assert.Equal(t, "=my_app", fake.calls[0].Args[3])
	assert.Equal(t, []string{"-s", "my_app"}, fake.calls[1].Args[6:8])
	assert.Equal(t, "=my_app", fake.calls[2].Args[4])
}

func TestNewWindow(t *testing.T) {
	fake := newFakeRunner()
	fake.reply("new-window", reply("@4", "%5"))
	c := NewClient(fake)

	target, err := c.NewWindow(context.Background(), Target{Session: "$1", Window: "@1"}, WindowOptions{Name: "logs", Dir: "/var/log"})
	require.NoError(t, err)
	assert.Equal(t, Target{Session: "$1", Window: "@4", Pane: "%5"}, target)
	assert.Equal(t, []string{
		"tmux", "new-window", "-d", "-P", "-F", windowFormat, "-t", "$1:", "-n", "logs", "-c", "/var/log",
	}, fake.calls[0].Args)
}

func TestSplitWindow(t *testing.T) {
	ctx := context.Background()
	window := Target{Session: "$1", Window: "@2", Pane: "%2"}

	t.Run("horizontal default", func(t *testing.T) {
		fake := newFakeRunner()
		fake.reply("split-window", "%8\n")
		c := NewClient(fake)

		pane, err := c.SplitWindow(ctx, window, SplitOptions{})
		require.NoError(t, err)
		assert.Equal(t, "$1:@2.%8", pane.String())
		assert.Equal(t, []string{"tmux", "split-window", "-P", "-F", paneFormat, "-t", "$1:@2", "-h"}, fake.calls[0].Args)
	})

	t.Run("vertical with dir and size", func(t *testing.T) {
		fake := newFakeRunner()
		fake.reply("split-window", "%8\n")
		c := NewClient(fake)

		_, err := c.SplitWindow(ctx, window, SplitOptions{Dir: "/tmp", Vertical: true, Size: "30%"})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"tmux", "split-window", "-P", "-F", paneFormat, "-t", "$1:@2", "-c", "/tmp", "-v", "-l", "30%",
		}, fake.calls[0].Args)
	})
}

func TestTypeSendsOneTokenPerCharacter(t *testing.T) {
	fake := newFakeRunner()
	c := NewClient(fake)

	require.NoError(t, c.Type(context.Background(), Target{Session: "$1", Window: "@1"}, "ls -la"))
	assert.Equal(t, []string{"tmux", "send-keys", "-t", "$1:@1", "--", "l", "s", " ", "-", "l", "a", "Enter"}, fake.calls[0].Args)
}

func TestSendKeysVerbatim(t *testing.T) {
	fake := newFakeRunner()
	c := NewClient(fake)
	target := Target{Session: "$1", Window: "@1", Pane: "%3"}

	require.NoError(t, c.SendKeys(context.Background(), target, "C-c", "clear;"))
	assert.Equal(t, []string{"tmux", "send-keys", "-t", "$1:@1.%3", "--", "C-c", `clear\;`}, fake.calls[0].Args)

	require.NoError(t, c.SendKeys(context.Background(), target))
	assert.Len(t, fake.calls, 1, "no keys means no command")

	// Leading dashes are keys, not send-keys flags.
	require.NoError(t, c.SendKeys(context.Background(), target, "-x", "-R"))
	assert.Equal(t, []string{"tmux", "send-keys", "-t", "$1:@1.%3", "--", "-x", "-R"}, fake.calls[1].Args)
}

func TestSessionID(t *testing.T) {
	fake := newFakeRunner()
	fake.reply("display-message", "$12\n")
	c := NewClient(fake)

	target, err := c.SessionID(context.Background(), "dev")
	require.NoError(t, err)
	assert.Equal(t, Target{Session: "$12"}, target)
	assert.Equal(t, []string{"tmux", "display-message", "-p", "-t", "=dev", "#{session_id}"}, fake.calls[0].Args)
}

func TestAttach(t *testing.T) {
	session := Target{Session: "$2", Window: "@3"}

	fake := newFakeRunner()
	require.NoError(t, NewClient(fake, WithNested(false)).Attach(context.Background(), session))
	assert.Equal(t, []string{"tmux", "attach-session", "-t", "$2"}, fake.foreground[0].Args)

	fake = newFakeRunner()
	require.NoError(t, NewClient(fake, WithNested(true)).Attach(context.Background(), session))
	assert.Equal(t, []string{"tmux", "switch-client", "-t", "$2"}, fake.foreground[0].Args)
}

func TestDryRunner(t *testing.T) {
	var out bytes.Buffer
	c := NewClient(&DryRunner{Out: &out}, WithNested(false))
	ctx := context.Background()

	exists, err := c.HasSession(ctx, "dev")
	require.NoError(t, err)
	assert.False(t, exists)
	s, err := c.NewSession(ctx, SessionOptions{Name: "dev"})
	require.NoError(t, err)
	w, err := c.NewWindow(ctx, s, WindowOptions{})
	require.NoError(t, err)
	p, err := c.SplitWindow(ctx, w, SplitOptions{})
	require.NoError(t, err)

	assert.Equal(t, "$0", s.Session)
	assert.Equal(t, "@1", w.Window)
	assert.Equal(t, "$0:@1.%2", p.String())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, `'tmux' 'has-session' '-t' '=dev'`, lines[0])
}

func TestShellRunnerRoundTrip(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	r := NewShellRunner("sh")

	out, err := r.Output(context.Background(), Command{Args: []string{"printf", "%s|", "it's", `a "b"`, "$HOME", ""}})
	require.NoError(t, err)
	assert.Equal(t, `it's|a "b"|$HOME||`, out)

	_, err = r.Output(context.Background(), Command{Args: []string{"false"}})
	var cerr *CommandError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, `'false'`, cerr.Line)
}

func TestLookPathMissing(t *testing.T) {
	_, err := LookPath("tmux-definitely-not-installed-here")
	assert.ErrorIs(t, err, ErrNotInstalled)
}
