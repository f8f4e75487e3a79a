// Package workspace stands up the sessions, windows and panes of a profile
// on a tmux server.
//
// A build runs strictly in order, one blocking command at a time: each
// command may need an identifier that only the previous one returns. A
// failed command aborts the build; whatever was created so far is left in
// place.
package workspace

import (
	"context"
	"fmt"

	"github.com/brendandebeasi/tmux-up/pkg/profile"
	"github.com/brendandebeasi/tmux-up/pkg/tmux"
)

// Multiplexer is the set of tmux operations a build needs. *tmux.Client
// implements it.
type Multiplexer interface {
	HasSession(ctx context.Context, name string) (bool, error)
	NewSession(ctx context.Context, opts tmux.SessionOptions) (tmux.Target, error)
	NewWindow(ctx context.Context, session tmux.Target, opts tmux.WindowOptions) (tmux.Target, error)
	SplitWindow(ctx context.Context, window tmux.Target, opts tmux.SplitOptions) (tmux.Target, error)
	SendKeys(ctx context.Context, target tmux.Target, keys ...string) error
	Type(ctx context.Context, target tmux.Target, command string) error
	SessionID(ctx context.Context, name string) (tmux.Target, error)
	Attach(ctx context.Context, session tmux.Target) error
}

// Builder turns a profile into live tmux state.
type Builder struct {
	mux      Multiplexer
	reporter Reporter
	cols     int
	rows     int
	noAttach bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithSize sets the size of new sessions. Non-positive values leave the
// size to tmux.
func WithSize(cols, rows int) Option {
	return func(b *Builder) {
		b.cols, b.rows = cols, rows
	}
}

// WithReporter sets the event sink.
func WithReporter(r Reporter) Option {
	return func(b *Builder) {
		if r != nil {
			b.reporter = r
		}
	}
}

// WithoutAttach skips the foreground step.
func WithoutAttach() Option {
	return func(b *Builder) { b.noAttach = true }
}

// New returns a Builder issuing commands to mux.
func New(mux Multiplexer, opts ...Option) *Builder {
	b := &Builder{
		mux:      mux,
		reporter: nopReporter{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Apply builds every session of p in order, then attaches to the first
// session marked attach. Directory defaults are resolved first, so p may be
// a normalized or an already resolved profile.
//
// Named sessions that already exist are skipped whole. Names are compared
// the way tmux stores them, so "my.app" matches a live "my_app". Anonymous
// sessions cannot be looked up and are always created.
func (b *Builder) Apply(ctx context.Context, p profile.Profile) (*Result, error) {
	p = profile.Resolve(p)
	res := &Result{Sessions: make([]SessionResult, 0, len(p.Sessions))}

	for _, s := range p.Sessions {
		if !s.Anonymous() {
			exists, err := b.mux.HasSession(ctx, s.Name)
			if err != nil {
				return res, fmt.Errorf("check session %s: %w", s.Label(), err)
			}
			if exists {
				b.reporter.Report(Event{Kind: SessionSkipped, Session: s.Label()})
				res.Sessions = append(res.Sessions, SessionResult{Name: s.Name, Skipped: true})
				continue
			}
		}

		sr, err := b.buildSession(ctx, s)
		res.Sessions = append(res.Sessions, sr)
		if err != nil {
			return res, err
		}
	}

	if b.noAttach {
		return res, nil
	}
	if err := b.attach(ctx, p, res); err != nil {
		return res, err
	}
	return res, nil
}

// attach foregrounds the first session marked attach, created or skipped.
func (b *Builder) attach(ctx context.Context, p profile.Profile, res *Result) error {
	i := p.AttachTarget()
	if i < 0 {
		return nil
	}
	s := p.Sessions[i]
	target := res.Sessions[i].Target
	if target.IsZero() {
		// Skipped sessions were never created by us; look the id up so
		// addressing stays identifier-based.
		t, err := b.mux.SessionID(ctx, s.Name)
		if err != nil {
			return fmt.Errorf("look up session %s: %w", s.Label(), err)
		}
		target = t
	}

	b.reporter.Report(Event{Kind: Attached, Session: s.Label(), Target: target})
	if err := b.mux.Attach(ctx, target); err != nil {
		return fmt.Errorf("attach session %s: %w", s.Label(), err)
	}
	res.Attached = target
	return nil
}
