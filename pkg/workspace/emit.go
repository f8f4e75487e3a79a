package workspace

import (
	"context"
	"fmt"

	"github.com/brendandebeasi/tmux-up/pkg/profile"
	"github.com/brendandebeasi/tmux-up/pkg/tmux"
)

// buildSession creates s and everything under it. s must be resolved and
// have at least one window. The order is fixed: session with its first
// window, the remaining windows, window-level keys for every window, then
// panes with their keys.
func (b *Builder) buildSession(ctx context.Context, s profile.Session) (SessionResult, error) {
	res := SessionResult{Name: s.Name}
	first := s.Windows[0]

	created, err := b.mux.NewSession(ctx, tmux.SessionOptions{
		Name:       s.Name,
		WindowName: first.Name,
		Dir:        first.Dir,
		Width:      b.cols,
		Height:     b.rows,
	})
	if err != nil {
		return res, fmt.Errorf("create session %s: %w", s.Label(), err)
	}
	res.Target = created.SessionOnly()
	res.addWindow(created)
	b.reporter.Report(Event{Kind: SessionCreated, Session: s.Label(), Target: res.Target, Dir: first.Dir})
	b.reporter.Report(Event{Kind: WindowCreated, Session: s.Label(), Window: first.Name, Target: res.Windows[0].Target, Dir: first.Dir})

	for _, w := range s.Windows[1:] {
		created, err := b.mux.NewWindow(ctx, res.Target, tmux.WindowOptions{Name: w.Name, Dir: w.Dir})
		if err != nil {
			return res, fmt.Errorf("create window %q in session %s: %w", w.Name, s.Label(), err)
		}
		res.addWindow(created)
		b.reporter.Report(Event{Kind: WindowCreated, Session: s.Label(), Window: w.Name, Target: res.Windows[len(res.Windows)-1].Target, Dir: w.Dir})
	}

	// All window-level input goes out before any pane exists.
	for i, w := range s.Windows {
		if err := b.transmit(ctx, s, res.Windows[i].Target, w.Cmd, w.Send); err != nil {
			return res, err
		}
	}

	for i, w := range s.Windows {
		for _, p := range w.Panes {
			pane, err := b.mux.SplitWindow(ctx, res.Windows[i].Target, tmux.SplitOptions{
				Dir:      p.Dir,
				Vertical: p.Vertical(),
				Size:     p.Size,
			})
			if err != nil {
				return res, fmt.Errorf("split window %s: %w", res.Windows[i].Target, err)
			}
			res.Windows[i].addPane(pane)
			b.reporter.Report(Event{Kind: PaneCreated, Session: s.Label(), Window: w.Name, Target: pane, Dir: p.Dir, Split: string(p.Split)})

			if err := b.transmit(ctx, s, pane, p.Cmd, p.Send); err != nil {
				return res, err
			}
		}
	}
	return res, nil
}

// transmit types each startup command followed by Enter, then sends the
// raw keys in one command with no terminator.
func (b *Builder) transmit(ctx context.Context, s profile.Session, target tmux.Target, cmds, keys []string) error {
	for _, cmd := range cmds {
		if err := b.mux.Type(ctx, target, cmd); err != nil {
			return fmt.Errorf("type into %s: %w", target, err)
		}
		b.reporter.Report(Event{Kind: KeysSent, Session: s.Label(), Target: target, Command: cmd})
	}
	if len(keys) > 0 {
		if err := b.mux.SendKeys(ctx, target, keys...); err != nil {
			return fmt.Errorf("send keys to %s: %w", target, err)
		}
		b.reporter.Report(Event{Kind: KeysSent, Session: s.Label(), Target: target, Keys: keys})
	}
	return nil
}
