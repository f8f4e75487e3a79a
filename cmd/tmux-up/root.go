package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

type options struct {
	list       bool
	verbose    int
	quiet      bool
	dryRun     bool
	watch      bool
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "tmux-up [PROFILE]",
		Short: "Stand up tmux sessions, windows and panes from a profile",
		Long: `tmux-up reads a declarative profile and creates the sessions, windows and
panes it describes, typing startup commands into each one.

Profiles are looked up by name in ./.tmux-up/ and then in the profiles
directory under the config dir. YAML, TOML and JSON(C) are accepted.
Named sessions that already exist are left alone.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.list, "list", "l", false, "list available profiles")
	f.CountVarP(&opts.verbose, "verbose", "v", "increase verbosity (repeatable)")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "print nothing")
	f.BoolVar(&opts.dryRun, "dry-run", false, "print tmux commands instead of running them")
	f.BoolVarP(&opts.watch, "watch", "w", false, "re-apply the profile whenever its file changes")
	f.StringVar(&opts.configPath, "config", "", "settings file (default: <config dir>/config.yaml)")
	return cmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
