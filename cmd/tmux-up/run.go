package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/brendandebeasi/tmux-up/pkg/config"
	"github.com/brendandebeasi/tmux-up/pkg/document"
	"github.com/brendandebeasi/tmux-up/pkg/logging"
	"github.com/brendandebeasi/tmux-up/pkg/paths"
	"github.com/brendandebeasi/tmux-up/pkg/perf"
	"github.com/brendandebeasi/tmux-up/pkg/profile"
	"github.com/brendandebeasi/tmux-up/pkg/report"
	"github.com/brendandebeasi/tmux-up/pkg/terminal"
	"github.com/brendandebeasi/tmux-up/pkg/tmux"
	"github.com/brendandebeasi/tmux-up/pkg/watch"
	"github.com/brendandebeasi/tmux-up/pkg/workspace"
)

func run(cmd *cobra.Command, opts *options, args []string) error {
	out := cmd.OutOrStdout()

	if opts.list {
		profiles, err := paths.ListProfiles()
		if err != nil {
			return err
		}
		return report.PrintProfiles(out, profiles)
	}
	if len(args) == 0 {
		return cmd.Help()
	}

	cfgPath := opts.configPath
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath()
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	verbose := opts.verbose
	if perf.IsEnabled() {
		// Timing records are logged at info.
		verbose = max(verbose, 1)
	}
	log := logging.ForVerbosity(verbose, opts.quiet)
	perf.SetLogger(log)

	path, err := paths.FindProfile(args[0])
	if err != nil {
		return err
	}
	log.Info("using profile", "name", args[0], "path", path)

	// Parse once up front so a broken profile fails before tmux is touched.
	if _, err := loadProfile(path); err != nil {
		return err
	}

	var runner tmux.Runner
	if opts.dryRun {
		runner = &tmux.DryRunner{Out: out}
	} else {
		bin, err := tmux.LookPath(cfg.Tmux)
		if err != nil {
			return err
		}
		log.Debug("tmux found", "path", bin)
		runner = tmux.NewShellRunner(cfg.Shell)
	}
	client := tmux.NewClient(runner, tmux.WithBinary(cfg.Tmux), tmux.WithSocket(cfg.Socket))

	builderOpts := []workspace.Option{
		workspace.WithReporter(report.NewConsole(out, report.LevelFor(opts.verbose, opts.quiet))),
	}
	if size, err := terminal.Probe(); err != nil {
		log.Debug("terminal size unknown", "error", err)
	} else {
		builderOpts = append(builderOpts, workspace.WithSize(size.Cols, size.Rows))
	}
	if opts.watch {
		builderOpts = append(builderOpts, workspace.WithoutAttach())
	}
	builder := workspace.New(client, builderOpts...)

	apply := func(ctx context.Context) error {
		p, err := loadProfile(path)
		if err != nil {
			return err
		}
		_, err = builder.Apply(ctx, p)
		return err
	}

	ctx := cmd.Context()
	if err := apply(ctx); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}
	return watchProfile(ctx, path, log, apply)
}

func loadProfile(path string) (profile.Profile, error) {
	tree, err := document.Load(path)
	if err != nil {
		return profile.Profile{}, err
	}
	p, err := profile.Normalize(tree, path)
	if err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

func watchProfile(ctx context.Context, path string, log *slog.Logger, apply watch.ApplyFunc) error {
	w := &watch.Watcher{Path: path, Logger: log}
	if err := w.Run(ctx, apply); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	return nil
}
