package config

import (
	"github.com/brendandebeasi/tmux-up/pkg/paths"
)

type Config struct {
	Tmux   string `yaml:"tmux"`   // tmux binary (default: tmux)
	Socket string `yaml:"socket"` // socket name passed as -L (default: tmux's default server)
	Shell  string `yaml:"shell"`  // shell that runs composed command lines (default: /bin/sh)
}

func DefaultConfigPath() string {
	return paths.ConfigPath()
}
