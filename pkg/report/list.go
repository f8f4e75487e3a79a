package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/brendandebeasi/tmux-up/pkg/paths"
)

// PrintProfiles writes one profile per line, name then source directory,
// with the directory column aligned.
func PrintProfiles(w io.Writer, profiles []paths.Profile) error {
	width := 0
	for _, p := range profiles {
		width = max(width, runewidth.StringWidth(p.Name))
	}
	for _, p := range profiles {
		pad := width - runewidth.StringWidth(p.Name)
		if _, err := fmt.Fprintf(w, "%s%s  %s\n", p.Name, strings.Repeat(" ", pad), p.Dir); err != nil {
			return err
		}
	}
	return nil
}
