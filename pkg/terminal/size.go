// Package terminal measures the controlling terminal.
package terminal

import (
	"errors"
	"os"
	"strconv"

	"golang.org/x/term"
)

// Size is a terminal size in character cells.
type Size struct {
	Cols int
	Rows int
}

var ErrNoTerminal = errors.New("no terminal to measure")

// Probe returns the size of the first of stdout, stdin or stderr that is a
// terminal, falling back to $COLUMNS and $LINES.
func Probe() (Size, error) {
	return probe([]*os.File{os.Stdout, os.Stdin, os.Stderr}, os.Getenv)
}

func probe(files []*os.File, getenv func(string) string) (Size, error) {
	for _, f := range files {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		cols, rows, err := term.GetSize(fd)
		if err == nil && cols > 0 && rows > 0 {
			return Size{Cols: cols, Rows: rows}, nil
		}
	}

	cols, errC := strconv.Atoi(getenv("COLUMNS"))
	rows, errR := strconv.Atoi(getenv("LINES"))
	if errC == nil && errR == nil && cols > 0 && rows > 0 {
		return Size{Cols: cols, Rows: rows}, nil
	}
	return Size{}, ErrNoTerminal
}
