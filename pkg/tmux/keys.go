package tmux

import "strings"

// Quote wraps s in single quotes for a POSIX shell. An embedded single
// quote closes the quoted run, adds an escaped quote, and reopens it.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Keystrokes splits a command into one key token per character followed by
// Enter, so the pane sees the command typed rather than pasted.
func Keystrokes(command string) []string {
	keys := make([]string, 0, len(command)+1)
	for _, r := range command {
		keys = append(keys, string(r))
	}
	return append(keys, "Enter")
}

// escapeKey protects a trailing semicolon, which tmux otherwise reads as a
// command separator. tmux turns a trailing `\;` back into `;`, so a token
// that already ends in `\;` gains a second backslash and arrives unchanged.
func escapeKey(key string) string {
	if strings.HasSuffix(key, ";") {
		return key[:len(key)-1] + `\;`
	}
	return key
}
