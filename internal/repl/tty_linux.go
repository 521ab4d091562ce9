//go:build linux

package repl

import (
	"os"

	"golang.org/x/sys/unix"
)

// IsTerminal reports whether f is connected to an interactive terminal, by
// probing for termios settings the way a terminal device supports and a
// pipe or regular file does not.
func IsTerminal(f *os.File) bool {
	_, err := unix.IoctlGetTermios(int(f.Fd()), unix.TCGETS)
	return err == nil
}
