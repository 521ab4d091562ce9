//go:build !linux

package repl

import "os"

// IsTerminal reports whether f is connected to an interactive terminal.
// Non-Linux builds fall back to the file-mode check since the termios
// ioctl numbers differ per OS.
func IsTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
