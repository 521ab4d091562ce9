// Package diag centralizes the editor's stderr diagnostics: plain
// prefixed lines, no structured logging. The editor has no user-visible
// error channel on stdout, so everything here is operator-facing.
package diag

import (
	"fmt"
	"io"
)

// Reporter writes diagnostics to a fixed stream, usually os.Stderr.
type Reporter struct {
	w io.Writer
}

// New returns a Reporter that writes to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Errorf reports a recoverable error condition.
func (r *Reporter) Errorf(format string, args ...any) {
	fmt.Fprintf(r.w, "lineed: "+format+"\n", args...)
}

// Fatalf reports an unrecoverable condition. Callers are expected to
// follow it with a non-zero os.Exit.
func (r *Reporter) Fatalf(format string, args ...any) {
	fmt.Fprintf(r.w, "lineed: fatal: "+format+"\n", args...)
}
