package repl

import (
	"os"
	"testing"
)

func TestIsTerminalReportsFalseForRegularFile(t *testing.T) {
	t.Parallel()

	f, err := os.CreateTemp(t.TempDir(), "lineed-tty-test")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Fatal("expected a regular file to not report as a terminal")
	}
}
