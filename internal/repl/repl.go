// Package repl is the optional interactive front end: when stdin is a
// terminal, command lines are read through a liner.State prompt instead of
// a bare reader, giving history navigation and line editing across runs.
// It changes nothing about command semantics - it is pure UX sugar around
// the same grammar the dispatcher's parser consumes.
package repl

import (
	"bytes"
	"io"
	"os"

	"github.com/natefinch/atomic"
	"github.com/peterh/liner"
)

// Prompt is the liner prompt string shown for each command line.
const Prompt = "lineed> "

// Session wraps a liner.State as an io.Reader that yields one newline
// terminated line per Prompt call, suitable for feeding straight into the
// dispatcher's parser.Reader.
type Session struct {
	state       *liner.State
	historyPath string
	buf         []byte
	done        bool
}

// Open starts an interactive session, loading prior history from
// historyPath if it exists.
func Open(historyPath string) *Session {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = state.ReadHistory(f)
			_ = f.Close()
		}
	}

	return &Session{state: state, historyPath: historyPath}
}

// Read implements io.Reader by pulling one line at a time from the liner
// prompt, appending each accepted line to the history, and yielding it
// newline-terminated.
func (s *Session) Read(p []byte) (int, error) {
	if s.done {
		return 0, io.EOF
	}

	if len(s.buf) == 0 {
		line, err := s.state.Prompt(Prompt)
		if err != nil {
			s.done = true
			if err == liner.ErrPromptAborted || err == io.EOF {
				return 0, io.EOF
			}
			return 0, err
		}

		s.state.AppendHistory(line)
		s.buf = append([]byte(line), '\n')
	}

	n := copy(p, s.buf)
	s.buf = s.buf[n:]

	return n, nil
}

// Close persists history (atomically, so a crash mid-write never leaves a
// truncated file) and releases the terminal.
func (s *Session) Close() error {
	defer func() { _ = s.state.Close() }()

	if s.historyPath == "" {
		return nil
	}

	var buf bytes.Buffer
	if _, err := s.state.WriteHistory(&buf); err != nil {
		return err
	}

	return atomic.WriteFile(s.historyPath, bytes.NewReader(buf.Bytes()))
}
