package logging

import (
	"io"
	"log"
	"os"
)

// New creates the operational logger. All diagnostic output goes to
// stderr so it never interleaves with the user-facing report on stdout.
func New() *log.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a logger on an arbitrary writer, used by tests
// to capture log output.
func NewWithWriter(w io.Writer) *log.Logger {
	return log.New(w, "", log.LstdFlags|log.Lmicroseconds)
}
