// Package log provides a minimal prefixed logger with ANSI-colored tags
// for console output. Each component of the application owns a Logger
// with its own prefix and color.
package log

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

const colorReset = "\033[0m"

// ErrNilWriter indicates a Logger was constructed without an output writer.
var ErrNilWriter = errors.New("log: output writer must not be nil")

// Logger writes leveled, prefixed log lines to a single writer.
type Logger struct {
	prefix string
	color  string
	out    io.Writer
	mu     sync.Mutex
}

// New creates a Logger writing to out with the given prefix and ANSI color.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if out == nil {
		return nil, ErrNilWriter
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    out,
	}, nil
}

func (l *Logger) log(level, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s[%s] [%s]%s %s\n", l.color, l.prefix, level, colorReset, message)
}

// Info logs an informational message.
func (l *Logger) Info(message string) {
	l.log("INFO", message)
}

// Warning logs a warning message.
func (l *Logger) Warning(message string) {
	l.log("WARNING", message)
}

// Error logs an error message.
func (l *Logger) Error(message string) {
	l.log("ERROR", message)
}
