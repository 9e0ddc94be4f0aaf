package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Stderr is the path that sends the trace to standard error instead of a file.
const Stderr = "-"

var (
	mu  sync.Mutex
	out io.Writer
	// closer is set when out is a file opened by Enable
	closer io.Closer
)

// Enable starts tracing to the file at path, creating parent directories as
// needed. A path of Stderr traces to standard error.
func Enable(path string) error {
	if path == Stderr {
		EnableWriter(os.Stderr)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	out, closer = f, f
	writeLocked("", "debug logging enabled (%s)", path)
	return nil
}

// EnableWriter starts tracing to w. The caller keeps ownership of w.
func EnableWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	out = w
	writeLocked("", "debug logging enabled")
}

// Close stops tracing and closes the log file, if any.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

// IsEnabled reports whether tracing is on.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return out != nil
}

// Log writes an unscoped trace line.
func Log(format string, args ...interface{}) {
	Scope("").Logf(format, args...)
}

// Scope names the component a trace line comes from.
type Scope string

// Logf writes a trace line prefixed with the scope name.
func (s Scope) Logf(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	writeLocked(s, format, args...)
}

// Scoped returns the Logf method of the named scope. The result is a
// grid.Logger and can be handed to grid.WithLogger.
func Scoped(name string) func(format string, args ...interface{}) {
	return Scope(name).Logf
}

// Timed traces how long an operation takes:
//
//	defer debug.Timed("relayout")()
func Timed(name string) func() {
	if !IsEnabled() {
		return func() {}
	}

	start := time.Now()
	return func() {
		Log("%s took %v", name, time.Since(start).Round(time.Microsecond))
	}
}

func closeLocked() {
	if closer != nil {
		_ = closer.Close()
	}
	out, closer = nil, nil
}

func writeLocked(s Scope, format string, args ...interface{}) {
	if out == nil {
		return
	}

	msg := fmt.Sprintf(format, args...)
	if s != "" {
		msg = string(s) + ": " + msg
	}
	_, _ = fmt.Fprintf(out, "[%s] %s\n", time.Now().Format("15:04:05.000"), msg)
}
