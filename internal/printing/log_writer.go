// Package printing provides output helpers shared by the reporters and
// the riot harness: context indentation, line prefixing, and a lenient
// log writer.
package printing

import (
	"fmt"
	"io"
	"sync"
)

// LogWriter wraps an io.Writer and ignores errors when writing. It also
// provides a Logf method similar to log.Printf.
type LogWriter struct {
	out io.Writer
	mu  sync.Mutex
}

var _ io.Writer = (*LogWriter)(nil)

func NewLogWriter(to io.Writer) *LogWriter {
	return &LogWriter{out: to}
}

// Write to the underlying io.Writer. Errors are silently ignored.
// Always returns len(p) and a nil error.
func (lw *LogWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	_, _ = lw.out.Write(p)
	return len(p), nil
}

// Logf writes a log line to the underlying io.Writer. A newline is
// automatically appended.
func (lw *LogWriter) Logf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(lw, format+"\n", a...)
}
