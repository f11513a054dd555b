package printing

import (
	"bytes"
	"io"
)

// LinePrefixWriter wraps an io.Writer and adds a prefix to every line.
// The harness uses it to mark suite output so it cannot be confused
// with the harness's own log lines.
type LinePrefixWriter struct {
	to      io.Writer
	prefix  []byte
	midLine bool
}

var _ io.Writer = (*LinePrefixWriter)(nil)

// NewLinePrefixWriter creates and returns a new LinePrefixWriter.
func NewLinePrefixWriter(to io.Writer, prefix string) *LinePrefixWriter {
	return &LinePrefixWriter{
		to:     to,
		prefix: []byte(prefix),
	}
}

// Write to the underlying io.Writer, prefixing each new line with the
// configured prefix. Returns the number of *input* bytes written, not
// counting prefix bytes. A write that ends mid-line leaves the line
// open: the next write continues it without a fresh prefix.
func (w *LinePrefixWriter) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		line := p
		newline := false
		if i := bytes.IndexByte(p, '\n'); i >= 0 {
			line = p[:i+1]
			newline = true
		}
		p = p[len(line):]

		if !w.midLine {
			if _, err := w.to.Write(w.prefix); err != nil {
				return written, err
			}
		}
		n, err := w.to.Write(line)
		written += n
		if err != nil {
			return written, err
		}
		w.midLine = !newline
	}
	return written, nil
}
