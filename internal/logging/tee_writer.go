package logging

import (
	"io"

	"go.uber.org/multierr"
)

// teeWriter copies each log line to all of its writers.
// A failing writer does not stop the others. Errors are combined, and the
// reported length is zero only when no writer took the line.
type teeWriter struct {
	writers []io.Writer
}

func newTeeWriter(writers ...io.Writer) *teeWriter {
	return &teeWriter{writers: writers}
}

func (t *teeWriter) Write(p []byte) (int, error) {
	var errs error
	written := false
	for _, w := range t.writers {
		if _, err := w.Write(p); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		written = true
	}

	if !written && len(t.writers) > 0 {
		return 0, errs
	}
	return len(p), errs
}
