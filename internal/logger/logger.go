// Package logger builds charmbracelet/log loggers for command output.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a stderr logger at the given level.
func New(prefix string, level log.Level) *log.Logger {
	return NewWithWriter(os.Stderr, prefix, level)
}

// NewWithWriter returns a logger writing to w.
func NewWithWriter(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           level,
	})
}

// Timed runs fn and, when enabled, logs how long it took.
func Timed[T any](l *log.Logger, enabled bool, fn func() (T, error)) (T, error) {
	if !enabled {
		return fn()
	}
	start := time.Now()
	v, err := fn()
	l.Infof("Returned in %.1f ms", float64(time.Since(start).Microseconds())/1000)
	return v, err
}
