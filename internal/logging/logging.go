// Package logging wires apex/log with a colored single line handler.
package logging

import (
	"fmt"
	"io"
	"sync"
	"time"

	alog "github.com/apex/log"
)

// @Author KHighness
// @Update 2026-10-18

const (
	red    = 31
	yellow = 33
	blue   = 34
	gray   = 37
)

var colors = [...]int{
	alog.DebugLevel: gray,
	alog.InfoLevel:  blue,
	alog.WarnLevel:  yellow,
	alog.ErrorLevel: red,
	alog.FatalLevel: red,
}

var levels = [...]string{
	alog.DebugLevel: "DEBUG",
	alog.InfoLevel:  "INFO",
	alog.WarnLevel:  "WARN",
	alog.ErrorLevel: "ERROR",
	alog.FatalLevel: "FATAL",
}

// Handler writes one colored line per entry, fields sorted by name.
type Handler struct {
	mu     sync.Mutex
	Writer io.Writer
}

func (h *Handler) HandleLog(e *alog.Entry) error {
	color := colors[e.Level]
	level := levels[e.Level]
	ts := e.Timestamp.UTC().Format(time.RFC3339Nano)

	h.mu.Lock()
	defer h.mu.Unlock()

	fmt.Fprintf(h.Writer, "\033[%dm%6s\033[0m %s %-25s", color, level, ts, e.Message)
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(h.Writer, " \033[%dm%s\033[0m=%v", color, name, e.Fields.Get(name))
	}
	fmt.Fprintln(h.Writer)
	return nil
}

// Logger hides the apex/log implementation.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})

	// Set key/value context for further logging with the returned logger
	WithFields(fields alog.Fielder) *alog.Entry

	// Return a logger with the specified error set
	WithError(err error) *alog.Entry
}

// New creates a Logger writing to w at the given level
// (debug, info, warn, error, fatal).
func New(w io.Writer, level string) (Logger, error) {
	lvl, err := alog.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return &alog.Logger{
		Handler: &Handler{Writer: w},
		Level:   lvl,
	}, nil
}
