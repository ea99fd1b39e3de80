// Package logger wraps github.com/op/go-logging behind the small surface
// the interpreter packages need, following the pattern the original
// go-evm runtime package used: one named logger per package, created with
// NewLogger("[pkgname]"), with leveled Debugf/Infof/Warningf/Errorf calls.
package logger

import (
	"os"
	"sync"

	"github.com/op/go-logging"
)

var (
	initOnce sync.Once
	level    = logging.INFO
)

// SetLevel changes the log level applied to every logger created through
// NewLogger. The change also applies to loggers created earlier, since
// go-logging checks the backend's level on every call.
func SetLevel(l logging.Level) {
	level = l
	logging.SetLevel(level, "")
}

func setupBackend() {
	initOnce.Do(func() {
		backend := logging.NewLogBackend(os.Stderr, "", 0)
		formatter := logging.MustStringFormatter(
			`%{time:2006-01-02 15:04:05.000} %{level:.4s} %{module}: %{message}`,
		)
		formatted := logging.NewBackendFormatter(backend, formatter)
		leveled := logging.AddModuleLevel(formatted)
		leveled.SetLevel(level, "")
		logging.SetBackend(leveled)
	})
}

// Logger is a named logger bound to one package.
type Logger struct {
	l *logging.Logger
}

// NewLogger returns a logger tagged with name, e.g. NewLogger("[evm]").
func NewLogger(name string) *Logger {
	setupBackend()
	return &Logger{l: logging.MustGetLogger(name)}
}

func (lg *Logger) Debugf(format string, args ...interface{}) {
	lg.l.Debugf(format, args...)
}

func (lg *Logger) Infof(format string, args ...interface{}) {
	lg.l.Infof(format, args...)
}

func (lg *Logger) Warningf(format string, args ...interface{}) {
	lg.l.Warningf(format, args...)
}

func (lg *Logger) Errorf(format string, args ...interface{}) {
	lg.l.Errorf(format, args...)
}
