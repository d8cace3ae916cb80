// Package xlog is fluxbase's logger. It stays silent unless FLUXBASE_DEBUG
// is set, the same convention the rest of this codebase's ancestry uses
// for its own DEBUG_I2P switch.
package xlog

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	log  *Logger
	once sync.Once
)

// Logger wraps *logrus.Logger so call sites don't import logrus directly.
type Logger struct {
	*logrus.Logger
}

// Entry is a Logger bound to a set of structured fields.
type Entry struct {
	Logger
	entry *logrus.Entry
}

func (l *Logger) WithField(key string, value interface{}) *Entry {
	return &Entry{*l, l.Logger.WithField(key, value)}
}

func (l *Logger) WithFields(fields logrus.Fields) *Entry {
	return &Entry{*l, l.Logger.WithFields(fields)}
}

func (l *Logger) WithError(err error) *Entry {
	return &Entry{*l, l.Logger.WithError(err)}
}

// WithField returns a new Entry with key added to e's existing fields.
func (e *Entry) WithField(key string, value interface{}) *Entry {
	return &Entry{e.Logger, e.entry.WithField(key, value)}
}

// WithFields returns a new Entry with fields merged onto e's existing
// fields, rather than starting over from the bare logger.
func (e *Entry) WithFields(fields logrus.Fields) *Entry {
	return &Entry{e.Logger, e.entry.WithFields(fields)}
}

// Debug logs at debug level with the entry's bound fields.
func (e *Entry) Debug(args ...interface{}) { e.entry.Debug(args...) }

// Debugf logs at debug level with the entry's bound fields.
func (e *Entry) Debugf(format string, args ...interface{}) { e.entry.Debugf(format, args...) }

// Warn logs at warn level with the entry's bound fields.
func (e *Entry) Warn(args ...interface{}) { e.entry.Warn(args...) }

// Error logs at error level with the entry's bound fields.
func (e *Entry) Error(args ...interface{}) { e.entry.Error(args...) }

func initLogger() {
	once.Do(func() {
		log = &Logger{Logger: logrus.New()}
		// Silent by default: a CLI codec should not print anything
		// aside from the documented "Error: " line.
		log.SetOutput(io.Discard)
		log.SetLevel(logrus.PanicLevel)

		level := os.Getenv("FLUXBASE_DEBUG")
		if level == "" {
			return
		}
		log.SetOutput(os.Stderr)
		switch strings.ToLower(level) {
		case "warn":
			log.SetLevel(logrus.WarnLevel)
		case "error":
			log.SetLevel(logrus.ErrorLevel)
		default:
			log.SetLevel(logrus.DebugLevel)
		}
		log.WithField("level", log.GetLevel()).Debug("logging enabled")
	})
}

// Get returns the process-wide Logger, initializing it on first use.
func Get() *Logger {
	if log == nil {
		initLogger()
	}
	return log
}

func init() {
	initLogger()
}
