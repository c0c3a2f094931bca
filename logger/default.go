package logger

import (
	"errors"
	"sync"

	"github.com/philipp01105/disco/core"
)

// ErrAlreadyInitialized is returned by Init once a default logger has
// been installed
var ErrAlreadyInitialized = errors.New("default logger already initialized")

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
	defaultSet    bool
)

func init() {
	defaultLogger = New(DefaultConfig())
}

// Default returns the process-wide logger. Before Init it renders with
// DefaultConfig.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// Init installs l as the process-wide logger. It succeeds once; later
// calls leave the installed logger in place and return
// ErrAlreadyInitialized.
func Init(l *Logger) error {
	if l == nil {
		return errors.New("logger: Init called with nil logger")
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultSet {
		return ErrAlreadyInitialized
	}
	defaultLogger = l
	defaultSet = true
	return nil
}

// resetDefault restores the pre-Init state
func resetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = New(DefaultConfig())
	defaultSet = false
}

// Package-level convenience functions using the default logger

// Log logs a message at level using the default logger
func Log(level core.Level, msg string) {
	Default().Log(level, msg)
}

// Trace logs a trace message using the default logger
func Trace(msg string) {
	Default().Trace(msg)
}

// Debug logs a debug message using the default logger
func Debug(msg string) {
	Default().Debug(msg)
}

// Info logs an info message using the default logger
func Info(msg string) {
	Default().Info(msg)
}

// Warn logs a warning message using the default logger
func Warn(msg string) {
	Default().Warn(msg)
}

// Error logs an error message using the default logger
func Error(msg string) {
	Default().Error(msg)
}

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...interface{}) {
	Default().Tracef(format, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	Default().Warnf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// Named returns a copy of the default logger with a different target
func Named(target string) *Logger {
	return Default().Named(target)
}
