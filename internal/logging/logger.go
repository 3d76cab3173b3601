// Package logging provides structured logging for lsprov.
//
// The Logger interface lets the host application plug in its own logging
// implementation; a zap-backed logger is provided for the CLI, and a no-op
// logger is used when none is configured.
package logging

// Logger provides structured logging with key-value pairs.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs.
	Debug(msg string, keysAndValues ...interface{})

	// Info logs info-level messages with optional key-value pairs.
	Info(msg string, keysAndValues ...interface{})

	// Warn logs warning-level messages with optional key-value pairs.
	Warn(msg string, keysAndValues ...interface{})

	// Error logs error-level messages with optional key-value pairs.
	Error(msg string, keysAndValues ...interface{})
}

// nopLogger is a Logger implementation that does nothing.
type nopLogger struct{}

func (n *nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (n *nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (n *nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (n *nopLogger) Error(msg string, keysAndValues ...interface{}) {}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &nopLogger{}
}
