package logger

import corelogger "github.com/instancekit/instancekit/core/logger"

// Logger mirrors the core logger interface for convenience.
type Logger = corelogger.Logger

// New returns a Logger for the given component at the default level. The
// environment is detected via the APP_ENV variable.
func New(component string) Logger {
	return NewZerologLogger(component, "")
}
