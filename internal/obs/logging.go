// Package obs carries the ambient logging and metrics stack shared by the
// cgr and cmr search packages: a logrus logger (by default an info-level
// JSON logger on stdout) and a Prometheus-backed search Recorder (by
// default a no-op). Both are optional.
package obs

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logrus.Logger configured for structured JSON output,
// the way Valkyrie's pkg/utils.NewLogger configures its service loggers.
func NewLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	switch level {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "warn":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}

	return logger
}

// DefaultLogger is the package-level logger cgr and cmr fall back to when
// a caller does not supply one via WithLogger. It logs at info level to
// stdout; callers that want silence should pass a logger with output
// discarded, not rely on a nil-logger convention.
var DefaultLogger = NewLogger("info")
