package cgr

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cgrouting/internal/obs"
)

// Options configures a Search call. The zero value is not meant to be
// constructed directly; use DefaultOptions and the With* functions.
type Options struct {
	Logger  *logrus.Logger
	Metrics obs.Recorder
}

// Option is a functional option for Search, following the pattern the
// teacher's dijkstra package uses for its own Options.
type Option func(*Options)

// DefaultOptions returns the defaults Search applies when no options are
// given: the package-level default logger and a no-op metrics recorder.
func DefaultOptions() Options {
	return Options{
		Logger:  obs.DefaultLogger,
		Metrics: obs.NoopRecorder{},
	}
}

// WithLogger overrides the logger Search uses to report its outcome.
func WithLogger(logger *logrus.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithMetrics overrides the Recorder Search reports its outcome to.
func WithMetrics(recorder obs.Recorder) Option {
	return func(o *Options) {
		o.Metrics = recorder
	}
}
