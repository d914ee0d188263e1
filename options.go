package pathguide

import (
	"go.uber.org/zap"

	"github.com/prometheus/client_golang/prometheus"
)

type sugaredLogger interface {
	Debugw(msg string, keysAndValues ...any)
}

// options holds the configuration shared by all three guide constructors.
type options struct {
	logger   sugaredLogger
	registry *prometheus.Registry
	trace    *Trace
}

// Option configures a guide at construction time.
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{logger: debugLogger}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger overrides the build-tag-selected default debug logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *options) { o.logger = l }
}

// WithRegistry registers the guide's observability gauges (spec.md §6:
// total node count, current max-fully-explored level) against reg. A guide
// constructed without this option collects no metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *options) { o.registry = reg }
}

// WithTrace attaches a trace ring buffer that records every materialized
// decision for later inspection (see trace.go).
func WithTrace(t *Trace) Option {
	return func(o *options) { o.trace = t }
}
