package idset

type options struct {
	logger  *Logger
	metrics MetricsCollector
}

// Option configures Allocator constructor behavior.
type Option func(*options)

func applyOptions(opts []Option) options {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}

// WithLogger configures the logger used for allocator diagnostics
// (exhaustion and out-of-range indexes are logged at debug level).
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures metrics collection for Acquire, Reserve
// and Release. The default collects nothing and adds no overhead to the
// acquire path.
func WithMetricsCollector(c MetricsCollector) Option {
	return func(o *options) {
		o.metrics = c
	}
}
