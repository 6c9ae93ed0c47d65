package workspace

type options struct {
	logger  *Logger
	metrics MetricsCollector
}

// Option configures Allocate behavior.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

// WithLogger sets the logger used for allocation and release events.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector sets the metrics collector notified on allocation and
// release. The collector is shared with the release action and may be called
// from whichever goroutine drives the Unique's lifetime.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc != nil {
			o.metrics = mc
		}
	}
}
