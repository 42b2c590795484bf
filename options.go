package clusterlab

type options struct {
	logger     *Logger
	metrics    MetricsCollector
	maxWorkers int64
	palette    []string
}

// Option configures Workbench constructor behavior.
type Option func(*options)

// WithLogger sets the logger for job lifecycle events.
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

// WithMetrics sets the metrics collector for job counters.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithMaxWorkers bounds the number of clustering jobs running concurrently.
// If n <= 0, the bound defaults to runtime.GOMAXPROCS(0).
func WithMaxWorkers(n int64) Option {
	return func(o *options) {
		o.maxWorkers = n
	}
}

// WithPalette replaces the shared cluster color palette used by new views.
func WithPalette(colors ...string) Option {
	return func(o *options) {
		o.palette = colors
	}
}
