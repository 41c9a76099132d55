package service

// Option defines a functional option for configuring a Service.
type Option func(*Service)

// WithLogger sets the logger for the Service.
//
// Debug level: use-case entry with input identifiers (development use)
// Info level: completed use cases with outcome and duration (production-safe)
// Error level: failed use cases.
func WithLogger(logger Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithContextualLogger sets the contextual logger for the Service. When both
// a Logger and a ContextualLogger are configured, the contextual one wins.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(s *Service) {
		s.contextualLogger = logger
	}
}

// WithMetrics sets the metrics collector for the Service. The collector
// receives per-use-case durations and outcome counters.
func WithMetrics(collector MetricsCollector) Option {
	return func(s *Service) {
		s.metrics = collector
	}
}
