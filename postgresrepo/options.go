package postgresrepo

// Logger interface for SQL query logging and error reporting.
// Dependency-free so any logging backend can be plugged in.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Option defines a functional option for configuring a Store.
type Option func(*Store)

// WithLogger sets the logger for the Store.
//
// Debug level: executed SQL statements (development use)
// Error level: failed statements and scan failures.
func WithLogger(logger Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}
