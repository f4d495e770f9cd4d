package envmap

import "time"

// LogEvent describes one store operation for logging.
type LogEvent struct {
	Op       string // get, set, delete, has, evaluate
	Path     string
	Engine   string // evaluator engine, evaluate ops only
	Expr     string // expression text, evaluate ops only
	Matched  int    // number of table keys the operation touched
	Duration time.Duration
	Err      error
}

// Logger records store operations.
type Logger interface {
	LogOperation(LogEvent)
}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(LogEvent)

// LogOperation implements Logger.
func (f LoggerFunc) LogOperation(event LogEvent) {
	if f != nil {
		f(event)
	}
}

type noopLogger struct{}

func (noopLogger) LogOperation(LogEvent) {}

// WithLogger attaches an operation logger to the store.
func WithLogger(logger Logger) StoreOption {
	return func(cfg *storeConfig) {
		if logger == nil {
			cfg.logger = noopLogger{}
			return
		}
		cfg.logger = logger
	}
}
