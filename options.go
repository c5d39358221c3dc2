package altdeque

import "log/slog"

// Option configures a Deque.
type Option[T any] func(*options[T])

type options[T any] struct {
	// drop is called with every element the Deque discards on its own, e.g.
	// in Truncate, Clear, Set or when a Drain is closed early.
	drop    func(T)
	metrics *Metrics
	logger  *slog.Logger
}

// WithDropFunc sets a function that receives every element the Deque
// discards without returning it to the caller. Popped, removed and drained
// elements are returned instead and never reach it.
//
// If the function panics during a bulk removal, the remaining elements are
// still handed to it and the Deque is left consistent before the panic
// propagates.
func WithDropFunc[T any](drop func(T)) Option[T] {
	return func(opts *options[T]) {
		opts.drop = drop
	}
}

// WithMetrics exports the Deque's reallocations, stack flips and
// rearrangements to m. Many deques may share one Metrics. A nil m is
// ignored.
func WithMetrics[T any](m *Metrics) Option[T] {
	return func(opts *options[T]) {
		if m != nil {
			opts.metrics = m
		}
	}
}

// WithLogger enables debug logging of reallocations. A nil logger is
// ignored.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(opts *options[T]) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

func applyOptions[T any](opts ...Option[T]) options[T] {
	var o options[T]
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
