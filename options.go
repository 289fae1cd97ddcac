package arena

import (
	"io"
	"log/slog"

	"golang.org/x/sync/semaphore"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Option is a configuration option for Open.
type Option func(*Arena)

// WithMaxSegmentSize lowers the segment capacity cap below MaxSegmentSize.
// It also bounds the largest single allocation.
func WithMaxSegmentSize(n int) Option {
	return func(a *Arena) {
		a.maxSegment = n
	}
}

// WithBudget charges every segment's capacity against b. Segment creation
// fails with ErrBudgetExceeded once b is exhausted, and Close returns the
// capacity to b. A budget may be shared by several arenas.
func WithBudget(b Budget) Option {
	return func(a *Arena) {
		a.budget = b
	}
}

// WithLogger sets the logger used for segment growth events.
// By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(a *Arena) {
		if l != nil {
			a.logger = l
		}
	}
}

// Budget bounds the memory reserved by arenas. *semaphore.Weighted satisfies it.
type Budget interface {
	TryAcquire(n int64) bool
	Release(n int64)
}

// NewBudget returns a Budget allowing at most limit bytes of segments.
func NewBudget(limit int64) Budget {
	return semaphore.NewWeighted(limit)
}
