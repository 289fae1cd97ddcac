package arena

import "errors"

var (
	// ErrInvalidSize is returned when an allocation of zero or negative size is requested.
	ErrInvalidSize = errors.New("arena: invalid allocation size")
	// ErrTooLarge is returned when an allocation exceeds the maximum segment size.
	ErrTooLarge = errors.New("arena: allocation exceeds max segment size")
	// ErrInvalidCapacity is returned by Open for an unusable segment capacity.
	ErrInvalidCapacity = errors.New("arena: invalid capacity")
	// ErrClosed is returned when allocating from a closed arena.
	ErrClosed = errors.New("arena: use after Close()")
	// ErrBudgetExceeded is returned when the memory budget refuses a new segment.
	ErrBudgetExceeded = errors.New("arena: memory budget exceeded")
)
