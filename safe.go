package arena

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// Structures built on the arena can share the same lock through Do, which
// keeps the bump pointer and their own mutations from interleaving.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// OpenSafe creates a new thread-safe arena. See Open.
func OpenSafe(capacity int, opts ...Option) (*SafeArena, error) {
	a, err := Open(capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &SafeArena{a: a}, nil
}

// Do runs fn with exclusive access to the underlying arena.
// The arena must not be retained after fn returns.
func (s *SafeArena) Do(fn func(a *Arena) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.a)
}

// Fill thread-safely allocates n bytes. See Arena.Fill.
func (s *SafeArena) Fill(n int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Fill(n)
}

// Reset thread-safely resets every segment for reuse.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Close thread-safely releases every segment.
func (s *SafeArena) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Close()
}

// Size thread-safely returns the number of bytes in use.
func (s *SafeArena) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Size()
}

// Capacity thread-safely returns the reserved capacity.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

// SafeAlloc thread-safely allocates a zeroed T. See Alloc.
func SafeAlloc[T any](s *SafeArena) (*T, Ref, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocSlice thread-safely allocates a zeroed slice of n elements. See AllocSlice.
func SafeAllocSlice[T any](s *SafeArena, n int) ([]T, Ref, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}
