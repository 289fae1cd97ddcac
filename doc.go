// Package arena implements a segmented bump allocator (memory arena) for Go.
//
// # Overview
//
// An arena hands out portions of large segments on demand and never frees
// individual allocations. Memory is reclaimed in bulk, by Reset (keep the
// segments, rewind every head) or Close (drop the segments). This is useful for:
//
//   - Long-lived structures that only ever grow, such as symbol tables
//   - Scratch allocations with batch cleanup
//   - Reducing garbage collection pressure
//
// # Basic Usage
//
//	a, err := arena.Open(0) // Use default capacity
//	if err != nil {
//		return err
//	}
//	defer a.Close()
//
//	// Allocate raw bytes
//	buf, err := a.Fill(1024)
//
//	// Allocate typed, pointer-free values
//	p, ref, err := arena.Alloc[MyStruct](a)
//	q := arena.At[MyStruct](a, ref) // q == p
//
//	// Reset for reuse
//	a.Reset()
//
// # Memory Layout
//
// The first segment has the capacity passed to Open. When a request does not
// fit, the next segment in the chain is tried; when the chain is exhausted a
// new segment is linked with twice the capacity of the last one, capped at
// MaxSegmentSize. Requests larger than 4 bytes are 8-byte aligned, smaller
// ones 4-byte aligned.
//
// # References
//
// Arena memory is not scanned by the garbage collector, so values stored in it
// must not contain Go pointers. A Ref names an allocation by segment and
// offset and is the way arena-resident values point at each other.
//
// # Thread Safety
//
// The basic Arena type is not thread-safe. For concurrent access, use
// SafeArena; its Do method lets a structure built on the arena share the lock.
//
// # Budgets
//
// WithBudget charges segment capacity against a Budget (any
// *semaphore.Weighted works). When the budget is exhausted, allocations that
// need a new segment fail with ErrBudgetExceeded instead of exhausting the
// process.
package arena
