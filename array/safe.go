package array

import (
	"bytes"

	arena "github.com/pavanmanishd/arenaindex"
)

// Safe is an Array guarded by the lock of the SafeArena it allocates from.
// Every array on that arena, and every direct SafeArena call, serialize on
// the same lock. Get and Pop return copies.
type Safe struct {
	s   *arena.SafeArena
	arr *Array
}

// NewSafe creates an empty Safe array on s with the given index width.
func NewSafe(s *arena.SafeArena, width int) (*Safe, error) {
	var arr *Array
	err := s.Do(func(a *arena.Arena) error {
		var err error
		arr, err = NewWidth(a, width)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &Safe{s: s, arr: arr}, nil
}

// Push thread-safely appends a copy of data.
func (x *Safe) Push(data []byte) error {
	return x.s.Do(func(*arena.Arena) error {
		return x.arr.Push(data)
	})
}

// Pop thread-safely removes the last element and returns a copy of it.
func (x *Safe) Pop() (data []byte, ok bool) {
	_ = x.s.Do(func(*arena.Arena) error {
		var b []byte
		if b, ok = x.arr.Pop(); ok {
			data = bytes.Clone(b)
		}
		return nil
	})
	return data, ok
}

// Get thread-safely returns a copy of the element at position i.
func (x *Safe) Get(i int) (data []byte, ok bool) {
	_ = x.s.Do(func(*arena.Arena) error {
		var b []byte
		if b, ok = x.arr.Get(i); ok {
			data = bytes.Clone(b)
		}
		return nil
	})
	return data, ok
}

// Set thread-safely replaces the element at position i.
func (x *Safe) Set(i int, data []byte) error {
	return x.s.Do(func(*arena.Arena) error {
		return x.arr.Set(i, data)
	})
}

// Len thread-safely returns the number of elements.
func (x *Safe) Len() (n int) {
	_ = x.s.Do(func(*arena.Arena) error {
		n = x.arr.Len()
		return nil
	})
	return n
}

// Last thread-safely returns the index of the last element, or InvalidIndex.
func (x *Safe) Last() (i int) {
	_ = x.s.Do(func(*arena.Arena) error {
		i = x.arr.Last()
		return nil
	})
	return i
}
