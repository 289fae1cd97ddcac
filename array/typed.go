package array

import (
	"unsafe"

	arena "github.com/pavanmanishd/arenaindex"
)

// Typed is an Array of fixed-size values of type T. Values are stored by
// copying their bytes into the arena, so T must not contain Go pointers and
// must not be zero-sized.
type Typed[T any] struct {
	arr *Array
}

// NewTyped creates an empty Typed array bound to a with the given index width.
func NewTyped[T any](a *arena.Arena, width int) (*Typed[T], error) {
	arr, err := NewWidth(a, width)
	if err != nil {
		return nil, err
	}
	return &Typed[T]{arr: arr}, nil
}

// Push appends v.
func (t *Typed[T]) Push(v T) error {
	return t.arr.Push(bytesOf(&v))
}

// Pop removes and returns the last value.
func (t *Typed[T]) Pop() (T, bool) {
	return valueOf[T](t.arr.Pop())
}

// Get returns the value at position i.
func (t *Typed[T]) Get(i int) (T, bool) {
	return valueOf[T](t.arr.Get(i))
}

// Set replaces the value at position i.
func (t *Typed[T]) Set(i int, v T) error {
	return t.arr.Set(i, bytesOf(&v))
}

// Len returns the number of values.
func (t *Typed[T]) Len() int { return t.arr.Len() }

// Last returns the index of the last value, or InvalidIndex.
func (t *Typed[T]) Last() int { return t.arr.Last() }

// Bytes returns the underlying byte array.
func (t *Typed[T]) Bytes() *Array { return t.arr }

func bytesOf[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

func valueOf[T any](b []byte, ok bool) (T, bool) {
	var v T
	if !ok || uintptr(len(b)) != unsafe.Sizeof(v) {
		return v, false
	}
	return *(*T)(unsafe.Pointer(&b[0])), true
}
