package array

import (
	"errors"
	"fmt"

	arena "github.com/pavanmanishd/arenaindex"
)

const (
	// DefaultWidth is the branching factor used by New.
	DefaultWidth = 16
	// InvalidIndex is returned by Last for an empty array.
	InvalidIndex = -1
)

var (
	// ErrInvalidWidth is returned for an index width below 2.
	ErrInvalidWidth = errors.New("array: index width must be at least 2")
	// ErrIndexOutOfRange is returned by Set for an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("array: index out of range")
)

// Array is a dynamic sequence of byte elements whose storage and index tree
// both live in one arena. Elements are copied in on Push and Set; the slices
// returned by Get and Pop point into the arena and stay valid until the
// arena is reset or closed.
//
// Array is not goroutine-safe; use Safe for concurrent access.
type Array struct {
	arena  *arena.Arena
	root   arena.Ref
	length int
	width  int
	gen    uint32
}

// New creates an empty array bound to a with DefaultWidth.
func New(a *arena.Arena) (*Array, error) {
	return NewWidth(a, DefaultWidth)
}

// NewWidth creates an empty array bound to a whose index tree has the given
// branching factor. The width is fixed for the lifetime of the array.
func NewWidth(a *arena.Arena, width int) (*Array, error) {
	if width < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	x := &Array{arena: a, width: width}
	if err := x.rebind(); err != nil {
		return nil, err
	}
	return x, nil
}

// Push copies data into the arena and appends it at position Len().
// On failure the array is unchanged.
func (x *Array) Push(data []byte) error {
	if !x.live() {
		if err := x.rebind(); err != nil {
			return err
		}
	}
	ref, buf, err := x.arena.FillRef(len(data))
	if err != nil {
		return fmt.Errorf("array: push: %w", err)
	}
	copy(buf, data)

	n, err := x.locate(x.length, true)
	if err != nil {
		return fmt.Errorf("array: push: %w", err)
	}
	n.item, n.size = ref, uint64(len(data))
	x.length++
	return nil
}

// Pop removes the last element and returns it. It reports false if the
// array is empty. Index nodes along the path are kept for reuse.
func (x *Array) Pop() ([]byte, bool) {
	if x.Len() == 0 {
		return nil, false
	}
	x.length--
	n, _ := x.locate(x.length, false)
	if n == nil {
		return nil, false
	}
	data := x.arena.Bytes(n.item, int(n.size))
	n.item, n.size = 0, 0
	return data, true
}

// Get returns the element at position i, or false if i is out of range.
func (x *Array) Get(i int) ([]byte, bool) {
	if i < 0 || i >= x.Len() {
		return nil, false
	}
	n, _ := x.locate(i, false)
	if n == nil || n.item.IsZero() {
		return nil, false
	}
	return x.arena.Bytes(n.item, int(n.size)), true
}

// Set copies data into the arena and makes it the element at position i.
// The previous element's bytes are not reclaimed. Set does nothing and
// returns ErrIndexOutOfRange if i is outside [0, Len()).
func (x *Array) Set(i int, data []byte) error {
	if i < 0 || i >= x.Len() {
		return fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, i, x.Len())
	}
	ref, buf, err := x.arena.FillRef(len(data))
	if err != nil {
		return fmt.Errorf("array: set: %w", err)
	}
	copy(buf, data)

	n, _ := x.locate(i, false)
	if n == nil {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	n.item, n.size = ref, uint64(len(data))
	return nil
}

// Len returns the number of elements. An array whose arena has been reset
// or closed since it was last written is empty.
func (x *Array) Len() int {
	if !x.live() {
		return 0
	}
	return x.length
}

// Last returns the index of the last element, or InvalidIndex if the array
// is empty.
func (x *Array) Last() int {
	if x.Len() == 0 {
		return InvalidIndex
	}
	return x.length - 1
}

// Width returns the branching factor of the index tree.
func (x *Array) Width() int {
	return x.width
}

// Arena returns the arena the array allocates from.
func (x *Array) Arena() *arena.Arena {
	return x.arena
}

func (x *Array) live() bool {
	return x.gen == x.arena.Generation() && !x.arena.Closed()
}

// rebind allocates a fresh root in the arena's current generation and
// empties the array.
func (x *Array) rebind() error {
	_, root, err := arena.Alloc[node](x.arena)
	if err != nil {
		return fmt.Errorf("array: allocate root: %w", err)
	}
	x.root = root
	x.length = 0
	x.gen = x.arena.Generation()
	return nil
}
