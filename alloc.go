package arena

import "unsafe"

// Alloc returns a pointer to a zeroed T stored inside the arena, together with
// a Ref that At can resolve later.
//
// T must not contain Go pointers (pointers, slices, maps, strings, interfaces,
// channels or funcs): arena memory is not scanned by the garbage collector.
// Link arena-resident values with Ref instead. Zero-sized types cannot be
// allocated and return ErrInvalidSize.
func Alloc[T any](a *Arena) (*T, Ref, error) {
	var zero T
	ref, b, err := a.FillRef(int(unsafe.Sizeof(zero)))
	if err != nil {
		return nil, 0, err
	}
	clear(b)
	return (*T)(unsafe.Pointer(&b[0])), ref, nil
}

// AllocSlice allocates a zeroed slice of n elements of type T inside the arena.
// The same restrictions on T as for Alloc apply.
func AllocSlice[T any](a *Arena, n int) ([]T, Ref, error) {
	var zero T
	ref, b, err := a.FillRef(int(unsafe.Sizeof(zero)) * n)
	if err != nil {
		return nil, 0, err
	}
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), ref, nil
}

// At resolves a Ref returned by Alloc. It returns nil for the zero Ref.
func At[T any](a *Arena, r Ref) *T {
	var zero T
	b := a.Bytes(r, int(unsafe.Sizeof(zero)))
	if b == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(&b[0]))
}

// SliceAt resolves a Ref returned by AllocSlice for n elements.
// It returns nil for the zero Ref.
func SliceAt[T any](a *Arena, r Ref, n int) []T {
	var zero T
	b := a.Bytes(r, int(unsafe.Sizeof(zero))*n)
	if b == nil {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}
