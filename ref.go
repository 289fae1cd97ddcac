package arena

import "fmt"

// Ref addresses an allocation by segment and offset rather than by pointer,
// so structures stored inside arena memory can link to each other without
// hiding Go pointers from the garbage collector. The zero Ref is null.
type Ref uint64

func makeRef(seg, off int) Ref {
	return Ref(uint64(seg+1)<<32 | uint64(uint32(off)))
}

// IsZero reports whether r is the null Ref.
func (r Ref) IsZero() bool {
	return r == 0
}

func (r Ref) segment() int {
	return int(r>>32) - 1
}

func (r Ref) offset() int {
	return int(uint32(r))
}

func (r Ref) String() string {
	if r == 0 {
		return "Ref(nil)"
	}
	return fmt.Sprintf("Ref(%d:%d)", r.segment(), r.offset())
}
