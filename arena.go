package arena

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/dustin/go-humanize"
)

const (
	// MaxSegmentSize caps the capacity of any single segment (1 GiB).
	MaxSegmentSize = 1 << 30

	// DefaultCapacity is the capacity of the first segment when Open is given
	// a non-positive capacity (64 KiB).
	DefaultCapacity = 1 << 16
)

// segment is one fixed-capacity buffer in the arena chain.
type segment struct {
	buf  []byte // backing memory, 8-byte aligned
	head int    // next free byte
}

// Arena is a chain of bump-allocated segments. Segments are linked when the
// chain runs out of room and are never unlinked until Close.
// Not goroutine-safe; use SafeArena for concurrent access.
type Arena struct {
	segments   []segment
	maxSegment int
	budget     Budget
	logger     *slog.Logger
	gen        uint32
	closed     bool
}

// Open creates an arena with one segment of the given capacity.
// If capacity <= 0, DefaultCapacity is used.
func Open(capacity int, opts ...Option) (*Arena, error) {
	a := &Arena{
		maxSegment: MaxSegmentSize,
		logger:     discardLogger,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.maxSegment <= 0 || a.maxSegment > MaxSegmentSize {
		return nil, fmt.Errorf("%w: max segment size %d", ErrInvalidCapacity, a.maxSegment)
	}
	if capacity <= 0 {
		capacity = min(DefaultCapacity, a.maxSegment)
	}
	if capacity > a.maxSegment {
		return nil, fmt.Errorf("%w: %d exceeds max segment size %d", ErrInvalidCapacity, capacity, a.maxSegment)
	}
	if err := a.grow(capacity); err != nil {
		return nil, err
	}
	return a, nil
}

// Fill returns n bytes of arena memory. The contents are undefined; callers
// must write before reading.
func (a *Arena) Fill(n int) ([]byte, error) {
	_, b, err := a.FillRef(n)
	return b, err
}

// FillRef is Fill that also returns a Ref addressing the allocation.
//
// Requests larger than 4 bytes are 8-byte aligned, smaller ones 4-byte
// aligned. When the aligned request does not fit a segment the next one is
// tried, and a new segment is linked once the chain is exhausted.
func (a *Arena) FillRef(n int) (Ref, []byte, error) {
	if a.closed {
		return 0, nil, ErrClosed
	}
	if n <= 0 {
		return 0, nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if n > a.maxSegment {
		return 0, nil, fmt.Errorf("%w: %d exceeds max segment size %d", ErrTooLarge, n, a.maxSegment)
	}

	align := alignFor(n)
	for i := 0; ; i++ {
		if i == len(a.segments) {
			if err := a.grow(a.nextCapacity()); err != nil {
				return 0, nil, err
			}
		}
		s := &a.segments[i]
		off := alignUp(s.head, align)
		if off+n > len(s.buf) {
			continue
		}
		s.head = off + n
		return makeRef(i, off), s.buf[off : off+n : off+n], nil
	}
}

// Bytes resolves a Ref returned by FillRef into n bytes of arena memory.
// It returns nil for the zero Ref or a Ref that is out of bounds.
func (a *Arena) Bytes(r Ref, n int) []byte {
	if r == 0 || n <= 0 {
		return nil
	}
	i, off := r.segment(), r.offset()
	if i >= len(a.segments) {
		return nil
	}
	buf := a.segments[i].buf
	if off+n > len(buf) {
		return nil
	}
	return buf[off : off+n : off+n]
}

// Reset sets every segment's head back to zero without releasing memory.
// Previously returned memory must not be used after Reset.
func (a *Arena) Reset() {
	if a.closed {
		return
	}
	for i := range a.segments {
		a.segments[i].head = 0
	}
	a.gen++
}

// Close releases every segment. The arena is unusable afterwards: Fill
// returns ErrClosed and Size and Capacity report 0. Close is idempotent.
func (a *Arena) Close() {
	if a.closed {
		return
	}
	if a.budget != nil {
		for _, s := range a.segments {
			a.budget.Release(int64(len(s.buf)))
		}
	}
	a.segments = nil
	a.closed = true
	a.gen++
}

// Closed reports whether Close has been called.
func (a *Arena) Closed() bool {
	return a.closed
}

// Generation identifies the arena's current allocation epoch. It changes on
// every Reset and Close, so holders of arena memory can detect invalidation.
func (a *Arena) Generation() uint32 {
	return a.gen
}

// nextCapacity doubles the last segment's capacity, capped at maxSegment.
func (a *Arena) nextCapacity() int {
	last := len(a.segments[len(a.segments)-1].buf)
	if last > a.maxSegment/2 {
		return a.maxSegment
	}
	return last * 2
}

// grow links a new segment of the given capacity onto the chain.
func (a *Arena) grow(capacity int) error {
	if a.budget != nil && !a.budget.TryAcquire(int64(capacity)) {
		a.logger.Warn("arena: segment refused by budget",
			"segment", len(a.segments),
			"capacity", capacity,
		)
		return fmt.Errorf("%w: segment of %s", ErrBudgetExceeded, humanize.IBytes(uint64(capacity)))
	}

	// Backing the buffer with uint64 words keeps every segment 8-byte aligned,
	// so offset alignment is also address alignment.
	words := make([]uint64, (capacity+7)/8)
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), capacity)
	a.segments = append(a.segments, segment{buf: buf})

	a.logger.Debug("arena: segment created",
		"segment", len(a.segments)-1,
		"capacity", humanize.IBytes(uint64(capacity)),
		"total", humanize.IBytes(uint64(a.Capacity())),
	)
	return nil
}

// alignFor returns the alignment used for an n-byte request.
func alignFor(n int) int {
	if n > 4 {
		return 8
	}
	return 4
}

// alignUp rounds off up to a multiple of align, which must be a power of two.
func alignUp(off, align int) int {
	return (off + align - 1) &^ (align - 1)
}
