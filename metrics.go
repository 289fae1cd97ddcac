package arena

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Size returns the number of bytes logically in use across all segments.
// This includes internal fragmentation due to alignment.
func (a *Arena) Size() int {
	sum := 0
	for _, s := range a.segments {
		sum += s.head
	}
	return sum
}

// Capacity returns the number of bytes reserved across all segments.
func (a *Arena) Capacity() int {
	sum := 0
	for _, s := range a.segments {
		sum += len(s.buf)
	}
	return sum
}

// NumSegments returns the length of the segment chain.
func (a *Arena) NumSegments() int {
	return len(a.segments)
}

// SegmentCapacity returns the capacity of segment i, or 0 if there is none.
func (a *Arena) SegmentCapacity(i int) int {
	if i < 0 || i >= len(a.segments) {
		return 0
	}
	return len(a.segments[i].buf)
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.Size()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		Size:        a.Size(),
		Capacity:    a.Capacity(),
		NumSegments: a.NumSegments(),
		Utilization: a.Utilization(),
		Generation:  a.gen,
	}
}

// Metrics contains statistical information about an arena.
type Metrics struct {
	Size        int     // Bytes currently allocated
	Capacity    int     // Total capacity in bytes
	NumSegments int     // Length of the segment chain
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
	Generation  uint32  // Reset/Close epoch
}

func (m Metrics) String() string {
	return fmt.Sprintf("Arena{segments: %d, size: %s, capacity: %s, usage: %.1f%%}",
		m.NumSegments,
		humanize.IBytes(uint64(m.Size)),
		humanize.IBytes(uint64(m.Capacity)),
		m.Utilization*100,
	)
}
