package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaMetrics(t *testing.T) {
	a, err := Open(1024)
	require.NoError(t, err)
	defer a.Close()

	// Test initial state
	if a.Size() != 0 {
		t.Errorf("Initial Size = %d, want 0", a.Size())
	}
	if a.NumSegments() != 1 {
		t.Errorf("Initial NumSegments = %d, want 1", a.NumSegments())
	}
	if a.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", a.Utilization())
	}

	// Allocate some data
	_, err = a.Fill(512)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, a.Utilization(), 1e-9)

	m := a.Metrics()
	assert.Equal(t, Metrics{
		Size:        512,
		Capacity:    1024,
		NumSegments: 1,
		Utilization: 0.5,
	}, m)
	assert.Equal(t, "Arena{segments: 1, size: 512 B, capacity: 1.0 KiB, usage: 50.0%}", m.String())

	// Force segment growth
	_, err = a.Fill(1024)
	require.NoError(t, err)
	m = a.Metrics()
	assert.Equal(t, 2, m.NumSegments)
	assert.Equal(t, 3072, m.Capacity)
	assert.Equal(t, 1536, m.Size)
	assert.Equal(t, 2048, a.SegmentCapacity(1))
	assert.Equal(t, 0, a.SegmentCapacity(2))
	assert.Equal(t, 0, a.SegmentCapacity(-1))

	a.Reset()
	m = a.Metrics()
	assert.Equal(t, 0, m.Size)
	assert.Equal(t, 3072, m.Capacity)
	assert.Equal(t, uint32(1), m.Generation)
}

func TestMetricsAfterClose(t *testing.T) {
	a, err := Open(1024)
	require.NoError(t, err)
	a.Close()

	m := a.Metrics()
	assert.Zero(t, m.Size)
	assert.Zero(t, m.Capacity)
	assert.Zero(t, m.NumSegments)
	assert.Zero(t, m.Utilization)
}
