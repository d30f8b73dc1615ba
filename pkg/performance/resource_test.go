package performance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceMonitorUsage(t *testing.T) {
	rm, err := NewResourceMonitor()
	require.NoError(t, err)

	usage, err := rm.Usage()
	require.NoError(t, err)
	assert.Greater(t, usage.MemoryRSS, uint64(0))
	assert.Greater(t, usage.HeapAlloc, uint64(0))
	assert.GreaterOrEqual(t, usage.GoroutineCount, 1)
}

func TestRSSDelta(t *testing.T) {
	assert.Equal(t, int64(512), RSSDelta(ResourceUsage{MemoryRSS: 1024}, ResourceUsage{MemoryRSS: 1536}))
	assert.Equal(t, int64(-1024), RSSDelta(ResourceUsage{MemoryRSS: 2048}, ResourceUsage{MemoryRSS: 1024}))
}
