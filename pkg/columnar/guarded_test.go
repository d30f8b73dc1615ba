package columnar

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardedConcurrentAppend(t *testing.T) {
	table, _ := newMixedTable(t)
	g := NewGuarded(table)

	const workers, perWorker = 8, 250
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				assert.NoError(t, g.Append(mixedRow{I: w*perWorker + i}))
				_ = g.Size()
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, workers*perWorker, g.Size())

	seen := make(map[int]bool, workers*perWorker)
	err := g.Read(func(t *Table[mixedRow]) error {
		for _, r := range t.Rows() {
			seen[r.I] = true
		}
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, seen, workers*perWorker)
}

func TestGuardedSnapshot(t *testing.T) {
	table, _ := newMixedTable(t)
	g := NewGuarded(table)
	require.NoError(t, g.Append(mixedRow{I: 1, S: "a"}))

	snap := g.Snapshot()
	require.NoError(t, g.Write(func(t *Table[mixedRow]) error {
		return t.Set(0, mixedRow{I: 2, S: "b"})
	}))

	got, err := snap.Load(0)
	require.NoError(t, err)
	assert.Equal(t, mixedRow{I: 1, S: "a"}, got)

	got, err = g.Load(0)
	require.NoError(t, err)
	assert.Equal(t, mixedRow{I: 2, S: "b"}, got)
}

func TestGuardedAppendTable(t *testing.T) {
	dst, _ := newMixedTable(t)
	schema := dst.Schema()
	src, err := NewTable(schema)
	require.NoError(t, err)
	fillMixed(t, src, mixedRow{I: 1}, mixedRow{I: 2})

	g := NewGuarded(dst)
	require.NoError(t, g.AppendTable(src))
	assert.Equal(t, 2, g.Size())
	assert.Equal(t, 2, src.Size())
}
