package columnar

import "sync"

// Guarded serializes access to a Table with a single-writer lock. Readers
// run concurrently with each other but never with a writer.
//
// Views and cursors obtained inside Read or Write must not escape the
// callback.
type Guarded[R any] struct {
	mu sync.RWMutex
	t  *Table[R]
}

// NewGuarded wraps t. The caller must not use t directly afterwards.
func NewGuarded[R any](t *Table[R]) *Guarded[R] {
	return &Guarded[R]{t: t}
}

// Append appends a copy of row
func (g *Guarded[R]) Append(row R) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.t.Append(row)
}

// AppendTable appends copies of all rows of src. src must not be mutated
// concurrently.
func (g *Guarded[R]) AppendTable(src *Table[R]) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.t.AppendTable(src)
}

// Size returns the number of rows
func (g *Guarded[R]) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.t.Size()
}

// Load returns an owned copy of row index
func (g *Guarded[R]) Load(index int) (R, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.t.Load(index)
}

// Read runs fn with shared access to the table
func (g *Guarded[R]) Read(fn func(t *Table[R]) error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return fn(g.t)
}

// Write runs fn with exclusive access to the table
func (g *Guarded[R]) Write(fn func(t *Table[R]) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.t)
}

// Snapshot returns an independent copy of the table's current contents
func (g *Guarded[R]) Snapshot() *Table[R] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.t.Clone()
}
