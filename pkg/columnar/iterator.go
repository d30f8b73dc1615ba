package columnar

// RowIterator is a random-access cursor over a table. Its position ranges
// over [0, Size()], where Size() is the end position. Every move saturates
// at those bounds, evaluated against the table's current size.
//
//	for it := t.Begin(); !it.Equal(t.End()); it.Next() {
//		row, err := it.Row()
//		...
//	}
type RowIterator[R any] struct {
	t   *Table[R]
	pos int
}

// Index returns the cursor position
func (it RowIterator[R]) Index() int { return it.pos }

// Done reports whether the cursor is at or past the end
func (it RowIterator[R]) Done() bool { return it.t == nil || it.pos >= it.t.Size() }

// Next moves one row forward, stopping at the end position
func (it *RowIterator[R]) Next() { it.Advance(1) }

// Prev moves one row back, stopping at 0
func (it *RowIterator[R]) Prev() { it.Advance(-1) }

// Advance moves the cursor by n rows, clamped to [0, Size()]
func (it *RowIterator[R]) Advance(n int) { it.pos = clampPos(it.t, it.pos, n) }

// Offset returns a copy of the cursor moved by n rows
func (it RowIterator[R]) Offset(n int) RowIterator[R] {
	it.Advance(n)
	return it
}

// Distance returns other.Index() - it.Index()
func (it RowIterator[R]) Distance(other RowIterator[R]) int { return other.pos - it.pos }

// Equal reports whether both cursors are on the same table and position
func (it RowIterator[R]) Equal(other RowIterator[R]) bool {
	return it.t == other.t && it.pos == other.pos
}

// Row returns a view of the row under the cursor. The view is built fresh
// on every call.
func (it RowIterator[R]) Row() (RowView[R], error) {
	if it.t == nil {
		return RowView[R]{}, checkView[R](nil, it.pos, 0)
	}
	return it.t.Get(it.pos)
}

// Load returns an owned copy of the row under the cursor
func (it RowIterator[R]) Load() (R, error) {
	if it.t == nil {
		var zero R
		return zero, checkView[R](nil, it.pos, 0)
	}
	return it.t.Load(it.pos)
}

// Const returns a read-only cursor at the same position
func (it RowIterator[R]) Const() ConstRowIterator[R] {
	return ConstRowIterator[R](it)
}

// ConstRowIterator is the read-only counterpart of RowIterator.
type ConstRowIterator[R any] struct {
	t   *Table[R]
	pos int
}

// Index returns the cursor position
func (it ConstRowIterator[R]) Index() int { return it.pos }

// Done reports whether the cursor is at or past the end
func (it ConstRowIterator[R]) Done() bool { return it.t == nil || it.pos >= it.t.Size() }

// Next moves one row forward, stopping at the end position
func (it *ConstRowIterator[R]) Next() { it.Advance(1) }

// Prev moves one row back, stopping at 0
func (it *ConstRowIterator[R]) Prev() { it.Advance(-1) }

// Advance moves the cursor by n rows, clamped to [0, Size()]
func (it *ConstRowIterator[R]) Advance(n int) { it.pos = clampPos(it.t, it.pos, n) }

// Offset returns a copy of the cursor moved by n rows
func (it ConstRowIterator[R]) Offset(n int) ConstRowIterator[R] {
	it.Advance(n)
	return it
}

// Distance returns other.Index() - it.Index()
func (it ConstRowIterator[R]) Distance(other ConstRowIterator[R]) int { return other.pos - it.pos }

// Equal reports whether both cursors are on the same table and position
func (it ConstRowIterator[R]) Equal(other ConstRowIterator[R]) bool {
	return it.t == other.t && it.pos == other.pos
}

// Row returns a read-only view of the row under the cursor
func (it ConstRowIterator[R]) Row() (ConstRowView[R], error) {
	if it.t == nil {
		return ConstRowView[R]{}, checkView[R](nil, it.pos, 0)
	}
	return it.t.View(it.pos)
}

// Load returns an owned copy of the row under the cursor
func (it ConstRowIterator[R]) Load() (R, error) {
	if it.t == nil {
		var zero R
		return zero, checkView[R](nil, it.pos, 0)
	}
	return it.t.Load(it.pos)
}

// clampPos returns pos+n limited to [0, size] without overflowing.
func clampPos[R any](t *Table[R], pos, n int) int {
	if t == nil {
		return 0
	}
	size := t.Size()
	if pos > size {
		pos = size
	}
	switch {
	case n > size-pos:
		return size
	case n < -pos:
		return 0
	default:
		return pos + n
	}
}
