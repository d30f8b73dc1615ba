package columnar

import (
	"github.com/ajitpratap0/colframe/pkg/errors"
)

// RowView is a mutable, non-owning handle on one row of a table. It is
// rebuilt cheaply and should not be kept: the next append or reserve on the
// table invalidates it. Use Field.Ref for typed references into the row.
type RowView[R any] struct {
	t     *Table[R]
	index int
	gen   uint64
}

// Index returns the row index
func (v RowView[R]) Index() int { return v.index }

// Valid reports whether the view can still be used
func (v RowView[R]) Valid() bool { return v.check() == nil }

// Load returns an owned copy of the row
func (v RowView[R]) Load() (R, error) {
	var row R
	if err := v.check(); err != nil {
		return row, err
	}
	v.t.cols.load(v.index, &row)
	return row, nil
}

// Store overwrites the row with a copy of row
func (v RowView[R]) Store(row R) error {
	if err := v.check(); err != nil {
		return err
	}
	v.t.cols.store(v.index, &row)
	return nil
}

// Value returns the value of column i. Prefer Field.Ref or Field.Value when
// the field handle is at hand.
func (v RowView[R]) Value(i int) (any, error) {
	return v.Const().Value(i)
}

// Const returns the read-only form of the view
func (v RowView[R]) Const() ConstRowView[R] {
	return ConstRowView[R](v)
}

func (v RowView[R]) check() error {
	return checkView(v.t, v.index, v.gen)
}

// ConstRowView is the read-only counterpart of RowView.
type ConstRowView[R any] struct {
	t     *Table[R]
	index int
	gen   uint64
}

// Index returns the row index
func (v ConstRowView[R]) Index() int { return v.index }

// Valid reports whether the view can still be used
func (v ConstRowView[R]) Valid() bool { return v.check() == nil }

// Load returns an owned copy of the row
func (v ConstRowView[R]) Load() (R, error) {
	var row R
	if err := v.check(); err != nil {
		return row, err
	}
	v.t.cols.load(v.index, &row)
	return row, nil
}

// Value returns the value of column i as an interface
func (v ConstRowView[R]) Value(i int) (any, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(v.t.cols.cols) {
		return nil, errors.Newf(errors.ErrorTypeOutOfRange, "column %d out of range [0, %d)", i, len(v.t.cols.cols))
	}
	return v.t.cols.cols[i].valueAt(v.index), nil
}

// Values returns every column value of the row in schema order
func (v ConstRowView[R]) Values() ([]any, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	out := make([]any, len(v.t.cols.cols))
	for i, c := range v.t.cols.cols {
		out[i] = c.valueAt(v.index)
	}
	return out, nil
}

func (v ConstRowView[R]) check() error {
	return checkView(v.t, v.index, v.gen)
}

func checkView[R any](t *Table[R], index int, gen uint64) error {
	if t == nil {
		return errors.New(errors.ErrorTypeValidation, "zero row view")
	}
	if gen != t.gen {
		return errors.New(errors.ErrorTypeInvalidated, "row view used after the table was modified").
			WithDetail("index", index).
			WithDetail("table", t.name)
	}
	return t.checkIndex(index)
}
