package columnar

import (
	"iter"

	"go.uber.org/zap"

	"github.com/ajitpratap0/colframe/pkg/errors"
)

// Table stores rows of type R as one contiguous column per schema field.
// Size and capacity are those of the first column; all columns move in
// lock-step.
//
// Every append and every reserve that reallocates bumps the table's
// generation. Views taken before that report ErrorTypeInvalidated.
//
// Tables are built with NewTable. A zero Table reports size and capacity 0
// and rejects every append.
//
// A Table is not safe for concurrent use. See Guarded.
type Table[R any] struct {
	schema *Schema[R]
	cols   *columnSet[R]
	gen    uint64

	name     string
	logger   *zap.Logger
	observer Observer
}

// NewTable creates an empty table for schema.
func NewTable[R any](schema *Schema[R], opts ...Option) (*Table[R], error) {
	if schema == nil {
		return nil, errors.New(errors.ErrorTypeValidation, "schema is required")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity < 0 {
		return nil, errors.Newf(errors.ErrorTypeValidation, "negative initial capacity %d", o.capacity)
	}
	if o.capacity > MaxCapacity {
		return nil, capacityExceeded(o.capacity)
	}

	t := &Table[R]{
		schema:   schema,
		name:     o.name,
		logger:   o.logger,
		observer: o.observer,
	}
	t.cols = newColumnSet(schema, o.capacity)
	t.cols.onGrow = t.grew
	return t, nil
}

func (t *Table[R]) grew(from, to int) {
	t.logger.Debug("table storage grew",
		zap.String("table", t.name),
		zap.Int("from", from),
		zap.Int("to", to),
		zap.Int("size", t.cols.len()))
	t.observer.OnGrow(t.name, from, to)
}

// Schema returns the table's schema
func (t *Table[R]) Schema() *Schema[R] { return t.schema }

// Name returns the table's name
func (t *Table[R]) Name() string { return t.name }

// NumColumns returns the number of columns
func (t *Table[R]) NumColumns() int {
	if t.schema == nil {
		return 0
	}
	return t.schema.Len()
}

// ColumnNames returns the column names in schema order
func (t *Table[R]) ColumnNames() []string {
	if t.schema == nil {
		return nil
	}
	return t.schema.Names()
}

// Size returns the number of rows
func (t *Table[R]) Size() int {
	if t.cols == nil {
		return 0
	}
	return t.cols.len()
}

// Capacity returns the number of rows every column can hold without
// reallocating
func (t *Table[R]) Capacity() int {
	if t.cols == nil {
		return 0
	}
	return t.cols.cap()
}

// Generation returns a counter that changes on every mutation that may move
// storage or change the row count.
func (t *Table[R]) Generation() uint64 { return t.gen }

// Reserve ensures every column can hold n rows without reallocating. It is a
// no-op when capacity is already >= n and never changes Size.
func (t *Table[R]) Reserve(n int) error {
	if n < 0 {
		return errors.Newf(errors.ErrorTypeValidation, "negative capacity %d", n)
	}
	if err := t.checkReady(); err != nil {
		return err
	}
	if n <= t.Capacity() {
		return nil
	}
	if err := t.cols.reserve(n); err != nil {
		return err
	}
	t.gen++
	return nil
}

// Append appends a copy of row.
func (t *Table[R]) Append(row R) error {
	if err := t.checkReady(); err != nil {
		return err
	}
	if err := t.cols.pushCopy(&row); err != nil {
		return err
	}
	t.appended(ModeCopy, 1)
	return nil
}

// AppendConsume appends row by transfer and resets *row to its zero value.
func (t *Table[R]) AppendConsume(row *R) error {
	if row == nil {
		return errors.New(errors.ErrorTypeValidation, "nil row")
	}
	if err := t.checkReady(); err != nil {
		return err
	}
	if err := t.cols.pushConsume(row); err != nil {
		return err
	}
	t.appended(ModeConsume, 1)
	return nil
}

// AppendValues appends one row given as one value per column in schema
// order. Each value must have exactly its column's type. On a mismatch the
// table is left unchanged.
func (t *Table[R]) AppendValues(values ...any) error {
	if err := t.checkReady(); err != nil {
		return err
	}
	if err := t.cols.pushValues(values); err != nil {
		return err
	}
	t.appended(ModeCopy, 1)
	return nil
}

// AppendTable appends copies of all rows of src, in order. src is not
// modified. Appending a table to itself is a no-op.
func (t *Table[R]) AppendTable(src *Table[R]) error {
	if err := t.checkSource(src); err != nil {
		return err
	}
	if src == t {
		return nil
	}
	rows := src.Size()
	if err := t.cols.appendCopy(src.cols); err != nil {
		return err
	}
	t.appended(ModeCopy, rows)
	t.logger.Debug("table merged",
		zap.String("table", t.name),
		zap.String("source", src.name),
		zap.Stringer("mode", ModeCopy),
		zap.Int("rows", rows))
	return nil
}

// ConsumeTable moves all rows of src to the end of t, in order, and leaves
// src with zero rows. Consuming a table into itself is a no-op.
//
// When t is empty and src has at least t's capacity, t takes src's storage
// and src is left with no storage. Otherwise rows are moved into t's
// storage and src keeps its capacity.
func (t *Table[R]) ConsumeTable(src *Table[R]) error {
	if err := t.checkSource(src); err != nil {
		return err
	}
	if src == t {
		return nil
	}
	rows := src.Size()
	before := t.Capacity()
	adopted, err := t.cols.appendConsume(src.cols)
	if err != nil {
		return err
	}
	if adopted && t.Capacity() != before {
		t.grew(before, t.Capacity())
	}
	src.gen++
	t.appended(ModeConsume, rows)
	t.logger.Debug("table merged",
		zap.String("table", t.name),
		zap.String("source", src.name),
		zap.Stringer("mode", ModeConsume),
		zap.Int("rows", rows),
		zap.Bool("adopted", adopted))
	return nil
}

func (t *Table[R]) checkSource(src *Table[R]) error {
	if src == nil {
		return errors.New(errors.ErrorTypeValidation, "nil source table")
	}
	if err := t.checkReady(); err != nil {
		return err
	}
	if err := src.checkReady(); err != nil {
		return err
	}
	if src.schema != t.schema {
		return errors.New(errors.ErrorTypeValidation, "source table has a different schema").
			WithDetail("table", t.name).
			WithDetail("source", src.name)
	}
	return nil
}

func (t *Table[R]) checkReady() error {
	if t.cols == nil {
		return errors.New(errors.ErrorTypeValidation, "table was not created with NewTable").
			WithDetail("table", t.name)
	}
	return nil
}

func (t *Table[R]) appended(mode Mode, rows int) {
	t.gen++
	t.observer.OnAppend(t.name, mode, rows)
}

// Get returns a mutable view of row index.
func (t *Table[R]) Get(index int) (RowView[R], error) {
	if err := t.checkIndex(index); err != nil {
		return RowView[R]{}, err
	}
	return RowView[R]{t: t, index: index, gen: t.gen}, nil
}

// View returns a read-only view of row index.
func (t *Table[R]) View(index int) (ConstRowView[R], error) {
	if err := t.checkIndex(index); err != nil {
		return ConstRowView[R]{}, err
	}
	return ConstRowView[R]{t: t, index: index, gen: t.gen}, nil
}

// Load returns an owned copy of row index.
func (t *Table[R]) Load(index int) (R, error) {
	var row R
	if err := t.checkIndex(index); err != nil {
		return row, err
	}
	t.cols.load(index, &row)
	return row, nil
}

// Set overwrites row index with a copy of row. It does not invalidate views.
func (t *Table[R]) Set(index int, row R) error {
	if err := t.checkIndex(index); err != nil {
		return err
	}
	t.cols.store(index, &row)
	return nil
}

func (t *Table[R]) checkIndex(index int) error {
	if size := t.Size(); index < 0 || index >= size {
		return errors.Newf(errors.ErrorTypeOutOfRange, "index %d out of range [0, %d)", index, size).
			WithDetail("index", index).
			WithDetail("size", size).
			WithDetail("table", t.name)
	}
	return nil
}

// Clone returns an independent copy of t with the same capacity, name,
// logger and observer.
func (t *Table[R]) Clone() *Table[R] {
	if t.cols == nil {
		return &Table[R]{name: t.name}
	}
	c := &Table[R]{
		schema:   t.schema,
		cols:     t.cols.clone(),
		name:     t.name,
		logger:   t.logger,
		observer: t.observer,
	}
	c.cols.onGrow = c.grew
	return c
}

// Begin returns a cursor at the first row
func (t *Table[R]) Begin() RowIterator[R] { return RowIterator[R]{t: t, pos: 0} }

// End returns the one-past-last cursor
func (t *Table[R]) End() RowIterator[R] { return RowIterator[R]{t: t, pos: t.Size()} }

// CBegin returns a read-only cursor at the first row
func (t *Table[R]) CBegin() ConstRowIterator[R] { return ConstRowIterator[R]{t: t, pos: 0} }

// CEnd returns the read-only one-past-last cursor
func (t *Table[R]) CEnd() ConstRowIterator[R] { return ConstRowIterator[R]{t: t, pos: t.Size()} }

// Rows yields an owned copy of every row. Rows appended during the loop are
// not visited.
func (t *Table[R]) Rows() iter.Seq2[int, R] {
	return func(yield func(int, R) bool) {
		n := t.Size()
		for i := 0; i < n && i < t.Size(); i++ {
			var row R
			t.cols.load(i, &row)
			if !yield(i, row) {
				return
			}
		}
	}
}

// Views yields a mutable view of every row.
func (t *Table[R]) Views() iter.Seq2[int, RowView[R]] {
	return func(yield func(int, RowView[R]) bool) {
		n := t.Size()
		for i := 0; i < n && i < t.Size(); i++ {
			if !yield(i, RowView[R]{t: t, index: i, gen: t.gen}) {
				return
			}
		}
	}
}
