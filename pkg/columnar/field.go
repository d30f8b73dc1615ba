package columnar

import (
	"reflect"

	"github.com/ajitpratap0/colframe/pkg/errors"
)

// FieldDef is one column of a schema over row type R. The only
// implementation is *Field, created with Col.
type FieldDef[R any] interface {
	// Name returns the column name
	Name() string
	// Type returns the Go type of the column's values
	Type() reflect.Type
	// Index returns the column position, or -1 before the field is bound
	Index() int

	bound() bool
	hasAccessor() bool
	bind(owner *Schema[R], index int)
	newColumn(capacity int) columnOps[R]
}

// Field describes a column of values of type T addressed inside a row R.
// Once bound into a Schema it also serves as the typed handle for reading
// and writing that column.
type Field[R, T any] struct {
	name  string
	get   func(*R) *T
	clone func(T) T
	typ   reflect.Type
	index int
	owner *Schema[R]
}

// FieldOption configures a Field
type FieldOption[T any] func(*fieldOptions[T])

type fieldOptions[T any] struct {
	clone func(T) T
}

// CloneWith sets the function used to copy a value when rows are appended
// by copy. Use it for slices, maps and pointers so copies stay independent
// of their source.
func CloneWith[T any](fn func(T) T) FieldOption[T] {
	return func(o *fieldOptions[T]) {
		o.clone = fn
	}
}

// Col declares a column named name whose value lives at get(&row).
//
//	id := columnar.Col("id", func(r *Event) *int64 { return &r.ID })
func Col[R, T any](name string, get func(*R) *T, opts ...FieldOption[T]) *Field[R, T] {
	var o fieldOptions[T]
	for _, opt := range opts {
		opt(&o)
	}
	return &Field[R, T]{
		name:  name,
		get:   get,
		clone: o.clone,
		typ:   reflect.TypeFor[T](),
		index: -1,
	}
}

func (f *Field[R, T]) Name() string       { return f.name }
func (f *Field[R, T]) Type() reflect.Type { return f.typ }
func (f *Field[R, T]) Index() int         { return f.index }

func (f *Field[R, T]) bound() bool       { return f.owner != nil }
func (f *Field[R, T]) hasAccessor() bool { return f.get != nil }

func (f *Field[R, T]) bind(owner *Schema[R], index int) {
	f.owner = owner
	f.index = index
}

func (f *Field[R, T]) newColumn(capacity int) columnOps[R] {
	return &column[R, T]{
		field: f,
		data:  make([]T, 0, capacity),
	}
}

func (f *Field[R, T]) copyOf(v T) T {
	if f.clone != nil {
		return f.clone(v)
	}
	return v
}

// Ref returns a pointer to this field's value in the row addressed by v.
// The pointer aliases table storage and is only meaningful until the next
// append or reserve on the table.
func (f *Field[R, T]) Ref(v RowView[R]) (*T, error) {
	col, err := f.columnOf(v.t)
	if err != nil {
		return nil, err
	}
	if err := v.check(); err != nil {
		return nil, err
	}
	return &col.data[v.index], nil
}

// Value returns a copy of this field's value in the row addressed by v.
func (f *Field[R, T]) Value(v ConstRowView[R]) (T, error) {
	var zero T
	col, err := f.columnOf(v.t)
	if err != nil {
		return zero, err
	}
	if err := v.check(); err != nil {
		return zero, err
	}
	return col.data[v.index], nil
}

// Get returns this field's value at row index of t.
func (f *Field[R, T]) Get(t *Table[R], index int) (T, error) {
	var zero T
	col, err := f.columnOf(t)
	if err != nil {
		return zero, err
	}
	if err := t.checkIndex(index); err != nil {
		return zero, err
	}
	return col.data[index], nil
}

// Column returns the live column of t for sequential scans. The slice has
// length and capacity equal to t.Size(), so appending to it never writes
// into table storage. Writes through it do change the table. It is
// invalidated by the next append or reserve.
func (f *Field[R, T]) Column(t *Table[R]) ([]T, error) {
	col, err := f.columnOf(t)
	if err != nil {
		return nil, err
	}
	n := len(col.data)
	return col.data[:n:n], nil
}

func (f *Field[R, T]) columnOf(t *Table[R]) (*column[R, T], error) {
	if t == nil {
		return nil, errors.New(errors.ErrorTypeValidation, "nil table")
	}
	if f.owner == nil || f.owner != t.schema {
		return nil, errors.Newf(errors.ErrorTypeValidation, "field %q does not belong to this table's schema", f.name)
	}
	return t.cols.cols[f.index].(*column[R, T]), nil
}
