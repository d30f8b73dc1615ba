package columnar

import (
	"reflect"
)

// columnOps is the type-erased view of one column that the column set
// drives in lock-step. Every operation that takes another column assumes it
// was created by the same field, which the shared schema guarantees.
type columnOps[R any] interface {
	name() string
	len() int
	cap() int

	// prepare allocates backing storage for n rows and returns a function
	// that installs it. Nothing is changed until commit is called.
	prepare(n int) (commit func())

	pushCopy(row *R)
	pushConsume(row *R)
	pushValue(v any)
	accepts(v any) bool

	load(i int, row *R)
	store(i int, row *R)
	valueAt(i int) any

	appendCopy(src columnOps[R])
	appendConsume(src columnOps[R])
	adopt(src columnOps[R])
	clone(capacity int) columnOps[R]
}

// column stores every value of one field contiguously. Appends never run
// past cap(data): the column set reserves first, so append never moves data.
type column[R, T any] struct {
	field *Field[R, T]
	data  []T
}

func (c *column[R, T]) name() string { return c.field.name }
func (c *column[R, T]) len() int     { return len(c.data) }
func (c *column[R, T]) cap() int     { return cap(c.data) }

func (c *column[R, T]) prepare(n int) func() {
	next := make([]T, len(c.data), n)
	copy(next, c.data)
	return func() {
		c.data = next
	}
}

func (c *column[R, T]) pushCopy(row *R) {
	c.data = append(c.data, c.field.copyOf(*c.field.get(row)))
}

func (c *column[R, T]) pushConsume(row *R) {
	p := c.field.get(row)
	c.data = append(c.data, *p)
	var zero T
	*p = zero
}

func (c *column[R, T]) pushValue(v any) {
	if v == nil {
		var zero T
		c.data = append(c.data, zero)
		return
	}
	c.data = append(c.data, c.field.copyOf(v.(T)))
}

func (c *column[R, T]) accepts(v any) bool {
	if v == nil {
		return nillable(c.field.typ)
	}
	_, ok := v.(T)
	return ok
}

func (c *column[R, T]) load(i int, row *R) {
	*c.field.get(row) = c.field.copyOf(c.data[i])
}

func (c *column[R, T]) store(i int, row *R) {
	c.data[i] = c.field.copyOf(*c.field.get(row))
}

func (c *column[R, T]) valueAt(i int) any {
	return c.data[i]
}

func (c *column[R, T]) appendCopy(src columnOps[R]) {
	s := src.(*column[R, T])
	if c.field.clone == nil {
		c.data = append(c.data, s.data...)
		return
	}
	for _, v := range s.data {
		c.data = append(c.data, c.field.clone(v))
	}
}

// appendConsume moves src's values to the tail of c and truncates src to
// length zero. src keeps its backing array, zeroed so it pins nothing.
func (c *column[R, T]) appendConsume(src columnOps[R]) {
	s := src.(*column[R, T])
	c.data = append(c.data, s.data...)
	clear(s.data)
	s.data = s.data[:0]
}

// adopt takes src's backing array as is. src is left with no storage.
func (c *column[R, T]) adopt(src columnOps[R]) {
	s := src.(*column[R, T])
	c.data = s.data
	s.data = nil
}

func (c *column[R, T]) clone(capacity int) columnOps[R] {
	out := &column[R, T]{
		field: c.field,
		data:  make([]T, 0, capacity),
	}
	out.appendCopy(c)
	return out
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return true
	default:
		return false
	}
}
