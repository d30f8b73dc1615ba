package columnar

import (
	"fmt"
	"runtime"

	"github.com/ajitpratap0/colframe/pkg/errors"
)

// columnSet owns one column per schema field. Between calls every column
// has the same length and the same capacity.
type columnSet[R any] struct {
	cols []columnOps[R]

	// onGrow is called after every reallocation
	onGrow func(from, to int)
}

func newColumnSet[R any](schema *Schema[R], capacity int) *columnSet[R] {
	cs := &columnSet[R]{cols: make([]columnOps[R], schema.Len())}
	for i, f := range schema.fields {
		cs.cols[i] = f.newColumn(capacity)
	}
	return cs
}

// Column 0 stands for all columns under the lock-step invariant.
func (cs *columnSet[R]) len() int { return cs.cols[0].len() }
func (cs *columnSet[R]) cap() int { return cs.cols[0].cap() }

// reserve makes room for n rows in every column. Storage for all columns is
// allocated before any column switches to it, so a failed allocation leaves
// the set untouched.
func (cs *columnSet[R]) reserve(n int) (err error) {
	from := cs.cap()
	if n <= from {
		return nil
	}
	if n > MaxCapacity {
		return capacityExceeded(n)
	}

	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			err = errors.Wrap(rerr, errors.ErrorTypeResource, fmt.Sprintf("failed to allocate %d rows", n)).
				WithDetail("requested", n)
		}
	}()

	commits := make([]func(), len(cs.cols))
	for i, c := range cs.cols {
		commits[i] = c.prepare(n)
	}
	for _, commit := range commits {
		commit()
	}

	if cs.onGrow != nil {
		cs.onGrow(from, n)
	}
	return nil
}

// ensure grows capacity through the growth policy until required rows fit.
func (cs *columnSet[R]) ensure(required int) error {
	next, err := NextCapacity(cs.cap(), required)
	if err != nil {
		return err
	}
	return cs.reserve(next)
}

func (cs *columnSet[R]) pushCopy(row *R) error {
	if err := cs.ensure(cs.len() + 1); err != nil {
		return err
	}
	for _, c := range cs.cols {
		c.pushCopy(row)
	}
	return nil
}

func (cs *columnSet[R]) pushConsume(row *R) error {
	if err := cs.ensure(cs.len() + 1); err != nil {
		return err
	}
	for _, c := range cs.cols {
		c.pushConsume(row)
	}
	return nil
}

// pushValues appends one row given positionally. Every value is checked
// before any column is written.
func (cs *columnSet[R]) pushValues(values []any) error {
	if len(values) != len(cs.cols) {
		return errors.Newf(errors.ErrorTypeValidation, "expected %d values, got %d", len(cs.cols), len(values)).
			WithDetail("expected", len(cs.cols)).
			WithDetail("got", len(values))
	}
	for i, v := range values {
		if !cs.cols[i].accepts(v) {
			return errors.Newf(errors.ErrorTypeValidation, "value %d for column %q has type %T", i, cs.cols[i].name(), v).
				WithDetail("column", cs.cols[i].name())
		}
	}
	if err := cs.ensure(cs.len() + 1); err != nil {
		return err
	}
	for i, c := range cs.cols {
		c.pushValue(values[i])
	}
	return nil
}

// appendCopy appends copies of all rows of src. Capacity is reserved once
// up front for the final size.
func (cs *columnSet[R]) appendCopy(src *columnSet[R]) error {
	if err := cs.ensure(cs.len() + src.len()); err != nil {
		return err
	}
	for i, c := range cs.cols {
		c.appendCopy(src.cols[i])
	}
	return nil
}

// appendConsume moves all rows of src to the tail of cs and leaves src
// empty. It reports whether src's storage was adopted whole.
//
// Storage is adopted only when cs is empty and src's capacity is at least
// cs's, so cs never loses capacity. Otherwise rows are moved into cs's
// storage and src keeps its capacity at length zero.
func (cs *columnSet[R]) appendConsume(src *columnSet[R]) (adopted bool, err error) {
	if cs.len() == 0 && src.cap() >= cs.cap() {
		for i, c := range cs.cols {
			c.adopt(src.cols[i])
		}
		return true, nil
	}
	if err := cs.ensure(cs.len() + src.len()); err != nil {
		return false, err
	}
	for i, c := range cs.cols {
		c.appendConsume(src.cols[i])
	}
	return false, nil
}

func (cs *columnSet[R]) load(i int, row *R) {
	for _, c := range cs.cols {
		c.load(i, row)
	}
}

func (cs *columnSet[R]) store(i int, row *R) {
	for _, c := range cs.cols {
		c.store(i, row)
	}
}

func (cs *columnSet[R]) clone() *columnSet[R] {
	out := &columnSet[R]{cols: make([]columnOps[R], len(cs.cols))}
	capacity := cs.cap()
	for i, c := range cs.cols {
		out.cols[i] = c.clone(capacity)
	}
	return out
}
