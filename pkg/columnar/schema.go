package columnar

import (
	"reflect"

	"github.com/ajitpratap0/colframe/pkg/errors"
)

// Schema is the fixed, ordered list of columns of a table over row type R.
// It cannot be changed once built.
type Schema[R any] struct {
	fields []FieldDef[R]
	names  map[string]int
}

// NewSchema binds fields, in order, to column positions 0..N-1.
//
//	schema, err := columnar.NewSchema[Event](id, name, score)
//
// A field can belong to one schema only. If validation fails no field is
// bound.
func NewSchema[R any](fields ...FieldDef[R]) (*Schema[R], error) {
	if len(fields) == 0 {
		return nil, errors.New(errors.ErrorTypeValidation, "schema must have at least one field")
	}

	names := make(map[string]int, len(fields))
	for i, f := range fields {
		if f == nil || reflect.ValueOf(f).IsNil() {
			return nil, errors.Newf(errors.ErrorTypeValidation, "field %d is nil", i)
		}
		if f.Name() == "" {
			return nil, errors.Newf(errors.ErrorTypeValidation, "field %d has an empty name", i)
		}
		if !f.hasAccessor() {
			return nil, errors.Newf(errors.ErrorTypeValidation, "field %q has no accessor", f.Name())
		}
		if _, dup := names[f.Name()]; dup {
			return nil, errors.Newf(errors.ErrorTypeValidation, "duplicate field name %q", f.Name())
		}
		if f.bound() {
			return nil, errors.Newf(errors.ErrorTypeValidation, "field %q already belongs to another schema", f.Name())
		}
		names[f.Name()] = i
	}

	s := &Schema[R]{
		fields: append([]FieldDef[R](nil), fields...),
		names:  names,
	}
	for i, f := range s.fields {
		f.bind(s, i)
	}
	return s, nil
}

// Len returns the number of columns
func (s *Schema[R]) Len() int { return len(s.fields) }

// Field returns the column definition at position i
func (s *Schema[R]) Field(i int) FieldDef[R] { return s.fields[i] }

// Index returns the position of the named column
func (s *Schema[R]) Index(name string) (int, bool) {
	i, ok := s.names[name]
	return i, ok
}

// Names returns the column names in declaration order
func (s *Schema[R]) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name()
	}
	return names
}

// Types returns the column value types in declaration order
func (s *Schema[R]) Types() []reflect.Type {
	types := make([]reflect.Type, len(s.fields))
	for i, f := range s.fields {
		types[i] = f.Type()
	}
	return types
}
