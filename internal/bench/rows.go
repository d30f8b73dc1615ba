// Package bench implements the framebench workloads: the speed test that
// times row and table appends in both copy and consume modes, and the
// walkthrough demo of the table API.
package bench

import (
	"github.com/ajitpratap0/colframe/pkg/columnar"
)

// NumericRow is the (int32, float32) speed test row
type NumericRow struct {
	I int32
	F float32
}

// TextRow is the (string, string) speed test row
type TextRow struct {
	A string
	B string
}

// NumericSchema returns a new schema for NumericRow
func NumericSchema() (*columnar.Schema[NumericRow], error) {
	return columnar.NewSchema[NumericRow](
		columnar.Col("i", func(r *NumericRow) *int32 { return &r.I }),
		columnar.Col("f", func(r *NumericRow) *float32 { return &r.F }),
	)
}

// TextSchema returns a new schema for TextRow
func TextSchema() (*columnar.Schema[TextRow], error) {
	return columnar.NewSchema[TextRow](
		columnar.Col("a", func(r *TextRow) *string { return &r.A }),
		columnar.Col("b", func(r *TextRow) *string { return &r.B }),
	)
}
