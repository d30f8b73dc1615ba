package columnar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type mixedRow struct {
	I int
	S string
	F float64
}

type mixedFields struct {
	i *Field[mixedRow, int]
	s *Field[mixedRow, string]
	f *Field[mixedRow, float64]
}

func newMixedSchema(t *testing.T) (*Schema[mixedRow], mixedFields) {
	t.Helper()
	fields := mixedFields{
		i: Col("i", func(r *mixedRow) *int { return &r.I }),
		s: Col("s", func(r *mixedRow) *string { return &r.S }),
		f: Col("f", func(r *mixedRow) *float64 { return &r.F }),
	}
	schema, err := NewSchema[mixedRow](fields.i, fields.s, fields.f)
	require.NoError(t, err)
	return schema, fields
}

func newMixedTable(t *testing.T, opts ...Option) (*Table[mixedRow], mixedFields) {
	t.Helper()
	schema, fields := newMixedSchema(t)
	table, err := NewTable(schema, opts...)
	require.NoError(t, err)
	return table, fields
}

func fillMixed(t *testing.T, table *Table[mixedRow], rows ...mixedRow) {
	t.Helper()
	for _, r := range rows {
		require.NoError(t, table.Append(r))
	}
}

func collect[R any](table *Table[R]) []R {
	out := make([]R, 0, table.Size())
	for _, r := range table.Rows() {
		out = append(out, r)
	}
	return out
}

type growEvent struct {
	table    string
	from, to int
}

type appendEvent struct {
	table string
	mode  Mode
	rows  int
}

type recordingObserver struct {
	grows   []growEvent
	appends []appendEvent
}

func (o *recordingObserver) OnGrow(table string, from, to int) {
	o.grows = append(o.grows, growEvent{table: table, from: from, to: to})
}

func (o *recordingObserver) OnAppend(table string, mode Mode, rows int) {
	o.appends = append(o.appends, appendEvent{table: table, mode: mode, rows: rows})
}
