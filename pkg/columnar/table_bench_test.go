package columnar

import (
	"fmt"
	"testing"
)

type benchRow struct {
	I int32
	F float32
	S string
}

func newBenchTable(b *testing.B) *Table[benchRow] {
	b.Helper()
	schema, err := NewSchema[benchRow](
		Col("i", func(r *benchRow) *int32 { return &r.I }),
		Col("f", func(r *benchRow) *float32 { return &r.F }),
		Col("s", func(r *benchRow) *string { return &r.S }),
	)
	if err != nil {
		b.Fatal(err)
	}
	t, err := NewTable(schema)
	if err != nil {
		b.Fatal(err)
	}
	return t
}

func benchRows(n int) []benchRow {
	rows := make([]benchRow, n)
	for i := range rows {
		rows[i] = benchRow{I: int32(i), F: float32(i) / 2, S: fmt.Sprintf("row-%d", i)}
	}
	return rows
}

// BenchmarkAppend measures single-row appends in both modes
func BenchmarkAppend(b *testing.B) {
	for _, n := range []int{1000, 100000} {
		rows := benchRows(n)

		b.Run(fmt.Sprintf("Copy_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				t := newBenchTable(b)
				for j := range rows {
					if err := t.Append(rows[j]); err != nil {
						b.Fatal(err)
					}
				}
			}
			b.ReportMetric(float64(n*b.N)/b.Elapsed().Seconds(), "rows/sec")
		})

		b.Run(fmt.Sprintf("Consume_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			work := make([]benchRow, n)
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				copy(work, rows)
				t := newBenchTable(b)
				b.StartTimer()
				for j := range work {
					if err := t.AppendConsume(&work[j]); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}

// BenchmarkAppendTable measures whole-table merges in both modes
func BenchmarkAppendTable(b *testing.B) {
	const n = 100000
	rows := benchRows(n)
	src := newBenchTable(b)
	for i := range rows {
		if err := src.Append(rows[i]); err != nil {
			b.Fatal(err)
		}
	}

	b.Run("Copy", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			dst := newBenchTable(b)
			if err := dst.AppendTable(src); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("Consume", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			from := src.Clone()
			dst := newBenchTable(b)
			if err := dst.Append(rows[0]); err != nil {
				b.Fatal(err)
			}
			b.StartTimer()
			if err := dst.ConsumeTable(from); err != nil {
				b.Fatal(err)
			}
		}
	})
}
