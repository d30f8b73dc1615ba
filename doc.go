// Package colframe is a typed, in-memory columnar table for Go.
//
// A table stores every field of a row type in its own contiguous column
// (structure of arrays) while presenting a row-oriented API: rows are
// appended by copy or by consume, read back as views, and traversed with
// clamped iterators. All columns grow together to the next power of two.
//
// # Packages
//
//   - pkg/columnar: the table, schema, views and iterators
//   - pkg/inspect: printing columns and rows, JSON lines export
//   - pkg/config: YAML and FRAME_* environment configuration
//   - pkg/logger: zap logger with context fields
//   - pkg/metrics: Prometheus observer and /metrics server
//   - pkg/observability: OpenTelemetry tracing for benchmark phases
//   - pkg/performance: process resource sampling
//   - pkg/errors: typed errors shared by every package
//   - internal/bench: data generation and the benchmark runner
//   - cmd/framebench: the demo and bench command line
//
// # Quick Start
//
//	type Row struct {
//		ID   int32
//		Name string
//	}
//
//	schema, _ := columnar.NewSchema[Row](
//		columnar.Col("id", func(r *Row) *int32 { return &r.ID }),
//		columnar.Col("name", func(r *Row) *string { return &r.Name }),
//	)
//	t, _ := columnar.NewTable(schema)
//	_ = t.Append(Row{ID: 1, Name: "a"})
//
// Run the benchmark:
//
//	framebench bench --rows 1000000 --seed 42
package colframe
