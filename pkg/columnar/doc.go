// Package columnar implements colframe's typed in-memory column store: a
// table with a fixed schema of N fields kept as N parallel slices
// (structure-of-arrays), presented to callers as rows.
//
// # Overview
//
// A row type is a plain Go struct. Each column is declared with Col, which
// pairs a name with an accessor addressing the field inside the struct. The
// declaration order is the column order:
//
//	type Reading struct {
//		Sensor string
//		Seq    int64
//		Value  float64
//	}
//
//	sensor := columnar.Col("sensor", func(r *Reading) *string { return &r.Sensor })
//	seq := columnar.Col("seq", func(r *Reading) *int64 { return &r.Seq })
//	value := columnar.Col("value", func(r *Reading) *float64 { return &r.Value })
//
//	schema, err := columnar.NewSchema[Reading](sensor, seq, value)
//	table, err := columnar.NewTable(schema, columnar.WithLogger(logger))
//
// # Storage
//
// Every column is a contiguous slice. All columns share one length and one
// capacity. When an append needs room, capacity grows to the next power of
// two at or above the required size (see NextCapacity), for every column at
// once. Bulk appends reserve once for the final size before copying.
//
// # Copy and consume
//
// Append and AppendTable copy. AppendConsume and ConsumeTable transfer:
// the source row is reset to its zero value, the source table is left with
// zero rows. An empty destination takes a source table's storage whole when
// that does not shrink its capacity. Appending or consuming a table into
// itself does nothing.
//
// # Views and invalidation
//
// Get and View return RowView and ConstRowView, which address a row by
// index. Field.Ref returns a *T that aliases column storage. Any append, and
// any Reserve that reallocates, invalidates outstanding views: using one
// afterwards returns an ErrorTypeInvalidated error. Raw pointers from Ref
// cannot be checked and must simply not be kept across mutations.
//
// Row access is always bounds checked; out-of-range indexes return an
// ErrorTypeOutOfRange error.
//
// # Iteration
//
// Begin/End and CBegin/CEnd return random-access cursors clamped to
// [0, Size()]. Rows and Views provide range-over-func iteration:
//
//	for i, r := range table.Rows() {
//		fmt.Println(i, r.Sensor, r.Value)
//	}
//
// # Concurrency
//
// A Table has no internal locking. Guarded adds a single-writer lock for
// callers that share a table between goroutines.
package columnar
