// Package inspect renders colframe tables for humans and debugging tools:
// plain-text column and row listings, and JSON lines dumps.
package inspect

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sync"

	gojson "github.com/goccy/go-json"

	"github.com/ajitpratap0/colframe/pkg/columnar"
	"github.com/ajitpratap0/colframe/pkg/errors"
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}

// PrintColumn writes column col of t as
//
//	Column <col>
//	Num of elements: <size>
//	Elements: <v0> <v1> ... <vn-1>
//
// Values are formatted with %v, so fmt.Stringer types print their String
// form.
func PrintColumn[R any](w io.Writer, t *columnar.Table[R], col int) error {
	if col < 0 || col >= t.NumColumns() {
		return errors.Newf(errors.ErrorTypeOutOfRange, "column %d out of range [0, %d)", col, t.NumColumns())
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Column %d\n", col)
	fmt.Fprintf(bw, "Num of elements: %d\n", t.Size())
	bw.WriteString("Elements: ")
	for it := t.CBegin(); !it.Done(); it.Next() {
		view, err := it.Row()
		if err != nil {
			return err
		}
		v, err := view.Value(col)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "%v ", v)
	}
	bw.WriteString("\n")
	return bw.Flush()
}

// PrintRow writes the values of row index as "(v0, v1, ..., vn-1)".
func PrintRow[R any](w io.Writer, t *columnar.Table[R], index int) error {
	view, err := t.View(index)
	if err != nil {
		return err
	}
	values, err := view.Values()
	if err != nil {
		return err
	}
	return writeTuple(w, values)
}

// PrintRows writes every row of t, one tuple per line.
func PrintRows[R any](w io.Writer, t *columnar.Table[R]) error {
	for i := range t.Size() {
		if err := PrintRow(w, t, i); err != nil {
			return err
		}
	}
	return nil
}

func writeTuple(w io.Writer, values []any) error {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer bufferPool.Put(buf)
	buf.Reset()

	buf.WriteByte('(')
	for i, v := range values {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%v", v)
	}
	buf.WriteString(")\n")
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteJSONLines writes each row of t as one JSON object whose keys are the
// column names in schema order.
func WriteJSONLines[R any](w io.Writer, t *columnar.Table[R]) error {
	names := t.ColumnNames()
	keys := make([][]byte, len(names))
	for i, name := range names {
		key, err := gojson.Marshal(name)
		if err != nil {
			return errors.Wrap(err, errors.ErrorTypeInternal, "encode column name")
		}
		keys[i] = key
	}

	buf := bufferPool.Get().(*bytes.Buffer)
	defer bufferPool.Put(buf)

	for i, view := range t.Views() {
		values, err := view.Const().Values()
		if err != nil {
			return err
		}
		buf.Reset()
		buf.WriteByte('{')
		for c, v := range values {
			if c > 0 {
				buf.WriteByte(',')
			}
			buf.Write(keys[c])
			buf.WriteByte(':')
			data, err := gojson.Marshal(v)
			if err != nil {
				return errors.Wrap(err, errors.ErrorTypeValidation, "encode value").
					WithDetail("row", i).
					WithDetail("column", names[c])
			}
			buf.Write(data)
		}
		buf.WriteString("}\n")
		if _, err := w.Write(buf.Bytes()); err != nil {
			return errors.Wrap(err, errors.ErrorTypeFile, "write row")
		}
	}
	return nil
}
