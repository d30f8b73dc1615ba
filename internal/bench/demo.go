package bench

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/ajitpratap0/colframe/pkg/columnar"
	"github.com/ajitpratap0/colframe/pkg/inspect"
)

type mixed struct {
	I int
	S string
	F float64
}

type pair struct {
	Name  string
	Value string
}

// Char prints as a character
type Char byte

func (c Char) String() string { return string(rune(c)) }

type triple struct {
	N int
	F float64
	C Char
}

type demo struct {
	w      io.Writer
	logger *zap.Logger
	err    error
}

func (d *demo) printf(format string, args ...any) {
	if d.err == nil {
		_, d.err = fmt.Fprintf(d.w, format, args...)
	}
}

func (d *demo) check(err error) {
	if d.err == nil {
		d.err = err
	}
}

// RunDemo walks through the table API, printing each step to w.
func RunDemo(w io.Writer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &demo{w: w, logger: logger}

	d.mixedTable()
	d.copyAndConsume()
	d.columnsAndIteration()
	d.reserveAndMerge()
	return d.err
}

func (d *demo) mixedTable() {
	schema, err := columnar.NewSchema[mixed](
		columnar.Col("i", func(r *mixed) *int { return &r.I }),
		columnar.Col("s", func(r *mixed) *string { return &r.S }),
		columnar.Col("f", func(r *mixed) *float64 { return &r.F }),
	)
	d.check(err)
	if d.err != nil {
		return
	}
	table, err := columnar.NewTable(schema, columnar.WithName("mixed"), columnar.WithLogger(d.logger))
	d.check(err)
	if d.err != nil {
		return
	}

	d.printf("Table(int, string, float64), append + get\n")
	d.check(table.AppendValues(5, "Hello", 3.14))
	d.check(table.Append(mixed{0, "World", 2.71}))
	if d.err != nil {
		return
	}
	first, err := table.Get(0)
	d.check(err)
	if d.err != nil {
		return
	}
	row, err := first.Load()
	d.check(err)
	d.printf("(%v, %v, %v)\n\n", row.I, row.S, row.F)

	d.printf("read-only view, get\n")
	view, err := table.View(1)
	d.check(err)
	if d.err != nil {
		return
	}
	values, err := view.Values()
	d.check(err)
	d.printf("(%v, %v, %v)\n\n", values[0], values[1], values[2])
}

func (d *demo) copyAndConsume() {
	name := columnar.Col("name", func(r *pair) *string { return &r.Name })
	schema, err := columnar.NewSchema[pair](
		name,
		columnar.Col("value", func(r *pair) *string { return &r.Value }),
	)
	d.check(err)
	if d.err != nil {
		return
	}
	table, err := columnar.NewTable(schema, columnar.WithName("pairs"), columnar.WithLogger(d.logger))
	d.check(err)
	if d.err != nil {
		return
	}

	d.printf("Table(string, string), append (copy + consume) + get\n")
	src := pair{"left", "right"}
	d.check(table.Append(src))
	d.printf("source after copy: (%s, %s)\n", src.Name, src.Value)
	d.check(table.AppendConsume(&src))
	d.printf("source after consume: (%s, %s)\n", src.Name, src.Value)
	if d.err != nil {
		return
	}
	for i := range table.Size() {
		v, err := name.Get(table, i)
		d.check(err)
		d.printf("row %d name: %s\n", i, v)
	}
	d.printf("\n")
}

func (d *demo) columnsAndIteration() {
	schema, err := columnar.NewSchema[triple](
		columnar.Col("n", func(r *triple) *int { return &r.N }),
		columnar.Col("f", func(r *triple) *float64 { return &r.F }),
		columnar.Col("c", func(r *triple) *Char { return &r.C }),
	)
	d.check(err)
	if d.err != nil {
		return
	}
	df3, err := columnar.NewTable(schema, columnar.WithName("df3"), columnar.WithLogger(d.logger))
	d.check(err)
	df4, err := columnar.NewTable(schema, columnar.WithName("df4"), columnar.WithLogger(d.logger))
	d.check(err)
	if d.err != nil {
		return
	}

	d.printf("Table(int, float64, char), PrintColumn + iterator + PrintRow\n")
	d.check(df3.Append(triple{0, 3.14, 'a'}))
	d.check(df3.Append(triple{1, 2.71, 'b'}))
	d.check(df3.Append(triple{2, 9.81, 'c'}))
	for c := range df3.NumColumns() {
		d.check(inspect.PrintColumn(d.w, df3, c))
	}
	d.printf("df3 printed using an iterator:\n")
	for it := df3.CBegin(); !it.Done(); it.Next() {
		d.check(inspect.PrintRow(d.w, df3, it.Index()))
	}
	d.printf("\n")

	d.printf("Table(int, float64, char), append consume\n")
	d.check(df4.Append(triple{3, 1.23, 'd'}))
	d.check(df4.Append(triple{4, 7.89, 'e'}))
	d.printf("Size of df4 before consume: %d\n", df4.Size())
	d.check(df3.ConsumeTable(df4))
	d.printf("df3 after append consume:\n")
	d.check(inspect.PrintRows(d.w, df3))
	d.printf("Size of df4 after consume: %d\n\n", df4.Size())
}

func (d *demo) reserveAndMerge() {
	schema, err := columnar.NewSchema[pair](
		columnar.Col("name", func(r *pair) *string { return &r.Name }),
		columnar.Col("value", func(r *pair) *string { return &r.Value }),
	)
	d.check(err)
	if d.err != nil {
		return
	}
	newTable := func(name string) *columnar.Table[pair] {
		t, err := columnar.NewTable(schema, columnar.WithName(name), columnar.WithLogger(d.logger))
		d.check(err)
		return t
	}
	df5, df6, df7 := newTable("df5"), newTable("df6"), newTable("df7")
	if d.err != nil {
		return
	}

	d.printf("Table(string, string), reserve, append copy and consume, append table copy and consume\n")
	d.check(df5.Reserve(4))
	d.check(df5.Append(pair{"zero", "0"}))
	one := pair{"one", "1"}
	d.check(df5.AppendConsume(&one))
	d.check(df5.AppendValues("two", "2"))
	three := pair{"three", "3"}
	d.check(df5.AppendConsume(&three))
	d.printf("df5 size %d capacity %d\n", df5.Size(), df5.Capacity())

	d.check(df6.Reserve(df5.Capacity()))
	d.check(df7.Reserve(df5.Capacity()))

	d.check(df6.AppendTable(df5))
	d.printf("After append table copy: df6 size %d, df5 size %d\n", df6.Size(), df5.Size())
	d.check(df7.ConsumeTable(df5))
	d.printf("After append table consume: df7 size %d capacity %d, df5 size %d capacity %d\n",
		df7.Size(), df7.Capacity(), df5.Size(), df5.Capacity())
	d.check(inspect.PrintRows(d.w, df7))
}
