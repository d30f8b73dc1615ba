package columnar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/colframe/pkg/errors"
)

func TestIteratorTraversal(t *testing.T) {
	table, fields := newMixedTable(t)
	fillMixed(t, table, mixedRow{I: 1}, mixedRow{I: 2}, mixedRow{I: 3})

	var got []int
	for it := table.Begin(); !it.Equal(table.End()); it.Next() {
		row, err := it.Row()
		require.NoError(t, err)
		v, err := fields.i.Ref(row)
		require.NoError(t, err)
		got = append(got, *v)
		*v *= 10
	}
	assert.Equal(t, []int{1, 2, 3}, got)

	got = got[:0]
	for it := table.CBegin(); !it.Done(); it.Next() {
		row, err := it.Load()
		require.NoError(t, err)
		got = append(got, row.I)
	}
	assert.Equal(t, []int{10, 20, 30}, got)
}

func TestIteratorEmptyTable(t *testing.T) {
	table, _ := newMixedTable(t)

	assert.True(t, table.Begin().Equal(table.End()))
	assert.True(t, table.CBegin().Equal(table.CEnd()))
	assert.True(t, table.Begin().Done())
}

func TestIteratorClamping(t *testing.T) {
	table, _ := newMixedTable(t)
	fillMixed(t, table, mixedRow{I: 1}, mixedRow{I: 2}, mixedRow{I: 3})

	it := table.End()
	it.Next()
	assert.Equal(t, 3, it.Index(), "next at end stays at end")

	it = table.Begin()
	it.Prev()
	assert.Equal(t, 0, it.Index(), "prev at begin stays at begin")

	it.Advance(math.MaxInt)
	assert.Equal(t, 3, it.Index())
	it.Advance(math.MinInt)
	assert.Equal(t, 0, it.Index())

	it.Advance(2)
	it.Prev()
	assert.Equal(t, 1, it.Index())

	c := table.CEnd()
	c.Advance(-10)
	assert.Equal(t, 0, c.Index())
	c.Advance(10)
	assert.True(t, c.Equal(table.CEnd()))
}

func TestIteratorOffset(t *testing.T) {
	table, _ := newMixedTable(t)
	fillMixed(t, table, mixedRow{I: 1}, mixedRow{I: 2}, mixedRow{I: 3})

	begin := table.Begin()
	second := begin.Offset(1)
	assert.Equal(t, 0, begin.Index())
	assert.Equal(t, 1, second.Index())
	assert.Equal(t, 3, begin.Offset(100).Index())

	assert.Equal(t, 3, table.Begin().Distance(table.End()))
	assert.Equal(t, -2, table.End().Distance(second))

	cbegin := table.CBegin()
	assert.Equal(t, 2, cbegin.Offset(2).Index())
	assert.Equal(t, 0, cbegin.Index())
	assert.Equal(t, 3, cbegin.Distance(table.CEnd()))
}

func TestIteratorEqualAcrossTables(t *testing.T) {
	a, _ := newMixedTable(t)
	b, _ := newMixedTable(t)

	assert.True(t, a.Begin().Equal(a.Begin()))
	assert.False(t, a.Begin().Equal(b.Begin()))
	assert.False(t, a.CEnd().Equal(b.CEnd()))
}

func TestIteratorRowAtEnd(t *testing.T) {
	table, _ := newMixedTable(t)
	fillMixed(t, table, mixedRow{I: 1})

	_, err := table.End().Row()
	assert.True(t, errors.IsType(err, errors.ErrorTypeOutOfRange))
	_, err = table.CEnd().Row()
	assert.True(t, errors.IsType(err, errors.ErrorTypeOutOfRange))
	_, err = table.End().Load()
	assert.True(t, errors.IsType(err, errors.ErrorTypeOutOfRange))

	var zero RowIterator[mixedRow]
	assert.True(t, zero.Done())
	_, err = zero.Row()
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

func TestIteratorConst(t *testing.T) {
	table, _ := newMixedTable(t)
	fillMixed(t, table, mixedRow{I: 1, S: "one"}, mixedRow{I: 2, S: "two"})

	it := table.Begin()
	it.Next()
	c := it.Const()
	assert.Equal(t, 1, c.Index())

	view, err := c.Row()
	require.NoError(t, err)
	v, err := view.Value(1)
	require.NoError(t, err)
	assert.Equal(t, "two", v)
}

func TestIteratorAfterSourceConsumed(t *testing.T) {
	src, _ := newMixedTable(t)
	dst, err := NewTable(src.Schema())
	require.NoError(t, err)
	fillMixed(t, src, mixedRow{I: 1}, mixedRow{I: 2})

	it := src.Begin()
	it.Next()
	require.NoError(t, dst.ConsumeTable(src))
	assert.Equal(t, 2, dst.Size())
	assert.Equal(t, 0, src.Size())

	assert.True(t, it.Done())
	_, err = it.Row()
	assert.True(t, errors.IsType(err, errors.ErrorTypeOutOfRange))

	it.Prev()
	assert.Equal(t, 0, it.Index())
	assert.True(t, it.Equal(src.End()))
}
