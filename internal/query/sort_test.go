package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type row struct {
	Name  string
	Price float64
	Seq   int
	At    time.Time
}

func rowKey(r row, field string) any {
	switch field {
	case "name":
		return r.Name
	case "price":
		return r.Price
	case "at":
		return r.At
	default:
		return ""
	}
}

func TestSortIsStableOnEqualKeys(t *testing.T) {
	rows := []row{
		{Name: "b", Price: 10, Seq: 1},
		{Name: "a", Price: 10, Seq: 2},
		{Name: "c", Price: 10, Seq: 3},
		{Name: "d", Price: 5, Seq: 4},
	}

	Sort(rows, "price", Asc, rowKey)

	assert.Equal(t, 4, rows[0].Seq)
	// equal prices keep insertion order
	assert.Equal(t, []int{1, 2, 3}, []int{rows[1].Seq, rows[2].Seq, rows[3].Seq})
}

func TestSortStringsCaseInsensitive(t *testing.T) {
	rows := []row{
		{Name: "banana"},
		{Name: "Apple"},
		{Name: "cherry"},
	}

	Sort(rows, "name", Asc, rowKey)

	assert.Equal(t, []string{"Apple", "banana", "cherry"},
		[]string{rows[0].Name, rows[1].Name, rows[2].Name})
}

func TestSortDescending(t *testing.T) {
	rows := []row{{Price: 1}, {Price: 3}, {Price: 2}}

	Sort(rows, "price", Desc, rowKey)

	assert.Equal(t, []float64{3, 2, 1},
		[]float64{rows[0].Price, rows[1].Price, rows[2].Price})
}

func TestSortTimes(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := []row{
		{Seq: 1, At: base.Add(time.Hour)},
		{Seq: 2, At: base},
		{Seq: 3, At: base.Add(2 * time.Hour)},
	}

	Sort(rows, "at", Asc, rowKey)

	assert.Equal(t, []int{2, 1, 3}, []int{rows[0].Seq, rows[1].Seq, rows[2].Seq})
}

func TestSortUnknownFieldKeepsOrder(t *testing.T) {
	rows := []row{{Seq: 1}, {Seq: 2}, {Seq: 3}}

	Sort(rows, "bogus", Asc, rowKey)

	assert.Equal(t, []int{1, 2, 3}, []int{rows[0].Seq, rows[1].Seq, rows[2].Seq})
}

func TestNormalizeDirection(t *testing.T) {
	assert.Equal(t, Desc, NormalizeDirection("DESC"))
	assert.Equal(t, Desc, NormalizeDirection("desc"))
	assert.Equal(t, Asc, NormalizeDirection("asc"))
	assert.Equal(t, Asc, NormalizeDirection(""))
	assert.Equal(t, Asc, NormalizeDirection("sideways"))
}

func TestCompareMixedNumericKinds(t *testing.T) {
	assert.Negative(t, Compare(int(1), float64(2)))
	assert.Positive(t, Compare(uint(5), int64(3)))
	assert.Zero(t, Compare(int32(7), float32(7)))
}

func TestCompareBools(t *testing.T) {
	assert.Negative(t, Compare(false, true))
	assert.Positive(t, Compare(true, false))
	assert.Zero(t, Compare(true, true))
}
