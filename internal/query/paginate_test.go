package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginateMetadata(t *testing.T) {
	items, meta := Paginate(ints(25), 2, 10)

	assert.Equal(t, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, items)
	assert.Equal(t, 25, meta.Total)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrevious)
}

func TestPaginateFirstAndLastPage(t *testing.T) {
	first, meta := Paginate(ints(25), 1, 10)
	assert.Len(t, first, 10)
	assert.False(t, meta.HasPrevious)
	assert.True(t, meta.HasNext)

	last, meta := Paginate(ints(25), 3, 10)
	assert.Equal(t, []int{21, 22, 23, 24, 25}, last)
	assert.True(t, meta.HasPrevious)
	assert.False(t, meta.HasNext)
}

func TestPaginatePastEndYieldsEmptyPage(t *testing.T) {
	items, meta := Paginate(ints(5), 10, 10)

	assert.Empty(t, items)
	assert.Equal(t, 5, meta.Total)
	assert.Equal(t, 1, meta.TotalPages)
	assert.False(t, meta.HasNext)
}

func TestPaginateClampsInputs(t *testing.T) {
	_, meta := Paginate(ints(5), 0, 0)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, DefaultLimit, meta.Limit)

	_, meta = Paginate(ints(5), -3, 500)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, MaxLimit, meta.Limit)
}

func TestPaginateEmptyCollection(t *testing.T) {
	items, meta := Paginate([]int{}, 1, 10)

	assert.Empty(t, items)
	assert.Equal(t, 0, meta.Total)
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrevious)
}

func TestPaginateTotalsAddUp(t *testing.T) {
	const total, limit = 53, 7
	seen := 0
	for page := 1; ; page++ {
		items, meta := Paginate(ints(total), page, limit)
		seen += len(items)
		if !meta.HasNext {
			assert.Equal(t, meta.TotalPages, page)
			break
		}
		assert.Len(t, items, limit)
	}
	assert.Equal(t, total, seen)
}
