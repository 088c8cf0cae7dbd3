package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAppliesDefaultsAndCaps(t *testing.T) {
	q := ListQuery{}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.PageSize)

	q = ListQuery{Page: -3, PageSize: 10000}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 100, q.PageSize)

	q = ListQuery{Page: 4, PageSize: 25}
	q.Normalize()
	assert.Equal(t, 4, q.Page)
	assert.Equal(t, 25, q.PageSize)
}

func TestNewPaginationRoundsPagesUp(t *testing.T) {
	p := NewPagination(ListQuery{Page: 2, PageSize: 10}, 21)
	assert.Equal(t, int64(21), p.Total)
	assert.Equal(t, 3, p.TotalPages)

	p = NewPagination(ListQuery{Page: 1, PageSize: 10}, 20)
	assert.Equal(t, 2, p.TotalPages)

	p = NewPagination(ListQuery{Page: 1, PageSize: 10}, 0)
	assert.Equal(t, 0, p.TotalPages)
}
