package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination_Sanitize(t *testing.T) {
	p := &Pagination{Skip: -5, Limit: 0}
	p.Sanitize()
	assert.Equal(t, 0, p.Skip)
	assert.Equal(t, defaultLimit, p.Limit)

	p = &Pagination{Skip: 10, Limit: 1000}
	p.Sanitize()
	assert.Equal(t, MaximumLimit, p.Limit)
}

func TestPagination_Window(t *testing.T) {
	var nilPage *Pagination
	start, end := nilPage.Window(7)
	assert.Equal(t, 0, start)
	assert.Equal(t, 7, end)

	start, end = (&Pagination{Skip: 5, Limit: 5}).Window(7)
	assert.Equal(t, 5, start)
	assert.Equal(t, 7, end)

	start, end = (&Pagination{Skip: 20, Limit: 5}).Window(7)
	assert.Equal(t, 7, start)
	assert.Equal(t, 7, end)

	start, end = (&Pagination{Skip: -8446744073709551716, Limit: 100}).Window(7)
	assert.Equal(t, 0, start)
	assert.Equal(t, 7, end)

	start, end = (&Pagination{Skip: 2, Limit: int(^uint(0) >> 1)}).Window(7)
	assert.Equal(t, 2, start)
	assert.Equal(t, 7, end)
}
