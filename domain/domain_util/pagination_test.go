package domain_util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		items, size, want int
	}{
		{0, 25, 1},
		{1, 25, 1},
		{25, 25, 1},
		{26, 25, 2},
		{100, 25, 4},
		{101, 25, 5},
		{10, 0, 1},
		{30, -3, 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TotalPages(tc.items, tc.size), "items=%d size=%d", tc.items, tc.size)
	}
}

func TestPaginate_OutOfRangePageClampsToLast(t *testing.T) {
	view := Paginate(seq(60), 9, 25)

	assert.Equal(t, 3, view.CurrentPage)
	assert.Equal(t, 3, view.TotalPages)
	assert.Equal(t, []int{51, 52, 53, 54, 55, 56, 57, 58, 59, 60}, view.Items)
}

func TestPaginate_PageBelowOneClampsToFirst(t *testing.T) {
	view := Paginate(seq(30), 0, 25)

	assert.Equal(t, 1, view.CurrentPage)
	assert.Len(t, view.Items, 25)
}

func TestPaginate_EmptyInput(t *testing.T) {
	view := Paginate([]int{}, 4, 25)

	assert.Equal(t, 1, view.CurrentPage)
	assert.Equal(t, 1, view.TotalPages)
	assert.Empty(t, view.Items)
}

func TestPaginate_NonPositiveSizeFallsBackToDefault(t *testing.T) {
	view := Paginate(seq(40), 1, 0)

	assert.Equal(t, DefaultPageSize, view.PageSize)
	assert.Len(t, view.Items, DefaultPageSize)
}

func TestPaginator_ReclampsWhenResultsShrink(t *testing.T) {
	p := NewPaginator[int](10)
	p.Apply(seq(45))
	p.LastPage()
	require.Equal(t, 5, p.CurrentPage())

	view := p.Apply(seq(12))

	assert.Equal(t, 2, view.CurrentPage)
	assert.Equal(t, []int{11, 12}, view.Items)
}

func TestPaginator_Navigation(t *testing.T) {
	p := NewPaginator[int](10)
	p.Apply(seq(35))

	p.NextPage()
	p.NextPage()
	assert.Equal(t, 3, p.CurrentPage())

	p.NextPage()
	p.NextPage()
	assert.Equal(t, 4, p.CurrentPage())

	p.PrevPage()
	assert.Equal(t, 3, p.CurrentPage())

	p.FirstPage()
	p.PrevPage()
	assert.Equal(t, 1, p.CurrentPage())

	p.SetPage(99)
	assert.Equal(t, 4, p.CurrentPage())

	view := p.Apply(seq(35))
	assert.Equal(t, []int{31, 32, 33, 34, 35}, view.Items)
}
