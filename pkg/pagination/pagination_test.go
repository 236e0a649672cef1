package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageNavigation(t *testing.T) {
	page := &Page[string]{CurrentPage: 2, LastPage: 4}

	assert.True(t, page.HasPrev())
	assert.True(t, page.HasNext())
	assert.Equal(t, 1, page.PrevPage())
	assert.Equal(t, 3, page.NextPage())
}

func TestPageNavigationClamps(t *testing.T) {
	first := &Page[string]{CurrentPage: 1, LastPage: 3}
	assert.False(t, first.HasPrev())
	assert.Equal(t, 1, first.PrevPage())

	last := &Page[string]{CurrentPage: 3, LastPage: 3}
	assert.False(t, last.HasNext())
	assert.Equal(t, 3, last.NextPage())
}

func TestSingleWrapsEverythingInOnePage(t *testing.T) {
	page := Single([]string{"a", "b"})

	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.LastPage)
	assert.Equal(t, int64(2), page.Total)
	assert.False(t, page.HasNext())
	assert.False(t, page.HasPrev())
	assert.Equal(t, []string{"a", "b"}, page.Data)
}
