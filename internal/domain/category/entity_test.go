package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-rest/internal/domain/book"
)

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("Programming")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Programming", c.Name)

	_, err = NewCategory("")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestLinkBook(t *testing.T) {
	c, _ := NewCategory("Programming")
	b := &book.Book{ID: "b1"}

	c.LinkBook(b)
	c.LinkBook(b)

	assert.Equal(t, []string{c.ID}, b.CategoryIDs)
	require.Len(t, c.Books, 1)
	assert.Same(t, b, c.Books[0])
}

func TestSortByName(t *testing.T) {
	cs := []*Category{{Name: "Poetry"}, {Name: "Fiction"}, {Name: "History"}}
	SortByName(cs)
	assert.Equal(t, "Fiction", cs[0].Name)
	assert.Equal(t, "History", cs[1].Name)
	assert.Equal(t, "Poetry", cs[2].Name)
}
