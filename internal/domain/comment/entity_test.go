package comment

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateContent(t *testing.T) {
	assert.NoError(t, ValidateContent("abc"))
	assert.NoError(t, ValidateContent(strings.Repeat("评", 255)))
	assert.ErrorIs(t, ValidateContent("ab"), ErrInvalidContent)
	assert.ErrorIs(t, ValidateContent(strings.Repeat("a", 256)), ErrInvalidContent)
	assert.ErrorIs(t, ValidateContent("   "), ErrInvalidContent)
}

func TestValidateContent_SurroundingWhitespace(t *testing.T) {
	tests := []struct {
		name    string
		content string
		valid   bool
	}{
		{"2个字符", " a", false},
		{"3个字符", " a ", true},
		{"两个字母加空白共5个字符", "  ab ", true},
		{"255个字符", " " + strings.Repeat("a", 253) + " ", true},
		{"256个字符", " " + strings.Repeat("a", 254) + " ", false},
		{"257个字符", " " + strings.Repeat("a", 255) + " ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewComment(tt.content, "b1", "u1")
			if !tt.valid {
				assert.ErrorIs(t, err, ErrInvalidContent)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.content, c.Content)
			assert.LessOrEqual(t, utf8.RuneCountInString(c.Content), MaxContentLength)
		})
	}
}

func TestNewComment(t *testing.T) {
	c, err := NewComment("nice read", "b1", "u1")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "nice read", c.Content)
	assert.Equal(t, c.CreatedAt, c.UpdatedAt)
}

func TestSortByUpdatedDesc(t *testing.T) {
	now := time.Now()
	comments := []*Comment{
		{ID: "a", UpdatedAt: now},
		{ID: "b", UpdatedAt: now.Add(time.Minute)},
		{ID: "c", UpdatedAt: now},
	}
	SortByUpdatedDesc(comments)
	assert.Equal(t, "b", comments[0].ID)
	assert.Equal(t, "a", comments[1].ID)
	assert.Equal(t, "c", comments[2].ID)
}
