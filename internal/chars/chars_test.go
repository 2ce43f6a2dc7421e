package chars

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrim(t *testing.T) {
	assert.Equal(t, "a b", Trim("  a b \uFEFF"))
	assert.Equal(t, "", Trim(" \t\n "))
	assert.Equal(t, "x", Trim("x"))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t ​"))
	assert.False(t, IsBlank(" x "))
	assert.False(t, IsBlank("·")) // visible glyph is not blank
}

func TestFields(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Fields("a b  c"))
	assert.Empty(t, Fields("  "))
}

func TestCollapseEmpty(t *testing.T) {
	assert.Equal(t, "", Collapse("", false))
	assert.Equal(t, " ", Collapse(" \t \n ", false))
}
