package trace

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flexparse "github.com/jacoblockett/flex-parse"
)

func TestGlyph(t *testing.T) {
	assert.Equal(t, '·', Glyph(' '))
	assert.Equal(t, '␉', Glyph('\t'))
	assert.Equal(t, '␊', Glyph('\n'))
	assert.Equal(t, '␣', Glyph(' '))
	assert.Equal(t, 'a', Glyph('a'))
	assert.Equal(t, '<', Glyph('<'))
}

func TestRecorder(t *testing.T) {
	input := `<div id="a">hi</div>`
	var rec Recorder
	cfg := &flexparse.Config{OnSnapshot: &rec}

	_, err := flexparse.Parse(input, cfg)
	require.NoError(t, err)

	steps := rec.Steps()
	require.Len(t, steps, utf8.RuneCountInString(input))
	assert.Equal(t, 1, steps[0].Offset)
	assert.Equal(t, '<', steps[0].Char)
	assert.Equal(t, len(steps), steps[len(steps)-1].Offset)

	rec.Reset()
	assert.Empty(t, rec.Steps())
}

func TestRecorderDump(t *testing.T) {
	var rec Recorder
	cfg := &flexparse.Config{OnSnapshot: &rec}
	_, err := flexparse.Parse("<p>a b</p>", cfg)
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, rec.Dump(&b))

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	assert.Len(t, lines, len(rec.Steps()))
	// the space inside the text is rendered as a middle dot
	assert.Contains(t, b.String(), "·")
	// snapshots are taken before each character is applied, so the second
	// line reflects the state the leading '<' produced
	assert.Contains(t, lines[1], "tagName")
}
