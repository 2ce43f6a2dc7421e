package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func sampleTree() *Node {
	root := NewRoot()
	div := NewElement("div", Attribute{Key: "id", Val: "a"}, Attribute{Key: "hidden", Val: ""})
	div.AppendChild(NewText("x < y"))
	img := NewElement("img", Attribute{Key: "src", Val: "pic.png"})
	img.SelfClosing = true
	div.AppendChild(img)
	div.AppendChild(NewComment("<!--note-->"))
	root.AppendChild(div)
	return root
}

func TestNodeString(t *testing.T) {
	root := sampleTree()
	want := `<div id="a" hidden>x &lt; y<img src="pic.png"/><!--note--></div>`
	assert.Equal(t, want, root.String())

	// rendering a subtree skips the synthetic root unwrapping
	assert.Equal(t, want, root.FirstChild.String())
}

func TestRender(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Render(&b, sampleTree()))
	assert.Equal(t, sampleTree().String(), b.String())
}

func TestStringNonStringAttr(t *testing.T) {
	n := NewElement("input", Attribute{Key: "tabindex", Val: 3}, Attribute{Key: "checked", Val: true})
	assert.Equal(t, `<input tabindex="3" checked="true"></input>`, n.String())
}

func TestToHTML(t *testing.T) {
	hn := ToHTML(sampleTree())
	assert.Equal(t, html.DocumentNode, hn.Type)

	div := hn.FirstChild
	require.NotNil(t, div)
	assert.Equal(t, html.ElementNode, div.Type)
	assert.Equal(t, "div", div.Data)
	assert.Equal(t, []html.Attribute{{Key: "id", Val: "a"}, {Key: "hidden", Val: ""}}, div.Attr)

	var b strings.Builder
	require.NoError(t, html.Render(&b, hn))
	assert.Equal(t, `<div id="a" hidden="">x &lt; y<img src="pic.png"/><!--note--></div>`, b.String())
}

func TestToEtree(t *testing.T) {
	doc := ToEtree(sampleTree())
	out, err := doc.WriteToString()
	require.NoError(t, err)
	assert.Equal(t, `<div id="a" hidden="">x &lt; y<img src="pic.png"/><!--note--></div>`, out)

	// a non-root node converts to a single top-level token
	single := ToEtree(NewElement("p"))
	out, err = single.WriteToString()
	require.NoError(t, err)
	assert.Equal(t, `<p/>`, out)
}
