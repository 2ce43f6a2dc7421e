package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendChild(t *testing.T) {
	root := NewRoot()
	a := NewElement("a")
	b := NewText("b")

	root.AppendChild(a)
	root.AppendChild(b)

	assert.Same(t, a, root.FirstChild)
	assert.Same(t, b, root.LastChild)
	assert.Same(t, b, a.NextSibling)
	assert.Same(t, a, b.PrevSibling)
	assert.Same(t, root, a.Parent)
	assert.Same(t, root, b.Parent)

	assert.Panics(t, func() { root.AppendChild(a) })
}

func TestInsertBefore(t *testing.T) {
	root := NewRoot()
	a := NewElement("a")
	c := NewElement("c")
	root.AppendChild(a)
	root.AppendChild(c)

	b := NewElement("b")
	root.InsertBefore(b, c)

	assert.Equal(t, []*Node{a, b, c}, root.Children())
	assert.Same(t, root, b.Parent)

	// nil oldChild appends
	d := NewElement("d")
	root.InsertBefore(d, nil)
	assert.Same(t, d, root.LastChild)

	assert.Panics(t, func() { root.InsertBefore(a, nil) })
}

func TestRemoveChild(t *testing.T) {
	root := NewRoot()
	a := NewElement("a")
	b := NewElement("b")
	root.AppendChild(a)
	root.AppendChild(b)

	root.RemoveChild(a)
	assert.Nil(t, a.Parent)
	assert.Nil(t, a.NextSibling)
	assert.Same(t, b, root.FirstChild)
	assert.Same(t, b, root.LastChild)

	other := NewElement("other")
	assert.Panics(t, func() { other.RemoveChild(b) })
}

func TestFind(t *testing.T) {
	root := NewRoot()
	outer := NewElement("div")
	inner := NewElement("span")
	second := NewElement("span")
	outer.AppendChild(inner)
	root.AppendChild(outer)
	root.AppendChild(second)

	assert.Same(t, inner, root.Find("span"))
	assert.Nil(t, root.Find("table"))
	require.Len(t, root.FindAll("span"), 2)
	assert.Same(t, inner, root.FindAll("span")[0])
	assert.Same(t, second, root.FindAll("span")[1])
}

func TestText(t *testing.T) {
	root := NewRoot()
	p := NewElement("p")
	p.AppendChild(NewText("hello "))
	em := NewElement("em")
	em.AppendChild(NewText("world"))
	p.AppendChild(em)
	p.AppendChild(NewComment("<!-- not text -->"))
	root.AppendChild(p)

	assert.Equal(t, "hello world", root.Text())
}

func TestAttrHelpers(t *testing.T) {
	n := NewElement("input", Attribute{Key: "type", Val: "text"}, Attribute{Key: "tabindex", Val: 3})

	v, ok := n.AttrValue("type")
	assert.True(t, ok)
	assert.Equal(t, "text", v)

	_, ok = n.AttrValue("missing")
	assert.False(t, ok)

	assert.Equal(t, "3", n.AttrString("tabindex"))
	assert.Equal(t, "", n.AttrString("missing"))

	n.SetAttr("type", "password")
	assert.Equal(t, "password", n.AttrString("type"))

	n.SetAttr("disabled", true)
	assert.Len(t, n.Attr, 3)

	assert.True(t, n.RemoveAttr("tabindex"))
	assert.False(t, n.RemoveAttr("tabindex"))
	assert.Len(t, n.Attr, 2)
}

func TestClassList(t *testing.T) {
	n := NewElement("div", Attribute{Key: "class", Val: "red  big\tred"})

	assert.Equal(t, []string{"red", "big", "red"}, n.Classes())
	assert.True(t, n.HasClass("big"))
	assert.False(t, n.HasClass("small"))

	n.AddClass("small", "big", "")
	assert.Equal(t, "red big red small", n.AttrString("class"))

	n.RemoveClass("red")
	assert.Equal(t, "big small", n.AttrString("class"))

	empty := NewElement("div")
	assert.Empty(t, empty.Classes())
	empty.AddClass("only")
	assert.Equal(t, "only", empty.AttrString("class"))
}
