package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Render writes n and its descendants to w as markup. The synthetic root
// element renders as its children only. Comment values are written as
// stored; text content is entity-escaped.
func Render(w io.Writer, n *Node) error {
	var b strings.Builder
	render(&b, n)
	_, err := io.WriteString(w, b.String())
	return err
}

// String returns the markup for n. See Render.
func (n *Node) String() string {
	var b strings.Builder
	render(&b, n)
	return b.String()
}

func render(b *strings.Builder, n *Node) {
	switch n.Type {
	case ElementNode:
		if n.Data == RootTag && n.Parent == nil {
			renderChildren(b, n)
			return
		}
		b.WriteByte('<')
		b.WriteString(n.Data)
		for _, a := range n.Attr {
			b.WriteByte(' ')
			b.WriteString(a.Key)
			if s, ok := a.Val.(string); ok && s == "" {
				continue // boolean attribute
			}
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(attrText(a.Val)))
			b.WriteByte('"')
		}
		if n.SelfClosing {
			b.WriteString("/>")
			return
		}
		b.WriteByte('>')
		renderChildren(b, n)
		b.WriteString("</")
		b.WriteString(n.Data)
		b.WriteByte('>')
	case TextNode:
		b.WriteString(html.EscapeString(n.Data))
	case CommentNode:
		b.WriteString(n.Data)
	}
}

func renderChildren(b *strings.Builder, n *Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		render(b, c)
	}
}

func attrText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
