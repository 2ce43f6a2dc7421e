package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// ToHTML converts the tree rooted at n into a golang.org/x/net/html node
// tree. The synthetic root maps to a DocumentNode; comment markers are
// stripped, since html.CommentNode stores the comment body only. Non-string
// attribute values are rendered as strings.
func ToHTML(n *Node) *html.Node {
	nn := &html.Node{
		Type:     html.ElementNode,
		DataAtom: n.DataAtom,
		Data:     n.Data,
	}
	switch n.Type {
	case ElementNode:
		if n.Data == RootTag && n.Parent == nil {
			nn.Type = html.DocumentNode
			nn.Data = ""
		}
	case TextNode:
		nn.Type = html.TextNode
	case CommentNode:
		nn.Type = html.CommentNode
		nn.Data = commentBody(n.Data)
	}
	for _, a := range n.Attr {
		nn.Attr = append(nn.Attr, html.Attribute{Key: a.Key, Val: attrText(a.Val)})
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		nn.AppendChild(ToHTML(c))
	}
	return nn
}

func commentBody(s string) string {
	s = strings.TrimPrefix(s, "<!--")
	s = strings.TrimSuffix(s, "-->")
	return s
}
