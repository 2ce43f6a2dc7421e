package dom

import (
	"github.com/beevik/etree"
)

// ToEtree converts the tree rooted at n into an etree document, for XML
// serialization and path queries. Children of the synthetic root become
// top-level tokens of the document; any other node converts to a single
// top-level token. Attribute values are rendered as strings.
func ToEtree(n *Node) *etree.Document {
	doc := etree.NewDocument()
	if n.Type == ElementNode && n.Data == RootTag && n.Parent == nil {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			appendEtree(&doc.Element, c)
		}
		return doc
	}
	appendEtree(&doc.Element, n)
	return doc
}

func appendEtree(parent *etree.Element, n *Node) {
	switch n.Type {
	case ElementNode:
		el := parent.CreateElement(n.Data)
		for _, a := range n.Attr {
			el.CreateAttr(a.Key, attrText(a.Val))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			appendEtree(el, c)
		}
	case TextNode:
		parent.CreateText(n.Data)
	case CommentNode:
		parent.CreateComment(commentBody(n.Data))
	}
}
