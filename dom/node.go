// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// Modifications:
//  - Reduced node type set to element, text and comment nodes.
//  - Typed attribute values and a self-closing flag on elements.

// Package dom holds the node tree produced by the flex-parse scanner: a
// pointer-linked tree of element, text and comment nodes with helpers for
// attribute and class manipulation, traversal and serialization.
package dom

import (
	"golang.org/x/net/html/atom"
)

// A NodeType is the type of a Node.
type NodeType uint32

const (
	ErrorNode NodeType = iota
	ElementNode
	TextNode
	CommentNode
)

// RootTag is the tag name of the synthetic root element created for each
// parse. The root has no parent and is never self-closing.
const RootTag = "ROOT"

// An Attribute is a single key/value pair on an element. Val is a string for
// attributes read from markup; attribute hooks may substitute bool or numeric
// scalars.
type Attribute struct {
	Key string
	Val any
}

// A Node is an element, text or comment node in the parsed tree. Element
// nodes own their children; a child holds a non-owning back-reference to its
// parent.
type Node struct {
	Parent, FirstChild, LastChild, PrevSibling, NextSibling *Node

	Type NodeType

	// DataAtom is the atom for Data, or zero if Data is not a known HTML
	// tag name. Populated only when parsing in HTML mode.
	DataAtom atom.Atom

	// Data is the tag name for element nodes and the literal value for
	// text and comment nodes. Comment values keep their <!-- --> markers.
	Data string

	Attr []Attribute

	// SelfClosing marks elements terminated without a closing tag, either
	// explicitly (<img/>) or implicitly (void elements).
	SelfClosing bool
}

// NewRoot returns a fresh synthetic root element.
func NewRoot() *Node {
	return &Node{Type: ElementNode, Data: RootTag}
}

// NewElement returns a detached element node with the given tag name and
// attributes.
func NewElement(tag string, attrs ...Attribute) *Node {
	return &Node{Type: ElementNode, Data: tag, Attr: attrs}
}

// NewText returns a detached text node.
func NewText(value string) *Node {
	return &Node{Type: TextNode, Data: value}
}

// NewComment returns a detached comment node. The value is stored as given,
// so callers should include the <!-- --> markers.
func NewComment(value string) *Node {
	return &Node{Type: CommentNode, Data: value}
}

// InsertBefore inserts newChild as a child of n, immediately before oldChild
// in the sequence of n's children. oldChild may be nil, in which case
// newChild is appended to the end of n's children.
//
// It will panic if newChild already has a parent or siblings.
func (n *Node) InsertBefore(newChild, oldChild *Node) {
	if newChild.Parent != nil || newChild.PrevSibling != nil || newChild.NextSibling != nil {
		panic("dom: InsertBefore called for an attached child Node")
	}
	var prev, next *Node
	if oldChild != nil {
		prev, next = oldChild.PrevSibling, oldChild
	} else {
		prev = n.LastChild
	}
	if prev != nil {
		prev.NextSibling = newChild
	} else {
		n.FirstChild = newChild
	}
	if next != nil {
		next.PrevSibling = newChild
	} else {
		n.LastChild = newChild
	}
	newChild.Parent = n
	newChild.PrevSibling = prev
	newChild.NextSibling = next
}

// AppendChild adds a node c as a child of n.
//
// It will panic if c already has a parent or siblings.
func (n *Node) AppendChild(c *Node) {
	if c.Parent != nil || c.PrevSibling != nil || c.NextSibling != nil {
		panic("dom: AppendChild called for an attached child Node")
	}
	last := n.LastChild
	if last != nil {
		last.NextSibling = c
	} else {
		n.FirstChild = c
	}
	n.LastChild = c
	c.Parent = n
	c.PrevSibling = last
}

// RemoveChild removes a node c that is a child of n. Afterwards, c will have
// no parent and no siblings.
//
// It will panic if c's parent is not n.
func (n *Node) RemoveChild(c *Node) {
	if c.Parent != n {
		panic("dom: RemoveChild called for a non-child Node")
	}
	if n.FirstChild == c {
		n.FirstChild = c.NextSibling
	}
	if c.NextSibling != nil {
		c.NextSibling.PrevSibling = c.PrevSibling
	}
	if n.LastChild == c {
		n.LastChild = c.PrevSibling
	}
	if c.PrevSibling != nil {
		c.PrevSibling.NextSibling = c.NextSibling
	}
	c.Parent = nil
	c.PrevSibling = nil
	c.NextSibling = nil
}

// Children returns the immediate children of n in document order.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// Find returns the first element with the given tag name in a depth-first
// walk of n's descendants, or nil.
func (n *Node) Find(tag string) *Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == ElementNode && c.Data == tag {
			return c
		}
		if found := c.Find(tag); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every element with the given tag name among n's
// descendants, in document order.
func (n *Node) FindAll(tag string) []*Node {
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == ElementNode && c.Data == tag {
			out = append(out, c)
		}
		out = append(out, c.FindAll(tag)...)
	}
	return out
}

// Text returns the concatenated values of all text nodes in n's subtree,
// including n itself.
func (n *Node) Text() string {
	if n.Type == TextNode {
		return n.Data
	}
	var out string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out += c.Text()
	}
	return out
}
