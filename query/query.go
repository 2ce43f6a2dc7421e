// Package query selects nodes from a parsed tree with expr-lang
// expressions. An expression is compiled once and evaluated against an
// environment built per node, e.g.:
//
//	q, _ := query.Compile(`tag == "div" && attrs.id == "a"`)
//	nodes, _ := query.Find(root, q)
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/jacoblockett/flex-parse/dom"
)

// A Query is a compiled boolean node expression.
type Query struct {
	src  string
	prog *vm.Program
}

// Compile compiles src as a boolean expression over the node environment:
// tag (string), kind ("element", "text" or "comment"), text (concatenated
// subtree text), attrs (map of attribute values), depth (distance from the
// root) and selfClosing (bool).
func Compile(src string) (*Query, error) {
	prog, err := expr.Compile(src, expr.Env(map[string]any{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile query %q: %w", src, err)
	}
	return &Query{src: src, prog: prog}, nil
}

// String returns the query source.
func (q *Query) String() string { return q.src }

// Match evaluates the query against a single node. Depth is computed from
// the node's distance to its tree's root.
func (q *Query) Match(n *dom.Node) (bool, error) {
	return q.match(n, depth(n))
}

func (q *Query) match(n *dom.Node, d int) (bool, error) {
	out, err := vm.Run(q.prog, nodeEnv(n, d))
	if err != nil {
		return false, fmt.Errorf("run query %q: %w", q.src, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("query %q did not yield a bool", q.src)
	}
	return b, nil
}

// Find returns every descendant of root matching q, in document order. The
// root itself is not considered.
func Find(root *dom.Node, q *Query) ([]*dom.Node, error) {
	var out []*dom.Node
	_, err := walk(root, 1, func(n *dom.Node, d int) (bool, error) {
		ok, err := q.match(n, d)
		if err != nil {
			return false, err
		}
		if ok {
			out = append(out, n)
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// First returns the first descendant of root matching q, or nil if none
// does.
func First(root *dom.Node, q *Query) (*dom.Node, error) {
	var found *dom.Node
	_, err := walk(root, 1, func(n *dom.Node, d int) (bool, error) {
		ok, err := q.match(n, d)
		if err != nil {
			return false, err
		}
		if ok {
			found = n
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// walk visits root's descendants depth-first. fn returning true stops the
// whole walk.
func walk(n *dom.Node, d int, fn func(*dom.Node, int) (bool, error)) (bool, error) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		stop, err := fn(c, d)
		if err != nil || stop {
			return stop, err
		}
		stop, err = walk(c, d+1, fn)
		if err != nil || stop {
			return stop, err
		}
	}
	return false, nil
}

func nodeEnv(n *dom.Node, d int) map[string]any {
	attrs := make(map[string]any, len(n.Attr))
	for _, a := range n.Attr {
		attrs[a.Key] = a.Val
	}
	var kind string
	switch n.Type {
	case dom.ElementNode:
		kind = "element"
	case dom.TextNode:
		kind = "text"
	case dom.CommentNode:
		kind = "comment"
	}
	tag := ""
	if n.Type == dom.ElementNode {
		tag = n.Data
	}
	return map[string]any{
		"tag":         tag,
		"kind":        kind,
		"text":        n.Text(),
		"attrs":       attrs,
		"depth":       d,
		"selfClosing": n.SelfClosing,
	}
}

func depth(n *dom.Node) int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}
