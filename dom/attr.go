package dom

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jacoblockett/flex-parse/internal/chars"
)

// AttrValue returns the value of the named attribute and whether it is
// present.
func (n *Node) AttrValue(key string) (any, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return nil, false
}

// AttrString returns the named attribute rendered as a string, or "" if the
// attribute is absent.
func (n *Node) AttrString(key string) string {
	v, ok := n.AttrValue(key)
	if !ok {
		return ""
	}
	if s, isStr := v.(string); isStr {
		return s
	}
	return fmt.Sprint(v)
}

// SetAttr sets the named attribute, replacing an existing value or appending
// a new attribute.
func (n *Node) SetAttr(key string, val any) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, Attribute{Key: key, Val: val})
}

// RemoveAttr removes the named attribute, reporting whether it was present.
func (n *Node) RemoveAttr(key string) bool {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return true
		}
	}
	return false
}

// Classes returns the whitespace-separated entries of the class attribute.
func (n *Node) Classes() []string {
	return chars.Fields(n.AttrString("class"))
}

// HasClass reports whether the class attribute contains name.
func (n *Node) HasClass(name string) bool {
	for _, c := range n.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass appends the given names to the class attribute, skipping names
// already present.
func (n *Node) AddClass(names ...string) {
	classes := n.Classes()
	for _, name := range names {
		if name == "" || slices.Contains(classes, name) {
			continue
		}
		classes = append(classes, name)
	}
	n.SetAttr("class", strings.Join(classes, " "))
}

// RemoveClass removes the given names from the class attribute. The
// attribute itself is kept, possibly empty.
func (n *Node) RemoveClass(names ...string) {
	drop := make(map[string]struct{}, len(names))
	for _, name := range names {
		drop[name] = struct{}{}
	}
	var kept []string
	for _, c := range n.Classes() {
		if _, ok := drop[c]; !ok {
			kept = append(kept, c)
		}
	}
	n.SetAttr("class", strings.Join(kept, " "))
}
