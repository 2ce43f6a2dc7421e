package flexparse

import (
	"strings"

	"github.com/jacoblockett/flex-parse/dom"
)

// Raw-text and void element sets seeded by HTML mode, merged with any
// caller-supplied lists.
var (
	htmlRawTextElements = []string{"script", "style", "title", "textarea"}

	htmlVoidElements = []string{
		"area", "base", "br", "col", "command", "embed", "hr", "img",
		"input", "keygen", "link", "meta", "param", "source", "track", "wbr",
	}
)

// AttrContext describes the element whose tag is being closed when an
// AttributeHook runs: the tag name as captured and the attributes committed
// before the hooked one.
type AttrContext struct {
	TagName string
	Attrs   []dom.Attribute
}

// A TextHook rewrites the raw accumulated text of a text node just before it
// is committed, ahead of trimming, truncation and the empty-text check.
// A returned error aborts the parse.
type TextHook interface {
	Text(raw string) (string, error)
}

// TextHookFunc adapts a function to the TextHook interface.
type TextHookFunc func(raw string) (string, error)

func (f TextHookFunc) Text(raw string) (string, error) { return f(raw) }

// An AttributeHook observes a bare (value-less) attribute at the moment its
// tag closes. Returning ok with a non-empty name and a scalar value (string,
// bool or number) commits the replacement; any other result drops the
// attribute. Attributes with explicit values never reach the hook.
type AttributeHook interface {
	Attribute(name, value string, ctx AttrContext) (newName string, newVal any, ok bool)
}

// AttributeHookFunc adapts a function to the AttributeHook interface.
type AttributeHookFunc func(name, value string, ctx AttrContext) (string, any, bool)

func (f AttributeHookFunc) Attribute(name, value string, ctx AttrContext) (string, any, bool) {
	return f(name, value, ctx)
}

// A SnapshotHook receives a read-only snapshot of the scan state once per
// input character. It must not block; the scan cannot suspend.
type SnapshotHook interface {
	Snapshot(s Snapshot)
}

// SnapshotHookFunc adapts a function to the SnapshotHook interface.
type SnapshotHookFunc func(s Snapshot)

func (f SnapshotHookFunc) Snapshot(s Snapshot) { f(s) }

// Config controls a parse. The zero value parses with everything off: no
// HTML mode, no raw-text or void elements, no trimming and no hooks.
type Config struct {
	// HTMLMode lower-cases tag names on capture and seeds RawTextElements
	// and VoidElements with the standard HTML sets. Tag name matching
	// becomes effectively case-insensitive.
	HTMLMode bool

	// IgnoreEmptyText drops text nodes whose value is empty or entirely
	// whitespace. The check runs after OnText and before trimming.
	IgnoreEmptyText bool

	// RawTextElements lists tag names whose body is opaque text up to the
	// matching closing tag. Case-sensitive unless HTMLMode is set.
	RawTextElements []string

	// VoidElements lists tag names that can never have children; opening
	// one is treated as self-closing even without an explicit slash.
	VoidElements []string

	// TrimAttributes strips surrounding whitespace from every attribute
	// value as it is committed, regardless of quoting style.
	TrimAttributes bool

	// TruncateAttributes caps attribute values at this many characters.
	// Zero disables truncation.
	TruncateAttributes int

	// TrimText strips surrounding whitespace from every text node value at
	// commit time, after OnText.
	TrimText bool

	// TruncateText caps text node values at this many characters. Zero
	// disables truncation.
	TruncateText int

	// OnText, OnAttribute and OnSnapshot are optional hooks; see their
	// interface docs for call timing.
	OnText      TextHook
	OnAttribute AttributeHook
	OnSnapshot  SnapshotHook
}

func (c *Config) rawTextSet() map[string]struct{} {
	return c.tagSet(c.RawTextElements, htmlRawTextElements)
}

func (c *Config) voidSet() map[string]struct{} {
	return c.tagSet(c.VoidElements, htmlVoidElements)
}

func (c *Config) tagSet(names, htmlSeed []string) map[string]struct{} {
	s := make(map[string]struct{}, len(names)+len(htmlSeed))
	if c.HTMLMode {
		for _, t := range htmlSeed {
			s[t] = struct{}{}
		}
	}
	for _, t := range names {
		if c.HTMLMode {
			t = strings.ToLower(t)
		}
		s[t] = struct{}{}
	}
	return s
}
