package flexparse

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html/atom"

	"github.com/jacoblockett/flex-parse/dom"
	"github.com/jacoblockett/flex-parse/internal/chars"
)

// Parse scans data in a single left-to-right pass and returns the root of
// the resulting node tree. The input is stripped of surrounding whitespace
// before scanning. On error no tree is returned; partially built nodes are
// discarded.
func Parse(data string, cfg *Config) (*dom.Node, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	p := &parser{
		cfg:  cfg,
		raw:  cfg.rawTextSet(),
		void: cfg.voidSet(),
		root: dom.NewRoot(),
	}
	p.open = p.root
	if err := p.run(chars.Trim(data)); err != nil {
		return nil, err
	}
	return p.root, nil
}

// ParseBytes decodes b as UTF-8 and parses it. Invalid UTF-8 fails with
// ErrInvalidInput.
func ParseBytes(b []byte, cfg *Config) (*dom.Node, error) {
	if !utf8.Valid(b) {
		return nil, &ParseError{Err: ErrInvalidInput, Detail: "data is not valid UTF-8"}
	}
	return Parse(string(b), cfg)
}

// ParseReader reads r to the end and parses the contents. There is no
// streaming mode; the whole input is required up front.
func ParseReader(r io.Reader, cfg *Config) (*dom.Node, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(b, cfg)
}

// parser carries the scan state for a single Parse call.
type parser struct {
	cfg *Config

	raw  map[string]struct{}
	void map[string]struct{}

	root *dom.Node
	open *dom.Node // element currently accepting children

	kind NodeKind
	gate Gate
	tag  TagKind

	buf      strings.Builder // active accumulation buffer
	tagName  string          // committed tag name of the element being built
	attrs    []dom.Attribute
	attrName string // committed attribute name awaiting a value or the tag end
	eqSeen   bool   // '=' consumed after attrName; value capture pending

	rawText     bool
	rawSeq      []rune // closing sequence "</tagName>" to scan for
	rawEnd      int    // matched length of rawSeq, in runes
	rawEndBytes int    // matched length of rawSeq, in input bytes

	pos  int  // 1-based character offset in the trimmed input
	char rune // character being processed
}

func (p *parser) run(data string) error {
	for _, r := range data {
		p.pos++
		p.char = r
		if p.cfg.OnSnapshot != nil {
			p.cfg.OnSnapshot.Snapshot(p.snapshot())
		}
		if err := p.step(r); err != nil {
			return err
		}
	}
	return p.finish()
}

// step dispatches one character against the current state. The ordering of
// the cases is load-bearing: raw text swallows everything, quoted values
// neutralize every delimiter except their own quote, and only then do the
// structural characters get their meaning.
func (p *parser) step(r rune) error {
	if p.rawText {
		p.stepRaw(r)
		return nil
	}

	quoted := p.gate == GateSingleQuote || p.gate == GateDoubleQuote

	switch {
	case r == '<' && !quoted && p.kind != KindComment:
		return p.beginTag()

	case r == '>' && p.kind == KindComment:
		p.endComment()
		return nil

	case r == '>' && p.kind == KindElement && !quoted:
		return p.endElementTag()

	case p.kind == KindElement && !quoted && chars.IsSpace(r):
		p.commitField()
		return nil

	case r == '/' && p.kind == KindElement && !quoted:
		p.slash()
		return nil

	case r == '=' && p.kind == KindElement && p.gate == GateAttrName:
		p.attrName = p.buf.String()
		p.buf.Reset()
		p.gate = GateNone
		p.eqSeen = true
		return nil

	case r == '=' && p.kind == KindElement && p.gate == GateNone && p.attrName != "" && !p.eqSeen:
		p.eqSeen = true
		return nil

	case r == '\'' && p.gate == GateSingleQuote:
		p.commitAttr(p.buf.String())
		return nil

	case r == '"' && p.gate == GateDoubleQuote:
		p.commitAttr(p.buf.String())
		return nil

	case p.kind == KindElement && p.gate == GateNone:
		p.beginField(r)
		return nil

	default:
		p.accumulate(r)
		return nil
	}
}

// beginTag starts a new tag construct, flushing any accumulated text first.
// Inside an existing tag a '<' is unrecoverable.
func (p *parser) beginTag() error {
	if p.kind == KindElement {
		detail := "'<' inside tag"
		if p.tag == TagSelfClosing {
			detail = "self-closing tag is not terminated"
		}
		return &ParseError{Err: ErrUnexpectedToken, Char: '<', Offset: p.pos, Detail: detail}
	}
	if p.kind == KindText {
		if err := p.flushText(); err != nil {
			return err
		}
	}
	p.kind = KindElement
	p.gate = GateTagName
	p.tag = TagOpening
	p.buf.Reset()
	p.tagName = ""
	p.attrs = nil
	p.attrName = ""
	p.eqSeen = false
	return nil
}

// endElementTag handles '>' while building an element tag: commits whatever
// the gate was accumulating, then either resolves a closing tag or creates
// and attaches the new element.
func (p *parser) endElementTag() error {
	switch p.gate {
	case GateTagName:
		p.commitTagName()
	case GateAttrName:
		p.commitBareAttr(p.buf.String())
	case GateUnquoted:
		p.commitAttr(p.buf.String())
	}
	if p.attrName != "" {
		if p.eqSeen {
			// name= with no value
			p.commitAttr("")
		} else {
			p.commitBareAttr(p.attrName)
		}
	}

	if p.tag == TagClosing {
		return p.closeElement(p.tagName)
	}

	name := p.tagName
	el := &dom.Node{Type: dom.ElementNode, Data: name, Attr: p.attrs}
	if p.cfg.HTMLMode {
		el.DataAtom = atom.Lookup([]byte(name))
	}
	_, void := p.void[name]
	el.SelfClosing = p.tag == TagSelfClosing || void
	p.open.AppendChild(el)
	if !el.SelfClosing {
		p.open = el
		if _, ok := p.raw[name]; ok {
			p.enterRawText(name)
		}
	}
	p.resetTag()
	return nil
}

// closeElement resolves a closing tag against the open element, with a
// single level of forgiveness for mismatched nesting: the open node's parent
// may match instead, closing both.
func (p *parser) closeElement(name string) error {
	if p.open == p.root {
		return &ParseError{
			Err: ErrUnmatchedClosingTag, Char: '>', Offset: p.pos,
			Detail: fmt.Sprintf("no open element matches </%s>", name),
		}
	}
	switch {
	case p.open.Data == name:
		p.open = p.open.Parent
	case p.open.Parent != p.root && p.open.Parent.Data == name:
		p.open = p.open.Parent.Parent
	default:
		return &ParseError{
			Err: ErrUnmatchedClosingTag, Char: '>', Offset: p.pos,
			Detail: fmt.Sprintf("</%s> does not match <%s>", name, p.open.Data),
		}
	}
	p.resetTag()
	return nil
}

// endComment handles '>' inside a comment: the comment closes only when the
// two most recently buffered characters are "--"; otherwise the '>' is
// ordinary comment content.
func (p *parser) endComment() {
	if !strings.HasSuffix(p.buf.String(), "--") {
		p.buf.WriteRune('>')
		return
	}
	p.open.AppendChild(dom.NewComment("<" + p.buf.String() + ">"))
	p.buf.Reset()
	p.kind = KindNone
}

// commitField handles whitespace inside a tag: it acts as a field separator,
// committing whatever the gate was accumulating.
func (p *parser) commitField() {
	switch p.gate {
	case GateTagName:
		if p.buf.Len() == 0 {
			return // e.g. "< div>": keep scanning for the name
		}
		p.commitTagName()
	case GateAttrName:
		p.attrName = p.buf.String()
		p.buf.Reset()
		p.gate = GateNone
		p.eqSeen = false
	case GateUnquoted:
		p.commitAttr(p.buf.String())
	}
}

// slash handles '/' inside a tag: a closing-tag marker when it is the first
// character after '<', otherwise a self-closing marker, committing any
// pending tag name, bare attribute or unquoted value first.
func (p *parser) slash() {
	switch {
	case p.gate == GateTagName && p.buf.Len() == 0 && p.tagName == "":
		p.tag = TagClosing
	case p.gate == GateTagName:
		p.commitTagName()
		p.tag = TagSelfClosing
	case p.gate == GateAttrName:
		// committed without the attribute hook; only the '>' path fires it
		p.pushAttr(p.buf.String(), "")
		p.buf.Reset()
		p.gate = GateNone
		p.tag = TagSelfClosing
	case p.gate == GateUnquoted:
		p.commitAttr(p.buf.String())
		p.tag = TagSelfClosing
	default:
		p.tag = TagSelfClosing
	}
}

// beginField handles the first character of a new field inside a tag: the
// value for a held attribute name if '=' was seen, otherwise the start of an
// attribute name. A previously held bare word becomes a zero-value boolean
// attribute.
func (p *parser) beginField(r rune) {
	if p.eqSeen {
		switch r {
		case '\'':
			p.gate = GateSingleQuote
		case '"':
			p.gate = GateDoubleQuote
		default:
			p.gate = GateUnquoted
			p.buf.WriteRune(r)
		}
		p.eqSeen = false
		return
	}
	if p.attrName != "" {
		p.pushAttr(p.attrName, "")
		p.attrName = ""
	}
	p.gate = GateAttrName
	p.buf.WriteRune(r)
}

// accumulate appends r to the active buffer, implicitly opening a text node
// when nothing is in flight. A tag-name buffer spelling "!--" turns the
// element into a comment.
func (p *parser) accumulate(r rune) {
	if p.kind == KindNone {
		p.kind = KindText
	}
	p.buf.WriteRune(r)
	if p.kind == KindElement && p.gate == GateTagName &&
		p.buf.Len() == 3 && p.buf.String() == "!--" {
		p.kind = KindComment
		p.gate = GateNone
	}
}

func (p *parser) commitTagName() {
	name := p.buf.String()
	if p.cfg.HTMLMode {
		name = strings.ToLower(name)
	}
	p.tagName = name
	p.buf.Reset()
	p.gate = GateNone
}

// commitAttr commits a value for the held attribute name, applying the
// attribute trim and truncate settings.
func (p *parser) commitAttr(v string) {
	if p.cfg.TrimAttributes {
		v = chars.Trim(v)
	}
	if n := p.cfg.TruncateAttributes; n > 0 {
		v = truncate(v, n)
	}
	p.pushAttr(p.attrName, v)
	p.attrName = ""
	p.eqSeen = false
	p.gate = GateNone
	p.buf.Reset()
}

// commitBareAttr commits a value-less attribute at the moment its tag
// closes. This is the only path that fires the attribute hook.
func (p *parser) commitBareAttr(name string) {
	p.buf.Reset()
	p.gate = GateNone
	p.attrName = ""
	p.eqSeen = false
	if name == "" {
		return
	}
	h := p.cfg.OnAttribute
	if h == nil {
		p.pushAttr(name, "")
		return
	}
	ctx := AttrContext{TagName: p.tagName, Attrs: append([]dom.Attribute(nil), p.attrs...)}
	newName, newVal, ok := h.Attribute(name, "", ctx)
	if !ok || newName == "" || !isScalar(newVal) {
		return // dropped
	}
	p.attrs = append(p.attrs, dom.Attribute{Key: newName, Val: newVal})
}

func (p *parser) pushAttr(name string, v any) {
	p.attrs = append(p.attrs, dom.Attribute{Key: name, Val: v})
}

func (p *parser) resetTag() {
	p.kind = KindNone
	p.gate = GateNone
	p.tag = TagOpening
	p.buf.Reset()
	p.tagName = ""
	p.attrs = nil
	p.attrName = ""
	p.eqSeen = false
}

// enterRawText arms the raw-text scanner for the element just descended
// into. The body is opaque until its own closing sequence appears.
func (p *parser) enterRawText(name string) {
	p.rawText = true
	p.rawSeq = []rune("</" + name + ">")
	p.rawEnd = 0
	p.rawEndBytes = 0
}

// stepRaw consumes one character of a raw-text body, rolling a match against
// the element's closing sequence. A '<' or '/' that does not continue the
// sequence is ordinary content.
func (p *parser) stepRaw(r rune) {
	p.buf.WriteRune(r)
	if p.matchRaw(r) {
		p.rawEnd++
		p.rawEndBytes += utf8.RuneLen(r)
		if p.rawEnd == len(p.rawSeq) {
			p.leaveRawText()
		}
		return
	}
	p.rawEnd = 0
	p.rawEndBytes = 0
	if r == '<' {
		// re-synchronize: this character may begin the closing sequence
		p.rawEnd = 1
		p.rawEndBytes = 1
	}
}

func (p *parser) matchRaw(r rune) bool {
	if p.rawEnd >= len(p.rawSeq) {
		return false
	}
	want := p.rawSeq[p.rawEnd]
	if r == want {
		return true
	}
	return p.cfg.HTMLMode && unicode.ToLower(r) == want
}

// leaveRawText commits the raw body (minus the matched closing tag) as a
// single verbatim text child and pops back to the parent. Text hooks and
// trimming do not apply to raw bodies.
func (p *parser) leaveRawText() {
	s := p.buf.String()
	body := s[:len(s)-p.rawEndBytes]
	if body != "" {
		p.open.AppendChild(dom.NewText(body))
	}
	p.open = p.open.Parent
	p.rawText = false
	p.rawSeq = nil
	p.rawEnd = 0
	p.rawEndBytes = 0
	p.buf.Reset()
	p.kind = KindNone
}

// flushText commits the accumulated text run as a text node, applying the
// text hook, the empty-text check, trimming and truncation in that order.
func (p *parser) flushText() error {
	v := p.buf.String()
	p.buf.Reset()
	p.kind = KindNone
	if h := p.cfg.OnText; h != nil {
		nv, err := h.Text(v)
		if err != nil {
			return &ParseError{Err: ErrHook, Offset: p.pos, Detail: "onText: " + err.Error()}
		}
		v = nv
	}
	if p.cfg.IgnoreEmptyText && chars.IsBlank(v) {
		return nil
	}
	if p.cfg.TrimText {
		v = chars.Trim(v)
	}
	if n := p.cfg.TruncateText; n > 0 {
		v = truncate(v, n)
	}
	p.open.AppendChild(dom.NewText(v))
	return nil
}

// finish flushes a trailing text run; ending inside any other construct is
// fatal.
func (p *parser) finish() error {
	if p.rawText {
		return &ParseError{
			Err: ErrUnexpectedEOF, Offset: p.pos,
			Detail: fmt.Sprintf("unterminated raw text element <%s>", p.open.Data),
		}
	}
	switch p.kind {
	case KindText:
		return p.flushText()
	case KindElement:
		return &ParseError{Err: ErrUnexpectedEOF, Offset: p.pos, Detail: "unterminated tag"}
	case KindComment:
		return &ParseError{Err: ErrUnexpectedEOF, Offset: p.pos, Detail: "unterminated comment"}
	}
	return nil
}

func (p *parser) snapshot() Snapshot {
	return Snapshot{
		Char:     p.char,
		Offset:   p.pos,
		Gate:     p.gate,
		NodeKind: p.kind,
		TagKind:  p.tag,
		RawText:  p.rawText,
		TagName:  p.tagName,
		AttrName: p.attrName,
		Buffer:   p.buf.String(),
		OpenTag:  p.open.Data,
	}
}

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
