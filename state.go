package flexparse

// A Gate names the buffer the next accumulated characters flush into.
type Gate uint8

const (
	GateNone Gate = iota
	GateTagName
	GateAttrName
	GateSingleQuote
	GateDoubleQuote
	GateUnquoted
)

func (g Gate) String() string {
	switch g {
	case GateNone:
		return "none"
	case GateTagName:
		return "tagName"
	case GateAttrName:
		return "attributeName"
	case GateSingleQuote:
		return "singleQuoteValue"
	case GateDoubleQuote:
		return "doubleQuoteValue"
	case GateUnquoted:
		return "unquotedValue"
	}
	return "unknown"
}

// A NodeKind names the kind of node in flight inside the current tag or
// text run.
type NodeKind uint8

const (
	KindNone NodeKind = iota
	KindElement
	KindText
	KindComment
)

func (k NodeKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindComment:
		return "comment"
	}
	return "unknown"
}

// A TagKind distinguishes opening, closing and self-closing tags. TagOpening
// is the default until a slash is seen in the relevant position.
type TagKind uint8

const (
	TagOpening TagKind = iota
	TagClosing
	TagSelfClosing
)

func (t TagKind) String() string {
	switch t {
	case TagOpening:
		return "opening"
	case TagClosing:
		return "closing"
	case TagSelfClosing:
		return "selfClosing"
	}
	return "unknown"
}

// A Snapshot is a read-only view of the scan state at one input character,
// captured before the character is processed. Snapshots have no effect on
// parsing and exist for debugging and tracing.
type Snapshot struct {
	// Char is the character about to be processed; Offset is its 1-based
	// position in the trimmed input.
	Char   rune
	Offset int

	Gate     Gate
	NodeKind NodeKind
	TagKind  TagKind
	RawText  bool

	// TagName is the committed tag name of the element under
	// construction; AttrName is a committed attribute name awaiting its
	// value; Buffer is the active accumulation buffer.
	TagName  string
	AttrName string
	Buffer   string

	// OpenTag is the tag name of the element currently accepting
	// children.
	OpenTag string
}
