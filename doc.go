// Package flexparse is a permissive markup parser. It converts an HTML or
// XML-like character stream into a tree of element, text and comment nodes
// in a single left-to-right pass, favoring maximal recovery over strict
// validation: malformed input is resolved heuristically wherever a plausible
// reading exists, and only genuinely unrecoverable conditions (a stray '<'
// inside a tag, a closing tag with nothing to close, or input ending inside
// a tag or comment) abort the parse.
//
// The produced tree lives in the dom subpackage. Parsing is configured
// through Config, including an HTML mode with the standard raw-text and void
// element sets, text and attribute trimming, and optional hooks observing or
// rewriting content as it is committed.
package flexparse
