// Package trace consumes parser snapshots for debugging: an in-memory
// recorder with a textual dump, and an HTTP handler that streams snapshots
// over a websocket while a document is parsed.
package trace

import (
	"fmt"
	"io"
	"log/slog"

	flexparse "github.com/jacoblockett/flex-parse"
)

// Glyph returns a visible stand-in for whitespace characters (control
// pictures, middle dot for the plain space) and r itself for everything
// else.
func Glyph(r rune) rune {
	switch r {
	case ' ':
		return 0x00B7 // middle dot
	case '\t':
		return 0x2409
	case '\n':
		return 0x240A
	case '\v':
		return 0x240B
	case '\f':
		return 0x240C
	case '\r':
		return 0x240D
	}
	if flexparse.IsWhitespace(r, false) {
		return 0x2423 // open box
	}
	return r
}

func visible(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, Glyph(r))
	}
	return string(out)
}

// A Recorder collects one snapshot per scanned character. Assign it to
// Config.OnSnapshot. The zero value is ready to use; with a Logger set it
// also logs each step at debug level.
type Recorder struct {
	Logger *slog.Logger

	steps []flexparse.Snapshot
}

func (r *Recorder) Snapshot(s flexparse.Snapshot) {
	r.steps = append(r.steps, s)
	if r.Logger != nil {
		r.Logger.Debug("scan",
			"offset", s.Offset,
			"char", string(Glyph(s.Char)),
			"kind", s.NodeKind.String(),
			"gate", s.Gate.String(),
			"tag", s.TagKind.String(),
			"raw", s.RawText,
		)
	}
}

// Steps returns the recorded snapshots in scan order.
func (r *Recorder) Steps() []flexparse.Snapshot { return r.steps }

// Reset discards the recorded snapshots so the recorder can serve another
// parse.
func (r *Recorder) Reset() { r.steps = nil }

// Dump writes one line per recorded snapshot, with whitespace rendered
// through the visible glyph set.
func (r *Recorder) Dump(w io.Writer) error {
	for _, s := range r.steps {
		_, err := fmt.Fprintf(w, "%4d %s  %-8s %-16s %-11s buf=%q\n",
			s.Offset, string(Glyph(s.Char)),
			s.NodeKind, s.Gate, s.TagKind, visible(s.Buffer))
		if err != nil {
			return err
		}
	}
	return nil
}
