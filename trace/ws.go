package trace

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	flexparse "github.com/jacoblockett/flex-parse"
)

// A Frame is one websocket message sent by Handler: a "step" per parsed
// character, then a final "done" with the rendered tree or an "error".
type Frame struct {
	Type    string `json:"type"`
	Offset  int    `json:"offset,omitempty"`
	Char    string `json:"char,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Gate    string `json:"gate,omitempty"`
	Tag     string `json:"tag,omitempty"`
	RawText bool   `json:"rawText,omitempty"`
	Buffer  string `json:"buffer,omitempty"`
	OpenTag string `json:"openTag,omitempty"`
	Tree    string `json:"tree,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Handler streams parser snapshots over a websocket. Each text message
// received from the client is parsed as a document; the handler replies with
// one step frame per character followed by a done or error frame, then waits
// for the next document.
type Handler struct {
	// Config is the parse configuration to use. Its OnSnapshot hook is
	// replaced for the duration of each streamed parse.
	Config *flexparse.Config

	// Logger configures logging for connection events. Defaults to a
	// discarding logger.
	Logger *slog.Logger

	upgrader websocket.Upgrader
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := h.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if !websocket.IsWebSocketUpgrade(r) {
		http.Error(w, "websocket upgrade required", http.StatusBadRequest)
		return
	}

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Upgrade websocket", "error", err)
		return
	}
	defer func() { _ = ws.Close() }()

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Error("Read websocket message", "error", err)
			}
			return
		}
		if err := h.stream(ws, msg); err != nil {
			logger.Error("Stream parse", "error", err)
			return
		}
	}
}

// stream parses doc and writes the snapshot frames to ws.
func (h *Handler) stream(ws *websocket.Conn, doc []byte) error {
	var cfg flexparse.Config
	if h.Config != nil {
		cfg = *h.Config
	}

	var writeErr error
	cfg.OnSnapshot = flexparse.SnapshotHookFunc(func(s flexparse.Snapshot) {
		if writeErr != nil {
			return
		}
		writeErr = ws.WriteJSON(Frame{
			Type:    "step",
			Offset:  s.Offset,
			Char:    string(s.Char),
			Kind:    s.NodeKind.String(),
			Gate:    s.Gate.String(),
			Tag:     s.TagKind.String(),
			RawText: s.RawText,
			Buffer:  s.Buffer,
			OpenTag: s.OpenTag,
		})
	})

	root, err := flexparse.ParseBytes(doc, &cfg)
	if writeErr != nil {
		return writeErr
	}
	if err != nil {
		return ws.WriteJSON(Frame{Type: "error", Error: err.Error()})
	}
	return ws.WriteJSON(Frame{Type: "done", Tree: root.String()})
}
