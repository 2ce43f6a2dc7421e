package trace

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialHandler(t *testing.T, h http.Handler) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrames(t *testing.T, conn *websocket.Conn) []Frame {
	t.Helper()
	var frames []Frame
	for {
		var f Frame
		require.NoError(t, conn.ReadJSON(&f))
		frames = append(frames, f)
		if f.Type != "step" {
			return frames
		}
	}
}

func TestHandlerStream(t *testing.T) {
	conn := dialHandler(t, &Handler{})

	input := "<div>hi</div>"
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(input)))

	frames := readFrames(t, conn)
	require.Len(t, frames, len(input)+1)

	first := frames[0]
	assert.Equal(t, "step", first.Type)
	assert.Equal(t, 1, first.Offset)
	assert.Equal(t, "<", first.Char)

	done := frames[len(frames)-1]
	assert.Equal(t, "done", done.Type)
	assert.Equal(t, "<div>hi</div>", done.Tree)

	// the connection stays open for the next document
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("x")))
	frames = readFrames(t, conn)
	require.Len(t, frames, 2)
	assert.Equal(t, "done", frames[1].Type)
}

func TestHandlerParseError(t *testing.T) {
	conn := dialHandler(t, &Handler{})

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("</div>")))
	frames := readFrames(t, conn)

	last := frames[len(frames)-1]
	assert.Equal(t, "error", last.Type)
	assert.Contains(t, last.Error, "unmatched closing tag")
}

func TestHandlerRejectsPlainHTTP(t *testing.T) {
	srv := httptest.NewServer(&Handler{})
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
