package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	flexparse "github.com/jacoblockett/flex-parse"
	"github.com/jacoblockett/flex-parse/query"
	"github.com/jacoblockett/flex-parse/trace"
)

const document = `
<article data-id=42>
  <h1>Permissive parsing</h1>
  <p class="lead">Lead with <em>loose</em> markup</p>
  <div><p>An unclosed paragraph is forgiven.</div>
  <img src=diagram.png>
  <script>if (a < b) { draw() }</script>
</article>`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	cfg := &flexparse.Config{
		HTMLMode:        true,
		IgnoreEmptyText: true,
		TrimText:        true,
		OnText: flexparse.TextHookFunc(func(raw string) (string, error) {
			return flexparse.CollapseWhitespace(raw, false), nil
		}),
	}

	root, err := flexparse.Parse(document, cfg)
	if err != nil {
		logger.Error("Parse document", "error", err)
		os.Exit(1)
	}

	fmt.Println("rendered:")
	fmt.Println(root.String())
	fmt.Println()

	q, err := query.Compile(`tag == "p" && attrs.class == "lead"`)
	if err != nil {
		logger.Error("Compile query", "error", err)
		os.Exit(1)
	}
	lead, err := query.First(root, q)
	if err != nil {
		logger.Error("Run query", "error", err)
		os.Exit(1)
	}
	if lead != nil {
		fmt.Println("lead paragraph:", strings.TrimSpace(lead.Text()))
	}

	// Stream per-character scanner snapshots at ws://localhost:8080/trace.
	mux := http.NewServeMux()
	mux.Handle("/trace", &trace.Handler{
		Config: cfg,
		Logger: logger,
	})

	logger.Info("Starting HTTP server", "address", "http://localhost:8080")

	err = http.ListenAndServe(":8080", mux)

	logger.Error("HTTP server error", "error", err)
}
