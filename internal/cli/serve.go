package cli

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	flexparse "github.com/jacoblockett/flex-parse"
	"github.com/jacoblockett/flex-parse/trace"
)

func newServeCommand() *cobra.Command {
	var (
		addr     string
		htmlMode bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a websocket scanner trace",
		Long: `Start an HTTP server exposing /trace, a websocket endpoint that
parses each received document and streams one state snapshot per character,
followed by the rendered tree.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			handler := &trace.Handler{
				Config: &flexparse.Config{HTMLMode: htmlMode},
				Logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
			}

			mux := http.NewServeMux()
			mux.Handle("/trace", handler)

			log.Info("listening", "addr", addr)
			return http.ListenAndServe(addr, mux)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8473", "listen address")
	cmd.Flags().BoolVar(&htmlMode, "html", false, "parse documents in HTML mode")

	return cmd
}
