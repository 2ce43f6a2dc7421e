package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	flexparse "github.com/jacoblockett/flex-parse"
	"github.com/jacoblockett/flex-parse/dom"
)

func newDumpCommand() *cobra.Command {
	var (
		htmlMode    bool
		ignoreEmpty bool
		trimText    bool
		format      string
	)

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Parse a document and print its node tree",
		Long: `Parse the given file (or stdin) and print the resulting tree.
Formats: tree (indented node dump), html (re-rendered markup), xml
(indented XML via etree).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}

			cfg := &flexparse.Config{
				HTMLMode:        htmlMode,
				IgnoreEmptyText: ignoreEmpty,
				TrimText:        trimText,
			}
			root, err := flexparse.ParseBytes(data, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "tree":
				printTree(out, root, 0)
				return nil
			case "html":
				return dom.Render(out, root)
			case "xml":
				doc := dom.ToEtree(root)
				doc.Indent(2)
				s, err := doc.WriteToString()
				if err != nil {
					return err
				}
				_, err = io.WriteString(out, s)
				return err
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}

	cmd.Flags().BoolVar(&htmlMode, "html", false, "parse in HTML mode")
	cmd.Flags().BoolVar(&ignoreEmpty, "ignore-empty-text", false, "drop whitespace-only text nodes")
	cmd.Flags().BoolVar(&trimText, "trim-text", false, "trim surrounding whitespace from text nodes")
	cmd.Flags().StringVar(&format, "format", "tree", "output format: tree, html, xml")

	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func printTree(w io.Writer, n *dom.Node, level int) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		fmt.Fprint(w, "| ")
		for i := 0; i < level; i++ {
			fmt.Fprint(w, "  ")
		}
		switch c.Type {
		case dom.ElementNode:
			fmt.Fprintf(w, "<%s>", c.Data)
			for _, a := range c.Attr {
				fmt.Fprintf(w, ` %s=%q`, a.Key, fmt.Sprint(a.Val))
			}
			fmt.Fprintln(w)
			printTree(w, c, level+1)
		case dom.TextNode:
			fmt.Fprintf(w, "%q\n", c.Data)
		case dom.CommentNode:
			fmt.Fprintf(w, "%s\n", c.Data)
		}
	}
}
