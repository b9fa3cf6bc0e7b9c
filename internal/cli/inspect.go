package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Koneist/OS/internal/regexlib"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect PATTERN",
		Short: "Show every compilation stage of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pattern := args[0]
			w := cmd.OutOrStdout()

			n, err := regexlib.CompileWith(pattern, compileOptions(getConfig(ctx), getLogger(ctx)))
			if err != nil {
				return err
			}
			root, err := regexlib.Decompose(n.Rewritten())
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "pattern:   %q\n", pattern)
			fmt.Fprintf(w, "explicit:  %q\n", regexlib.InsertConcat(pattern))
			fmt.Fprintf(w, "rewritten: %q\n", n.Rewritten())
			switch {
			case root.Terminal():
				fmt.Fprintf(w, "root:      %s %q\n", root.Kind, root.Left)
			case root.Kind == regexlib.Star || root.Kind == regexlib.Plus:
				fmt.Fprintf(w, "root:      %s operand=%q\n", root.Kind, root.Left)
			default:
				fmt.Fprintf(w, "root:      %s left=%q right=%q\n", root.Kind, root.Left, root.Right)
			}
			fmt.Fprintln(w)

			t := table.NewWriter()
			t.SetOutputMirror(w)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"stage", "states", "edges", "epsilon"})
			for _, st := range n.Stats() {
				t.AppendRow(table.Row{st.Stage, st.States, st.Edges, st.Epsilon})
			}
			t.Render()
			fmt.Fprintln(w)

			_, err = n.WriteTo(w)
			return err
		},
	}
}
