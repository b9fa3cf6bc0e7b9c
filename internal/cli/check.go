package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Koneist/OS/internal/tlist"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check LISTING [WORD...]",
		Short: "Run words through a compiled transition list",
		Long: `Check parses a transition list (a file, or "-" for stdin) and prints
"accept" or "reject" for every word. Pass "" for the empty word.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readListing(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			l, err := tlist.Parse(src)
			if err != nil {
				return err
			}
			getLogger(cmd.Context()).Debug("listing parsed", "states", l.States(), "transitions", l.Transitions())

			w := cmd.OutOrStdout()
			for _, word := range args[1:] {
				verdict := "reject"
				if l.Accepts(word) {
					verdict = "accept"
				}
				fmt.Fprintf(w, "%q\t%s\n", word, verdict)
			}
			return nil
		},
	}
}

func readListing(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read listing: %w", err)
	}
	return string(data), nil
}
