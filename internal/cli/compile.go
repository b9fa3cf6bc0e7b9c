package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Koneist/OS/internal/regexlib"
)

func newCompileCommand() *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a pattern and write its transition list",
		Long: `Compile reads the pattern from the first line of the input file (in.txt
by default) unless --pattern is given, and writes the automaton to the output
file (out.txt by default, "-" for stdout). A missing or empty first line is the
empty pattern, which accepts only the empty word.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := getConfig(ctx)
			logger := getLogger(ctx)

			if !cmd.Flags().Changed("pattern") {
				var err error
				pattern, err = readPattern(cfg.Input)
				if err != nil {
					return err
				}
				logger.Debug("pattern read", "input", cfg.Input)
			}

			n, err := regexlib.CompileWith(pattern, compileOptions(cfg, logger))
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if cfg.Format == "dot" {
				if err := regexlib.ExportDOT(&buf, n); err != nil {
					return err
				}
			} else if _, err := n.WriteTo(&buf); err != nil {
				return err
			}

			if err := writeOutput(cmd.OutOrStdout(), cfg.Output, buf.Bytes()); err != nil {
				return err
			}
			logger.Info("compiled", "pattern", pattern, "states", n.StateCount(), "transitions", n.TransitionCount(), "output", cfg.Output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "pattern to compile instead of reading the input file")
	cmd.Flags().StringP("input", "i", "", "file whose first line is the pattern (default in.txt)")
	cmd.Flags().StringP("output", "o", "", `output file, "-" for stdout (default out.txt)`)
	cmd.Flags().StringP("format", "f", "", "output format (text|dot)")
	return cmd
}

// readPattern returns the first line of path without its line terminator.
func readPattern(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
