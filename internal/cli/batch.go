package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Koneist/OS/internal/regexlib"
)

type batchResult struct {
	pattern string
	listing string
	err     error
}

func newBatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Compile every line of a file as a separate pattern",
		Long: `Batch compiles each line of FILE independently and prints the results in
input order, each under a "# <pattern>" header. Patterns are compiled by up to
--workers goroutines; a failing pattern does not stop the others.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := getConfig(ctx)
			logger := getLogger(ctx)

			patterns, err := readLines(args[0])
			if err != nil {
				return err
			}

			results := make([]batchResult, len(patterns))
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(cfg.Workers)
			for i, p := range patterns {
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}
					results[i].pattern = p
					n, err := regexlib.CompileWith(p, compileOptions(cfg, logger))
					if err != nil {
						results[i].err = err
						return nil
					}
					results[i].listing = n.String()
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				fmt.Fprintf(w, "# %s\n", r.pattern)
				if r.err != nil {
					failed++
					fmt.Fprintf(w, "error: %v\n", r.err)
					continue
				}
				fmt.Fprint(w, r.listing)
			}
			logger.Info("batch done", "patterns", len(results), "failed", failed, "workers", cfg.Workers)
			if failed > 0 {
				return fmt.Errorf("%d of %d patterns failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntP("workers", "w", 0, "number of patterns compiled in parallel (default 4)")
	return cmd
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	return lines, nil
}
