// Package cli provides the regexnfa command line interface.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Koneist/OS/internal/config"
	"github.com/Koneist/OS/internal/logging"
	"github.com/Koneist/OS/internal/regexlib"
)

// Version is set at build time.
var Version = "0.1.0"

type configKey struct{}

type loggerKey struct{}

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "regexnfa",
		Short: "Compile regular expressions into epsilon-free NFAs",
		Long: `regexnfa compiles a pattern made of literal characters, '|', '*', '+'
and parentheses into a nondeterministic finite automaton without epsilon
transitions and prints it as a transition list, one state per line:

  <id>[*]-><label><dest>[|<label><dest>]...`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			if cfg.File != "" {
				logger.Debug("using config file", "path", cfg.File)
			}
			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./regexnfa.yaml)")
	pf.String("merge", "", "state merge mode (single|fixpoint|none)")
	pf.Bool("sort-transitions", false, "sort each state's transitions by label")
	pf.String("log-level", "", "log level (debug|info|warn|error)")
	pf.String("log-format", "", "log format (text|json)")

	rootCmd.AddCommand(newCompileCommand())
	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newBatchCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func getConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		Input:     config.DefaultInput,
		Output:    config.DefaultOutput,
		Format:    "text",
		Merge:     config.MergeSingle,
		Workers:   config.DefaultWorkers,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

func getLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// compileOptions maps the configured merge mode onto compiler options.
func compileOptions(cfg *config.Config, logger *slog.Logger) regexlib.Options {
	return regexlib.Options{
		MergeFixpoint:   cfg.Merge == config.MergeFixpoint,
		SkipMerge:       cfg.Merge == config.MergeNone,
		SortTransitions: cfg.SortTransitions,
		Logger:          logger,
	}
}
