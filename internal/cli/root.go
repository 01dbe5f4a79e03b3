// Package cli provides the coldb command-line interface.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"colDB/internal/cli/output"
	"colDB/internal/config"
	"colDB/internal/engine"

	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

type configKey struct{}

type rendererKey struct{}

// NewRootCmd creates the root command. Without a subcommand it starts the
// interactive shell.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "coldb",
		Short: "coldb - a small column-oriented SQL-like database",
		Long: `coldb keeps tables of string columns in memory and persists them to a
single binary file with SAVE and LOAD.

Supported statements:
  CREATE TABLE <name> (<col>, ...)
  INSERT INTO <name> (<value>, ...)
  SELECT * FROM <name>
  SAVE | LOAD | EXIT

A column named IPv4 only accepts dotted-quad addresses.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, used, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level, err := config.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			if used != "" {
				logger.Debug("using config file", "path", used)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = context.WithValue(ctx, configKey{}, cfg)
			errOut := cmd.ErrOrStderr()
			if cfg.ErrorOutput == config.ErrorOutputStdout {
				errOut = cmd.OutOrStdout()
			}
			ctx = context.WithValue(ctx, rendererKey{}, output.NewRenderer(cmd.OutOrStdout(), errOut, cfg.Output))
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./coldb.yaml)")
	flags.String("db-file", "", "database file used by SAVE and LOAD (default: database.db)")
	flags.Int("max-query-length", 0, "maximum query length in bytes (default: 256)")
	flags.String("prompt", "", "interactive prompt")
	flags.String("history-file", "", "file to keep interactive history in")
	flags.StringP("output", "o", "", "SELECT output format (plain|table)")
	flags.String("log-level", "", "log level (debug|info|warn|error)")
	flags.String("error-output", "", "stream for statement errors (stderr|stdout)")
	flags.Bool("banner", true, "print the start-up banner")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputPlain, config.OutputTable}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("error-output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.ErrorOutputStderr, config.ErrorOutputStdout}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newREPLCommand())
	rootCmd.AddCommand(newExecCommand())
	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return config.Default()
}

// GetRenderer retrieves the renderer from the command context.
func GetRenderer(ctx context.Context) *output.Renderer {
	if r, ok := ctx.Value(rendererKey{}).(*output.Renderer); ok {
		return r
	}
	return output.NewRenderer(os.Stdout, os.Stderr, config.OutputPlain)
}

// CreateEngine creates and starts an engine from the configuration.
func CreateEngine(cfg *config.Config, logger *slog.Logger) (*engine.DBEngine, error) {
	eng := engine.New(engine.Config{
		FilePath:       cfg.DBFile,
		MaxQueryLength: cfg.MaxQueryLength,
		Logger:         logger,
	})
	if err := eng.Start(); err != nil {
		return nil, fmt.Errorf("start engine: %w", err)
	}
	return eng, nil
}
