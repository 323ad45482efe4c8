// Package cli implements the factorize command tree.
package cli

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"primefactorizer/internal/config"
	"primefactorizer/prime"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	Bound      int
	Strategy   string

	// resolved in PersistentPreRunE
	config config.Config
	logger *slog.Logger
}

// NewRootCommand creates the root command for the factorize CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "factorize",
		Short: "Factorize integers up to a fixed bound",
		Long: `Factorize integers up to a fixed bound.

The primes up to the square root of the bound are sieved once, then every
input is divided by them in ascending order. Inputs below 2 or above the
bound are reported as out of range.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return resolveOptions(opts, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", config.DefaultFormat, "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().IntVarP(&opts.Bound, "bound", "b", config.DefaultBound, "largest integer that can be factorized")
	cmd.PersistentFlags().StringVar(&opts.Strategy, "strategy", config.DefaultStrategy, "sieve strategy (direct|stride)")

	cmd.AddCommand(NewFactorCommand(opts))
	cmd.AddCommand(NewPrimesCommand(opts))

	return cmd
}

// resolveOptions layers defaults, the config file and explicitly set flags,
// then installs the logger.
func resolveOptions(opts *RootOptions, cmd *cobra.Command) error {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return reportConfigError(cmd, err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("bound") {
		cfg.Bound = opts.Bound
	}
	if flags.Changed("strategy") {
		cfg.Strategy = opts.Strategy
	}
	if flags.Changed("format") {
		cfg.Format = opts.Format
	}
	if err := cfg.Validate(); err != nil {
		return reportConfigError(cmd, err)
	}
	opts.config = cfg

	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))
	return nil
}

// reportConfigError prints a configuration error as text; the output format
// itself may be what failed to resolve.
func reportConfigError(cmd *cobra.Command, err error) error {
	formatter := &OutputFormatter{Format: "text", Writer: cmd.ErrOrStderr()}
	_ = formatter.Error(ErrCodeConfig, err.Error())
	return WrapExitError(ExitCommandError, "invalid configuration", err)
}

// formatter builds the output formatter for a command.
func (opts *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.config.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // logs go to stderr to avoid corrupting JSON
	}
}

// newFactorizer builds the factorizer described by the resolved config.
func (opts *RootOptions) newFactorizer() (*prime.Factorizer, error) {
	cfg := opts.config
	opts.logger.Debug("building sieve", "bound", cfg.Bound, "strategy", cfg.Strategy)

	start := time.Now()
	f, err := prime.NewFactorizerWithStrategy(cfg.Bound, cfg.SieveStrategy())
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to build factorizer", err)
	}

	opts.logger.Debug("sieve ready",
		"primes", len(f.Primes()),
		"elapsed", time.Since(start))
	return f, nil
}
