// Package cmd implements the CLI commands for durfmt.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/durfmt/internal/config"
	"github.com/Dicklesworthstone/durfmt/internal/render"
)

var (
	// Global flags
	cfgFile    string
	outputFlag string
	colorFlag  string
	verbose    bool

	// Resolved in PersistentPreRunE and shared across commands
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "durfmt",
	Short: "Format elapsed time as compact duration text",
	Long: `durfmt renders a non-negative duration (seconds plus nanoseconds) the way
Go prints a time.Duration: "72h3m0.5s", "1.1µs", "0s".

Examples:
  durfmt format 553 123456789     # 9m13.123456789s
  durfmt format --std 1500000000  # 1.5s
  durfmt batch durations.txt -o table
  durfmt examples --all`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/durfmt/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output format: text, table, json, yaml, cbor")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "color mode: auto, always, never")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadSettings resolves config with precedence flags > env > file > defaults.
func loadSettings(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = outputFlag
	}
	if flags.Changed("color") {
		cfg.Color = colorFlag
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger = newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	logger.Debug("settings resolved",
		"config", cfgFile,
		"output", cfg.Output,
		"color", cfg.Color,
	)
	return nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

// writeConversions renders convs to the command's stdout in the configured
// format.
func writeConversions(cmd *cobra.Command, convs []render.Conversion) error {
	format, err := render.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styles := render.ResolveColor(cfg.Color, out)
	r, err := render.New(format, styles)
	if err != nil {
		return err
	}

	logger.Debug("rendering", "count", len(convs), "format", format, "styled", styles.Enabled())
	return r.Render(out, convs)
}
