package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gohyd/internal/config"
	"github.com/alexiusacademia/gohyd/internal/logging"
	"github.com/alexiusacademia/gohyd/internal/version"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	logLevel   string
	verbose    bool
	noColor    bool

	// appConfig is loaded before any subcommand runs
	appConfig = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gohyd",
	Short: "Pipe Hydraulics Calculator",
	Long: `gohyd - Go Pipe Hydraulics Calculator

A CLI tool for pressurised pipe flow calculations:
  - Darcy friction factor by seven correlations, evaluated in
    50-digit decimal arithmetic
  - Side-by-side comparison of the correlations
  - Moody chart export
  - Discharge between two reservoirs through a single pipe,
    with the full iteration history

Settings are read from gohyd.toml (see --config); flags override them.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gohyd v%-49s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Pipe Hydraulics Calculator                           ║")
		fmt.Fprintf(out, "  ║   %-56s║\n", fmt.Sprintf("%s ©  %s", version.Author, version.Year))
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  A CLI tool for friction factors and pipe discharge.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Colebrook-White, Haaland, Swamee-Jain, Churchill,")
		fmt.Fprintln(out, "      Serghides, Blasius and von Kármán friction factors")
		fmt.Fprintln(out, "    • Exact decimal arithmetic with configurable precision")
		fmt.Fprintln(out, "    • Moody chart export (PNG, SVG, PDF)")
		fmt.Fprintln(out, "    • Reservoir-to-reservoir pipe discharge with iteration history")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gohyd --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default: $GOHYD_CONFIG, ./gohyd.toml, ~/.config/gohyd/gohyd.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides the settings file)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Shorthand for --log-level debug")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored log output")
}

// setup loads the settings file and installs the logger
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return err
	}
	appConfig = cfg

	level := cfg.General.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if verbose {
		level = "debug"
	}

	if _, err := logging.Setup(logging.Options{
		Level:   level,
		Writer:  cmd.ErrOrStderr(),
		NoColor: noColor,
	}); err != nil {
		return err
	}

	if cfg.Path != "" {
		slog.Debug("config.loaded", "path", cfg.Path)
	}
	return nil
}
