package cmd

import (
	"log/slog"

	"github.com/alexiusacademia/gohyd/internal/friction"
	"github.com/alexiusacademia/gohyd/internal/report"
	"github.com/spf13/cobra"
)

var (
	// Friction factor inputs
	frictionEquation  string
	frictionRe        float64
	frictionRR        float64
	frictionKs        float64
	frictionDiameter  float64
	frictionMaterial  string
	frictionPrecision uint32
	frictionRounding  string
	frictionFormat    string
)

var frictionCmd = &cobra.Command{
	Use:   "friction",
	Short: "Darcy friction factor from Re and ε/D",
	Long: `Calculate the Darcy-Weisbach friction factor f with one of seven
correlations, evaluated in exact decimal arithmetic (50 significant
digits, round-half-to-even unless configured otherwise).

Equations:
  colebrook-white  implicit, solved by fixed-point iteration
  haaland          explicit approximation of Colebrook-White
  swamee-jain      explicit, fitted for 1e-6 <= ε/D <= 1e-2, 5000 <= Re <= 1e8
  churchill        explicit, all regimes
  serghides        explicit, Steffensen acceleration of Colebrook-White
  blasius          smooth pipe, 4000 <= Re <= 1e5 (ε/D ignored)
  von-karman       fully rough flow (Re ignored)

The relative roughness is given with --rr, or as --ks and --diameter
in the same length unit, or as --material with --diameter in metres.

Subcommands:
  compare  - Evaluate every equation for the same inputs
  chart    - Export a Moody chart

Examples:
  # Colebrook-White for Re = 100000, ε/D = 0.0001
  gohyd friction --re 1e5 --rr 1e-4

  # Haaland with absolute roughness (commercial steel, 300 mm pipe)
  gohyd friction -e haaland --re 2.5e5 --ks 0.045 -d 300

  # Cast iron, 150 mm pipe
  gohyd friction --re 1e5 -m cast-iron -d 0.15

  # Fully rough flow, 80 digits, as JSON
  gohyd friction -e von-karman --rr 0.01 --precision 80 -f json`,
	Args: cobra.NoArgs,
	RunE: runFriction,
}

func init() {
	rootCmd.AddCommand(frictionCmd)

	frictionCmd.Flags().StringVarP(&frictionEquation, "equation", "e", "", "Correlation to use (default from settings, colebrook-white)")

	// Flow and pipe flags
	frictionCmd.Flags().Float64Var(&frictionRe, "re", 0, "Reynolds number Re")
	frictionCmd.Flags().Float64Var(&frictionRR, "rr", 0, "Relative roughness ε/D")
	frictionCmd.Flags().Float64Var(&frictionKs, "ks", 0, "Absolute roughness ε (same unit as --diameter)")
	frictionCmd.Flags().Float64VarP(&frictionDiameter, "diameter", "d", 0, "Internal diameter D (same unit as --ks, metres with --material)")
	frictionCmd.Flags().StringVarP(&frictionMaterial, "material", "m", "", "Pipe material for ks (see 'gohyd materials')")

	// Arithmetic flags
	frictionCmd.Flags().Uint32Var(&frictionPrecision, "precision", 50, "Significant digits of the decimal arithmetic")
	frictionCmd.Flags().StringVar(&frictionRounding, "rounding", "half-even", "Rounding mode: half-even, half-up, half-down, down, up, ceiling, floor")

	frictionCmd.Flags().StringVarP(&frictionFormat, "format", "f", "", "Output format: table, json, yaml")
}

func runFriction(cmd *cobra.Command, args []string) error {
	eq, err := equationFlag(frictionEquation)
	if err != nil {
		return err
	}
	format, err := outputFormat(frictionFormat)
	if err != nil {
		return err
	}
	dec, err := decimalConfig(cmd, frictionPrecision, frictionRounding)
	if err != nil {
		return err
	}

	in := friction.Input{Equation: eq, Reynolds: frictionRe}
	if err := roughnessInput(cmd, &in, frictionRR, frictionKs, frictionDiameter, frictionMaterial); err != nil {
		return err
	}

	// Run calculation
	res, err := friction.NewSolver(dec).Compute(in)
	if err != nil {
		return err
	}
	logFriction(res)

	if format == report.FormatTable {
		return report.FrictionTable(cmd.OutOrStdout(), res, dec)
	}
	out, err := report.NewFrictionOutput(res)
	if err != nil {
		return err
	}
	return writeRecord(cmd, format, report.KindFriction, report.NewFrictionInput(res, dec), out)
}

func logFriction(res *friction.Result) {
	slog.Debug("friction.computed",
		"equation", res.Equation,
		"re", res.Reynolds,
		"rr", res.RelativeRoughness,
		"f", res.Float64(),
		"status", res.Status,
		"iterations", res.Iterations,
	)
	for _, w := range res.Warnings {
		slog.Warn("friction.advisory", "equation", w.Equation, "message", w.Message)
	}
	if !res.Converged() {
		slog.Warn("friction.not_converged", "equation", res.Equation, "status", res.Status, "iterations", res.Iterations)
	}
}
