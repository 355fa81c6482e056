package cmd

import (
	"sync"

	"github.com/alexiusacademia/gohyd/internal/friction"
	"github.com/alexiusacademia/gohyd/internal/report"
	"github.com/spf13/cobra"
)

var (
	compareRe        float64
	compareRR        float64
	compareKs        float64
	compareDiameter  float64
	compareMaterial  string
	comparePrecision uint32
	compareRounding  string
	compareFormat    string
)

var frictionCompareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Evaluate every friction-factor correlation for the same inputs",
	Long: `Evaluate all seven friction-factor correlations for one Reynolds
number and relative roughness and list them side by side.

An equation that cannot be evaluated for the inputs (for example
von Kármán with a smooth pipe) is listed with the reason instead of
failing the whole comparison.

Examples:
  gohyd friction compare --re 1e6 --rr 1e-3
  gohyd friction compare --re 5e4 --ks 0.0015 -d 50 -f yaml`,
	Args: cobra.NoArgs,
	RunE: runFrictionCompare,
}

func init() {
	frictionCmd.AddCommand(frictionCompareCmd)

	frictionCompareCmd.Flags().Float64Var(&compareRe, "re", 0, "Reynolds number Re [required]")
	frictionCompareCmd.Flags().Float64Var(&compareRR, "rr", 0, "Relative roughness ε/D")
	frictionCompareCmd.Flags().Float64Var(&compareKs, "ks", 0, "Absolute roughness ε (same unit as --diameter)")
	frictionCompareCmd.Flags().Float64VarP(&compareDiameter, "diameter", "d", 0, "Internal diameter D (same unit as --ks, metres with --material)")
	frictionCompareCmd.Flags().StringVarP(&compareMaterial, "material", "m", "", "Pipe material for ks (see 'gohyd materials')")
	frictionCompareCmd.Flags().Uint32Var(&comparePrecision, "precision", 50, "Significant digits of the decimal arithmetic")
	frictionCompareCmd.Flags().StringVar(&compareRounding, "rounding", "half-even", "Rounding mode")
	frictionCompareCmd.Flags().StringVarP(&compareFormat, "format", "f", "", "Output format: table, json, yaml")

	frictionCompareCmd.MarkFlagRequired("re")
}

func runFrictionCompare(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(compareFormat)
	if err != nil {
		return err
	}
	dec, err := decimalConfig(cmd, comparePrecision, compareRounding)
	if err != nil {
		return err
	}

	base := friction.Input{Reynolds: compareRe}
	if err := roughnessInput(cmd, &base, compareRR, compareKs, compareDiameter, compareMaterial); err != nil {
		return err
	}

	solver := friction.NewSolver(dec)
	equations := friction.Equations()
	rows := make([]report.Comparison, len(equations))

	var wg sync.WaitGroup
	for i, eq := range equations {
		i, eq := i, eq
		wg.Add(1)
		go func() {
			defer wg.Done()
			in := base
			in.Equation = eq
			res, err := solver.Compute(in)
			rows[i] = report.Comparison{Equation: eq, Result: res, Err: err}
		}()
	}
	wg.Wait()

	for _, row := range rows {
		if row.Result != nil {
			logFriction(row.Result)
		}
	}

	rr := base.RelativeRoughness
	if base.Diameter > 0 {
		rr = base.Roughness / base.Diameter
	}

	if format == report.FormatTable {
		return report.CompareTable(cmd.OutOrStdout(), compareRe, rr, rows)
	}
	out, err := report.NewComparisonOutput(rows)
	if err != nil {
		return err
	}
	input := report.FrictionInput{
		Reynolds:          report.Number(compareRe),
		RelativeRoughness: report.Number(rr),
		Precision:         dec.Precision,
		Rounding:          dec.Rounding,
	}
	return writeRecord(cmd, format, report.KindFrictionCompare, input, out)
}
