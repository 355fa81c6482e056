package cmd

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/alexiusacademia/gohyd/internal/diagram"
	"github.com/alexiusacademia/gohyd/internal/friction"
	"github.com/spf13/cobra"
)

var (
	chartEquations []string
	chartRR        []float64
	chartReMin     float64
	chartReMax     float64
	chartPoints    int
	chartOutput    string
)

var frictionChartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Export a Moody chart",
	Long: `Plot the friction factor against Reynolds number on log-log axes,
one curve per equation and relative roughness, together with the
laminar line f = 64/Re.

The file format follows the extension of --output (png, svg, pdf, eps,
jpg, tif); anything else gets .png appended.

Examples:
  gohyd friction chart -o moody.svg
  gohyd friction chart -e colebrook-white,haaland --rr 1e-4,1e-2 -o compare.png`,
	Args: cobra.NoArgs,
	RunE: runFrictionChart,
}

func init() {
	frictionCmd.AddCommand(frictionChartCmd)

	frictionChartCmd.Flags().StringSliceVarP(&chartEquations, "equation", "e", []string{"colebrook-white"}, "Correlations to plot")
	frictionChartCmd.Flags().Float64SliceVar(&chartRR, "rr", []float64{0, 1e-5, 1e-4, 1e-3, 1e-2, 5e-2}, "Relative roughness values, one curve each")
	frictionChartCmd.Flags().Float64Var(&chartReMin, "re-min", 4000, "Lowest Reynolds number")
	frictionChartCmd.Flags().Float64Var(&chartReMax, "re-max", 1e8, "Highest Reynolds number")
	frictionChartCmd.Flags().IntVar(&chartPoints, "points", 60, "Samples per curve")
	frictionChartCmd.Flags().StringVarP(&chartOutput, "output", "o", "moody.png", "Output image file")
}

func runFrictionChart(cmd *cobra.Command, args []string) error {
	if !(chartReMin > 0) || !(chartReMax > chartReMin) {
		return fmt.Errorf("need 0 < --re-min < --re-max, got %v and %v", chartReMin, chartReMax)
	}
	if chartPoints < 2 {
		return fmt.Errorf("--points must be at least 2, got %d", chartPoints)
	}

	var equations []friction.Equation
	for _, name := range chartEquations {
		eq, err := friction.ParseEquation(name)
		if err != nil {
			return err
		}
		equations = append(equations, eq)
	}

	dec, err := appConfig.Exact()
	if err != nil {
		return err
	}
	solver := friction.NewSolver(dec)
	reynolds := friction.LogSpace(chartReMin, chartReMax, chartPoints)

	// One curve per (equation, ε/D); Blasius ignores ε/D so it gets one
	type job struct {
		eq friction.Equation
		rr float64
	}
	var jobs []job
	for _, eq := range equations {
		if !eq.NeedsRoughness() {
			jobs = append(jobs, job{eq, 0})
			continue
		}
		for _, rr := range chartRR {
			jobs = append(jobs, job{eq, rr})
		}
	}

	curves := make([]friction.Curve, len(jobs))
	var wg sync.WaitGroup
	for i, j := range jobs {
		i, j := i, j
		wg.Add(1)
		go func() {
			defer wg.Done()
			curves[i] = solver.Sweep(j.eq, reynolds, j.rr)
		}()
	}
	wg.Wait()

	for _, c := range curves {
		if len(c.Points) < len(reynolds) {
			slog.Warn("chart.points_skipped", "equation", c.Equation, "rr", c.RelativeRoughness,
				"skipped", len(reynolds)-len(c.Points))
		}
	}

	path, err := diagram.ExportMoody(curves, chartOutput)
	if err != nil {
		return fmt.Errorf("failed to export chart: %w", err)
	}
	slog.Debug("chart.exported", "path", path, "curves", len(curves))

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), diagram.DrawSummaryBox("MOODY CHART EXPORTED", []string{
		fmt.Sprintf("File:   %s", path),
		fmt.Sprintf("Curves: %d", len(curves)),
		fmt.Sprintf("Re:     %g to %g (%d points)", chartReMin, chartReMax, chartPoints),
	}))
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
