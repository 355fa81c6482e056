package cmd

import (
	"fmt"
	"log/slog"

	"github.com/alexiusacademia/gohyd/internal/diagram"
	"github.com/alexiusacademia/gohyd/internal/materials"
	"github.com/alexiusacademia/gohyd/internal/pipe"
	"github.com/alexiusacademia/gohyd/internal/report"
	"github.com/spf13/cobra"
)

var (
	// Pipe and fluid inputs
	designLength    float64
	designDiameter  float64
	designRoughness float64
	designViscosity float64
	designKm        float64
	designZ1        float64
	designZ2        float64
	designGravity   float64
	designMaterial  string
	designTemp      float64

	// Solver settings
	designTolHf   float64
	designTolQ    float64
	designMaxIter int

	// Output
	designTable   bool
	designDiagram bool
	designOutput  string
	designFormat  string
)

var pipeDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Calculate the discharge through a pipe between two reservoirs",
	Long: `Calculate the steady discharge Q through a single pipe joining two
reservoirs, balancing the elevation difference against friction and
minor losses:

  |z1 - z2| = hf + Km·V²/(2g)

The head loss is found by relaxed fixed-point iteration. Each step uses
the explicit Colebrook velocity, or Hagen-Poiseuille when that velocity
gives Re < 2000. Running out of iterations is reported, not an error:
the last estimate is shown.

Examples:
  # 100 m of 300 mm steel pipe, reservoirs 10 m apart, Km = 2
  gohyd pipe design -L 100 -d 0.3 -k 0.00015 --km 2 --z1 10 --z2 0

  # With the iteration table and a convergence chart
  gohyd pipe design -L 10 -d 0.01 -k 0.0001 --km 100 --z1 1 --table --diagram

  # Cast iron carrying water at 10 °C
  gohyd pipe design -L 500 -d 0.2 -m cast-iron -t 10 --km 4 --z1 25

  # Export the convergence history
  gohyd pipe design -L 100 -d 0.3 -k 0.00015 --z1 10 -o conv.svg -f json`,
	Args: cobra.NoArgs,
	RunE: runPipeDesign,
}

func init() {
	pipeCmd.AddCommand(pipeDesignCmd)

	defaults := pipe.DefaultOptions()

	// Geometry flags
	pipeDesignCmd.Flags().Float64VarP(&designLength, "length", "L", 0, "Pipe length L (m) [required]")
	pipeDesignCmd.Flags().Float64VarP(&designDiameter, "diameter", "d", 0, "Internal diameter D (m) [required]")
	pipeDesignCmd.Flags().Float64VarP(&designRoughness, "roughness", "k", 0, "Absolute roughness ks (m)")
	pipeDesignCmd.Flags().StringVarP(&designMaterial, "material", "m", "", "Pipe material for ks (see 'gohyd materials')")

	// Fluid flags
	pipeDesignCmd.Flags().Float64Var(&designViscosity, "viscosity", 1e-6, "Kinematic viscosity ν (m²/s)")
	pipeDesignCmd.Flags().Float64VarP(&designTemp, "temperature", "t", 20, "Water temperature (°C), sets ν from the water table")
	pipeDesignCmd.Flags().Float64Var(&designGravity, "gravity", 9.81, "Gravitational acceleration g (m/s²)")

	// Loss and elevation flags
	pipeDesignCmd.Flags().Float64Var(&designKm, "km", 0, "Sum of minor-loss coefficients Km")
	pipeDesignCmd.Flags().Float64Var(&designZ1, "z1", 0, "Upstream reservoir level (m)")
	pipeDesignCmd.Flags().Float64Var(&designZ2, "z2", 0, "Downstream reservoir level (m)")

	// Solver flags
	pipeDesignCmd.Flags().Float64Var(&designTolHf, "tol-hf", defaults.TolHf, "Head-loss tolerance (m)")
	pipeDesignCmd.Flags().Float64Var(&designTolQ, "tol-q", defaults.TolRelQ, "Relative discharge tolerance")
	pipeDesignCmd.Flags().IntVar(&designMaxIter, "max-iter", defaults.MaxIter, "Iteration budget")

	// Output flags
	pipeDesignCmd.Flags().BoolVar(&designTable, "table", false, "Show the iteration table")
	pipeDesignCmd.Flags().BoolVar(&designDiagram, "diagram", false, "Show a terminal chart of the convergence")
	pipeDesignCmd.Flags().StringVarP(&designOutput, "output", "o", "", "Export the convergence history to an image (png, svg, pdf)")
	pipeDesignCmd.Flags().StringVarP(&designFormat, "format", "f", "", "Output format: table, json, yaml")

	// Mark required flags
	pipeDesignCmd.MarkFlagRequired("length")
	pipeDesignCmd.MarkFlagRequired("diameter")
}

func runPipeDesign(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(designFormat)
	if err != nil {
		return err
	}

	in := pipe.Input{
		Length:    designLength,
		Diameter:  designDiameter,
		Roughness: designRoughness,
		Viscosity: appConfig.Pipe.Viscosity,
		MinorLoss: designKm,
		Z1:        designZ1,
		Z2:        designZ2,
		Gravity:   appConfig.Pipe.Gravity,
	}
	opts := appConfig.PipeOptions()

	// Flags override the settings file
	flags := cmd.Flags()
	if designMaterial != "" {
		if flags.Changed("roughness") {
			return fmt.Errorf("give either --roughness or --material, not both")
		}
		m, err := materials.Lookup(designMaterial)
		if err != nil {
			return err
		}
		in.Roughness = m.Roughness
	}
	if flags.Changed("temperature") {
		if flags.Changed("viscosity") {
			return fmt.Errorf("give either --viscosity or --temperature, not both")
		}
		nu, err := materials.WaterViscosity(designTemp)
		if err != nil {
			return err
		}
		in.Viscosity = nu
	}
	if flags.Changed("viscosity") {
		in.Viscosity = designViscosity
	}
	if flags.Changed("gravity") {
		in.Gravity = designGravity
	}
	if flags.Changed("tol-hf") {
		opts.TolHf = designTolHf
	}
	if flags.Changed("tol-q") {
		opts.TolRelQ = designTolQ
	}
	if flags.Changed("max-iter") {
		opts.MaxIter = designMaxIter
	}

	if err := in.Validate(); err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	// Run solver
	res := pipe.Solve(in, opts)

	slog.Debug("pipe.solved",
		"iterations", res.Iterations(),
		"converged", res.Converged,
		"q", res.Q,
	)
	if !res.Converged {
		slog.Warn("pipe.not_converged", "iterations", res.Iterations(), "q", res.Q)
	}

	if designOutput != "" {
		path, err := diagram.ExportConvergence(res, designOutput)
		if err != nil {
			return fmt.Errorf("failed to export convergence chart: %w", err)
		}
		slog.Info("pipe.chart_exported", "path", path)
	}

	out := cmd.OutOrStdout()
	if format != report.FormatTable {
		return writeRecord(cmd, format, report.KindPipe, report.NewPipeInput(in, opts), report.NewPipeOutput(res, designTable))
	}

	report.PipeSummary(out, in, res)
	if designTable {
		report.IterationTable(out, res)
	}
	if designDiagram {
		fmt.Fprint(out, diagram.DrawConvergence(res, diagram.DefaultASCIIOptions()))
		fmt.Fprintln(out)
	}
	return nil
}
