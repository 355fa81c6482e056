package report

import (
	"fmt"
	"io"

	"github.com/alexiusacademia/gohyd/internal/pipe"
)

// PipeInput is the exported form of a pipe design problem
type PipeInput struct {
	pipe.Input `yaml:",inline"`
	TolHf      Number `json:"tol_hf" yaml:"tol_hf"`
	TolRelQ    Number `json:"tol_rel_q" yaml:"tol_rel_q"`
	MaxIter    int    `json:"max_iter" yaml:"max_iter"`
}

// PipeRow is one exported iteration
type PipeRow struct {
	Iter   int         `json:"iter" yaml:"iter"`
	Lambda Number      `json:"lambda" yaml:"lambda"`
	Hf     Number      `json:"hf" yaml:"hf"`
	V      Number      `json:"v" yaml:"v"`
	Q      Number      `json:"q" yaml:"q"`
	Re     Number      `json:"re" yaml:"re"`
	Regime pipe.Regime `json:"regimen" yaml:"regimen"`
}

// PipeOutput is the exported form of a pipe.Result
type PipeOutput struct {
	Q          Number      `json:"q" yaml:"q"`
	Converged  bool        `json:"converged" yaml:"converged"`
	Iterations int         `json:"iterations" yaml:"iterations"`
	Regime     pipe.Regime `json:"regimen,omitempty" yaml:"regimen,omitempty"`
	Velocity   Number      `json:"v" yaml:"v"`
	Reynolds   Number      `json:"re" yaml:"re"`
	Head       Number      `json:"head" yaml:"head"`
	Area       Number      `json:"area" yaml:"area"`
	Table      []PipeRow   `json:"table,omitempty" yaml:"table,omitempty"`
}

// NewPipeInput describes a solve of in with opts
func NewPipeInput(in pipe.Input, opts pipe.Options) PipeInput {
	return PipeInput{
		Input:   in,
		TolHf:   Number(opts.TolHf),
		TolRelQ: Number(opts.TolRelQ),
		MaxIter: opts.MaxIter,
	}
}

// NewPipeOutput converts res for export, with the iteration table when
// withTable is set.
func NewPipeOutput(res *pipe.Result, withTable bool) PipeOutput {
	out := PipeOutput{
		Q:          Number(res.Q),
		Converged:  res.Converged,
		Iterations: res.Iterations(),
		Head:       Number(res.Head),
		Area:       Number(res.Area),
	}
	if last, ok := res.Last(); ok {
		out.Regime = last.Regime
		out.Velocity = Number(last.V)
		out.Reynolds = Number(last.Re)
	}
	if withTable {
		out.Table = make([]PipeRow, len(res.Table))
		for i, row := range res.Table {
			out.Table[i] = PipeRow{
				Iter:   row.Iter,
				Lambda: Number(row.Lambda),
				Hf:     Number(row.Hf),
				V:      Number(row.V),
				Q:      Number(row.Q),
				Re:     Number(row.Re),
				Regime: row.Regime,
			}
		}
	}
	return out
}

// PipeSummary prints the inputs and the solved discharge
func PipeSummary(w io.Writer, in pipe.Input, res *pipe.Result) {
	Banner(w, "PIPE DISCHARGE - RESERVOIR TO RESERVOIR")

	Section(w, "INPUT DATA")
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "  Length (L):\t%g m\n", in.Length)
	fmt.Fprintf(tw, "  Diameter (D):\t%g m\n", in.Diameter)
	fmt.Fprintf(tw, "  Roughness (ks):\t%g m\n", in.Roughness)
	fmt.Fprintf(tw, "  Kinematic viscosity (ν):\t%g m²/s\n", in.Viscosity)
	fmt.Fprintf(tw, "  Minor-loss coefficient (Km):\t%g\n", in.MinorLoss)
	fmt.Fprintf(tw, "  Elevations (z1, z2):\t%g m, %g m\n", in.Z1, in.Z2)
	fmt.Fprintf(tw, "  Gravity (g):\t%g m/s²\n", in.Gravity)
	tw.Flush()
	fmt.Fprintln(w)

	Section(w, "GEOMETRY")
	tw = newTabWriter(w)
	fmt.Fprintf(tw, "  Available head (H):\t%.4f m\n", res.Head)
	fmt.Fprintf(tw, "  Cross-section (A):\t%.6f m²\n", res.Area)
	tw.Flush()
	fmt.Fprintln(w)

	last, ok := res.Last()
	if !ok {
		fmt.Fprintln(w, "  No iterations were run.")
		fmt.Fprintln(w)
		return
	}

	Section(w, "SOLUTION")
	tw = newTabWriter(w)
	fmt.Fprintf(tw, "  Iterations:\t%d\n", res.Iterations())
	fmt.Fprintf(tw, "  Friction head loss (hf):\t%.6f m\n", last.Hf)
	fmt.Fprintf(tw, "  Velocity (V):\t%.6f m/s\n", last.V)
	fmt.Fprintf(tw, "  Reynolds number (Re):\t%.0f\n", last.Re)
	fmt.Fprintf(tw, "  Flow regime:\t%s\n", regimeName(last.Regime))
	tw.Flush()
	fmt.Fprintln(w)

	Box(w, fmt.Sprintf("DISCHARGE Q = %.6f m³/s", res.Q))

	Section(w, "STATUS")
	if res.Converged {
		fmt.Fprintf(w, "  ✓ Converged after %d iterations\n", res.Iterations())
	} else {
		fmt.Fprintf(w, "  ⚠ Did not converge within %d iterations; last estimate shown\n", res.Iterations())
	}
	fmt.Fprintln(w)
}

// IterationTable prints the full trace, one line per iteration
func IterationTable(w io.Writer, res *pipe.Result) {
	Section(w, "ITERATIONS")
	tw := tabwriterRight(w)
	fmt.Fprintln(tw, "  i\tλ\thf (m)\tV (m/s)\tQ (m³/s)\tRe\tRegime\t")
	for _, row := range res.Table {
		fmt.Fprintf(tw, "  %d\t%.3f\t%.6f\t%.6f\t%.6f\t%.0f\t%s\t\n",
			row.Iter, row.Lambda, row.Hf, row.V, row.Q, row.Re, row.Regime)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

// regimeName adds the English reading of the stored label
func regimeName(r pipe.Regime) string {
	if r == pipe.Turbulent {
		return "Turbulent"
	}
	return string(r)
}
