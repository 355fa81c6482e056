package report

import (
	"fmt"
	"io"

	"github.com/alexiusacademia/gohyd/internal/exact"
	"github.com/alexiusacademia/gohyd/internal/friction"
	"github.com/cockroachdb/apd/v3"
)

// FactorPlaces is the number of fractional digits shown for a friction factor
const FactorPlaces = 15

var display = exact.Default()

// FormatFactor renders f with 15 fractional digits, rounded half-to-even,
// and strips trailing fractional zeros: 0.0199434658404768661... becomes
// "0.019943465840477".
func FormatFactor(f *apd.Decimal) (string, error) {
	return display.Trimmed(f, FactorPlaces)
}

// FrictionInput is the exported form of a friction calculation's inputs
type FrictionInput struct {
	Equation          friction.Equation `json:"equation,omitempty" yaml:"equation,omitempty"`
	Reynolds          Number            `json:"reynolds,omitempty" yaml:"reynolds,omitempty"`
	RelativeRoughness Number            `json:"relative_roughness" yaml:"relative_roughness"`
	Precision         uint32            `json:"precision" yaml:"precision"`
	Rounding          exact.Rounding    `json:"rounding" yaml:"rounding"`
}

// FrictionOutput is the exported form of a friction.Result
type FrictionOutput struct {
	Equation   friction.Equation `json:"equation" yaml:"equation"`
	Title      string            `json:"title" yaml:"title"`
	Factor     string            `json:"factor" yaml:"factor"` // display value
	Exact      string            `json:"exact" yaml:"exact"`   // full context precision
	Iterations int               `json:"iterations,omitempty" yaml:"iterations,omitempty"`
	Status     friction.Status   `json:"status" yaml:"status"`
	Warnings   []string          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// NewFrictionInput describes the inputs of res
func NewFrictionInput(res *friction.Result, cfg exact.Config) FrictionInput {
	in := FrictionInput{
		Equation:          res.Equation,
		RelativeRoughness: Number(res.RelativeRoughness),
		Precision:         cfg.Precision,
		Rounding:          cfg.Rounding,
	}
	if res.Equation.NeedsReynolds() {
		in.Reynolds = Number(res.Reynolds)
	}
	return in
}

// NewFrictionOutput converts res for export
func NewFrictionOutput(res *friction.Result) (FrictionOutput, error) {
	factor, err := FormatFactor(res.Value)
	if err != nil {
		return FrictionOutput{}, fmt.Errorf("failed to format %s factor: %w", res.Equation, err)
	}
	out := FrictionOutput{
		Equation:   res.Equation,
		Title:      res.Equation.Title(),
		Factor:     factor,
		Exact:      res.Value.Text('f'),
		Iterations: res.Iterations,
		Status:     res.Status,
	}
	for _, w := range res.Warnings {
		out.Warnings = append(out.Warnings, w.Message)
	}
	return out, nil
}

// FrictionTable prints a single friction-factor result
func FrictionTable(w io.Writer, res *friction.Result, cfg exact.Config) error {
	out, err := NewFrictionOutput(res)
	if err != nil {
		return err
	}

	Banner(w, "DARCY FRICTION FACTOR - "+out.Title)

	Section(w, "INPUT DATA")
	tw := newTabWriter(w)
	if res.Equation.NeedsReynolds() {
		fmt.Fprintf(tw, "  Reynolds number (Re):\t%g\n", res.Reynolds)
	}
	if res.Equation.NeedsRoughness() {
		fmt.Fprintf(tw, "  Relative roughness (ε/D):\t%g\n", res.RelativeRoughness)
	}
	fmt.Fprintf(tw, "  Precision:\t%d digits, %s\n", cfg.Precision, cfg.Rounding)
	tw.Flush()
	fmt.Fprintln(w)

	Section(w, "SOLUTION")
	tw = newTabWriter(w)
	fmt.Fprintf(tw, "  Method:\t%s\n", describeStatus(res))
	fmt.Fprintf(tw, "  Exact value:\t%s\n", out.Exact)
	tw.Flush()
	fmt.Fprintln(w)

	Box(w, "FRICTION FACTOR f = "+out.Factor)

	if len(res.Warnings) > 0 {
		Section(w, "WARNINGS")
		for _, warn := range res.Warnings {
			fmt.Fprintf(w, "  ⚠ %s\n", warn.Message)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// Comparison is one equation's outcome in a side-by-side evaluation
type Comparison struct {
	Equation friction.Equation
	Result   *friction.Result // nil when Err is set
	Err      error
}

// ComparisonOutput is the exported form of a Comparison
type ComparisonOutput struct {
	Equation friction.Equation `json:"equation" yaml:"equation"`
	Factor   string            `json:"factor,omitempty" yaml:"factor,omitempty"`
	Status   friction.Status   `json:"status,omitempty" yaml:"status,omitempty"`
	Warnings []string          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Error    string            `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewComparisonOutput converts rows for export
func NewComparisonOutput(rows []Comparison) ([]ComparisonOutput, error) {
	out := make([]ComparisonOutput, 0, len(rows))
	for _, row := range rows {
		c := ComparisonOutput{Equation: row.Equation}
		if row.Result == nil {
			if row.Err != nil {
				c.Error = row.Err.Error()
			}
			out = append(out, c)
			continue
		}
		fo, err := NewFrictionOutput(row.Result)
		if err != nil {
			return nil, err
		}
		c.Factor, c.Status, c.Warnings = fo.Factor, fo.Status, fo.Warnings
		out = append(out, c)
	}
	return out, nil
}

// CompareTable prints one line per equation. Failed equations show their error.
func CompareTable(w io.Writer, re, rr float64, rows []Comparison) error {
	out, err := NewComparisonOutput(rows)
	if err != nil {
		return err
	}

	Banner(w, "FRICTION FACTOR COMPARISON")

	Section(w, "INPUT DATA")
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "  Reynolds number (Re):\t%g\n", re)
	fmt.Fprintf(tw, "  Relative roughness (ε/D):\t%g\n", rr)
	tw.Flush()
	fmt.Fprintln(w)

	Section(w, "RESULTS")
	tw = newTabWriter(w)
	fmt.Fprintln(tw, "  Equation\tf\tMethod")
	for i, row := range rows {
		if row.Result == nil {
			fmt.Fprintf(tw, "  %s\t-\t%s\n", row.Equation.Title(), out[i].Error)
			continue
		}
		mark := ""
		if len(row.Result.Warnings) > 0 {
			mark = " ⚠"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s%s\n", row.Equation.Title(), out[i].Factor, describeStatus(row.Result), mark)
	}
	tw.Flush()
	fmt.Fprintln(w)

	var warned bool
	for _, row := range rows {
		if row.Result == nil {
			continue
		}
		for _, warn := range row.Result.Warnings {
			if !warned {
				Section(w, "WARNINGS")
				warned = true
			}
			fmt.Fprintf(w, "  ⚠ %s\n", warn)
		}
	}
	if warned {
		fmt.Fprintln(w)
	}
	return nil
}

func describeStatus(res *friction.Result) string {
	switch res.Status {
	case friction.StatusConverged:
		return fmt.Sprintf("converged in %d iterations", res.Iterations)
	case friction.StatusIterationLimit:
		return fmt.Sprintf("stopped at the %d-iteration limit", res.Iterations)
	case friction.StatusTruncated:
		return fmt.Sprintf("stopped after %d iterations (log argument <= 0)", res.Iterations)
	}
	return "closed form"
}
