package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gohyd/internal/pipe"
)

// ASCIIOptions sizes the terminal charts
type ASCIIOptions struct {
	Width  int // plot columns, 0 for one column per iteration
	Height int // plot rows
}

// DefaultASCIIOptions returns a 60x10 chart
func DefaultASCIIOptions() ASCIIOptions {
	return ASCIIOptions{Width: 60, Height: 10}
}

// DrawConvergence charts hf and Q against iteration number, followed by a
// strip marking the regime of every step.
func DrawConvergence(res *pipe.Result, opts ASCIIOptions) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  CONVERGENCE HISTORY\n")
	sb.WriteString("  ───────────────────\n")

	if len(res.Table) < 2 {
		sb.WriteString(fmt.Sprintf("\n  Solved in %d iteration(s); nothing to chart.\n", len(res.Table)))
		return sb.String()
	}

	hf := make([]float64, len(res.Table))
	q := make([]float64, len(res.Table))
	for i, row := range res.Table {
		hf[i] = finite(row.Hf)
		q[i] = finite(row.Q)
	}

	chartOpts := func(caption string) []asciigraph.Option {
		o := []asciigraph.Option{
			asciigraph.Height(opts.Height),
			asciigraph.Offset(4),
			asciigraph.Caption(caption),
		}
		if opts.Width > 0 {
			o = append(o, asciigraph.Width(opts.Width))
		}
		return o
	}

	sb.WriteString("\n")
	sb.WriteString(asciigraph.Plot(hf, append(chartOpts("head loss hf (m) per iteration"), asciigraph.Precision(3))...))
	sb.WriteString("\n\n")
	sb.WriteString(asciigraph.Plot(q, append(chartOpts("discharge Q (m³/s) per iteration"), asciigraph.Precision(5))...))
	sb.WriteString("\n\n")
	sb.WriteString(RegimeStrip(res))

	return sb.String()
}

// RegimeStrip writes one character per iteration: T turbulent, L laminar
func RegimeStrip(res *pipe.Result) string {
	var strip strings.Builder
	laminar := 0
	for _, row := range res.Table {
		if row.Regime == pipe.Laminar {
			strip.WriteByte('L')
			laminar++
		} else {
			strip.WriteByte('T')
		}
	}
	return fmt.Sprintf("  Regime │%s│ %d laminar, %d turbulent\n", strip.String(), laminar, len(res.Table)-laminar)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := func(s string) int { return len([]rune(s)) }
	maxLen := width(title)
	for _, line := range lines {
		maxLen = max(maxLen, width(line))
	}
	maxLen += 4

	pad := func(s string) string { return s + strings.Repeat(" ", maxLen-2-width(s)) }

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
