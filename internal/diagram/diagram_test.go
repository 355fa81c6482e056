package diagram

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gohyd/internal/exact"
	"github.com/alexiusacademia/gohyd/internal/friction"
	"github.com/alexiusacademia/gohyd/internal/pipe"
)

// regime flips between laminar and turbulent on the first steps
func crossingResult() *pipe.Result {
	return pipe.Solve(pipe.Input{
		Length: 10, Diameter: 0.01, Roughness: 0.0001, Viscosity: 1e-6,
		MinorLoss: 100, Z1: 1, Z2: 0, Gravity: 9.81,
	}, pipe.DefaultOptions())
}

func TestDrawConvergence(t *testing.T) {
	res := crossingResult()
	out := DrawConvergence(res, DefaultASCIIOptions())

	for _, want := range []string{"CONVERGENCE HISTORY", "head loss hf", "discharge Q", "Regime"} {
		if !strings.Contains(out, want) {
			t.Errorf("chart missing %q:\n%s", want, out)
		}
	}
}

func TestDrawConvergence_SingleRow(t *testing.T) {
	res := &pipe.Result{Table: []pipe.IterationRow{{Iter: 1, Hf: 0.1, Q: 1e-8, Regime: pipe.Laminar}}}
	out := DrawConvergence(res, DefaultASCIIOptions())
	if !strings.Contains(out, "nothing to chart") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRegimeStrip(t *testing.T) {
	res := crossingResult()
	strip := RegimeStrip(res)

	var want strings.Builder
	laminar := 0
	for _, row := range res.Table {
		if row.Regime == pipe.Laminar {
			want.WriteByte('L')
			laminar++
		} else {
			want.WriteByte('T')
		}
	}
	if !strings.Contains(strip, "│"+want.String()+"│") {
		t.Errorf("RegimeStrip() = %q, want strip %q", strip, want.String())
	}
	if !strings.HasPrefix(want.String(), "TLTL") {
		t.Errorf("strip %q does not start with the expected flips", want.String())
	}
	if laminar == 0 {
		t.Error("expected laminar steps")
	}
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("MOODY CHART", []string{"curves: 4", "ε/D = 0.0001"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), box)
	}
	width := len([]rune(lines[0]))
	for i, line := range lines {
		if n := len([]rune(line)); n != width {
			t.Errorf("line %d is %d runes wide, want %d: %q", i, n, width, line)
		}
	}
}

func assertFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("%s is empty", path)
	}
}

func TestExportConvergence(t *testing.T) {
	dir := t.TempDir()
	res := crossingResult()

	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"png", filepath.Join(dir, "conv.png"), filepath.Join(dir, "conv.png")},
		{"svg in new directory", filepath.Join(dir, "out", "conv.svg"), filepath.Join(dir, "out", "conv.svg")},
		{"unknown extension", filepath.Join(dir, "conv"), filepath.Join(dir, "conv.png")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := ExportConvergence(res, tt.filename)
			if err != nil {
				t.Fatalf("ExportConvergence() error = %v", err)
			}
			if path != tt.want {
				t.Errorf("path = %q, want %q", path, tt.want)
			}
			assertFile(t, path)
		})
	}
}

func TestExportConvergence_Empty(t *testing.T) {
	_, err := ExportConvergence(&pipe.Result{}, filepath.Join(t.TempDir(), "x.png"))
	if !errors.Is(err, ErrNoData) {
		t.Errorf("error = %v, want ErrNoData", err)
	}
}

func TestExportMoody(t *testing.T) {
	solver := friction.NewSolver(exact.DefaultConfig())
	re := friction.LogSpace(4e3, 1e8, 25)
	curves := []friction.Curve{
		solver.Sweep(friction.ColebrookWhite, re, 0),
		solver.Sweep(friction.ColebrookWhite, re, 1e-3),
		solver.Sweep(friction.Haaland, re, 1e-3),
	}

	path, err := ExportMoody(curves, filepath.Join(t.TempDir(), "moody.svg"))
	if err != nil {
		t.Fatalf("ExportMoody() error = %v", err)
	}
	assertFile(t, path)

	// von Kármán is undefined at ε/D = 0, so the only curve is empty
	empty := []friction.Curve{solver.Sweep(friction.VonKarman, re, 0)}
	if _, err := ExportMoody(empty, filepath.Join(t.TempDir(), "none.png")); !errors.Is(err, ErrNoData) {
		t.Errorf("error = %v, want ErrNoData", err)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in, path, format string
	}{
		{"a.png", "a.png", "png"},
		{"a.PDF", "a.PDF", "pdf"},
		{"a.svg", "a.svg", "svg"},
		{"a.txt", "a.txt.png", "png"},
		{"a", "a.png", "png"},
	}
	for _, tt := range tests {
		path, format := outputPath(tt.in)
		if path != tt.path || format != tt.format {
			t.Errorf("outputPath(%q) = %q, %q; want %q, %q", tt.in, path, format, tt.path, tt.format)
		}
	}
}
