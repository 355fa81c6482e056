package report

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/alexiusacademia/gohyd/internal/exact"
	"github.com/alexiusacademia/gohyd/internal/friction"
	"github.com/alexiusacademia/gohyd/internal/pipe"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatFactor(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0.019943465840476866187", "0.019943465840477"},
		{"0.0250000000000000000001", "0.025"},
		// ties go to the even digit
		{"0.0199999999999995", "0.02"},
		{"0.0199999999999985", "0.019999999999998"},
		{"0.064", "0.064"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := FormatFactor(exact.MustParse(tt.input))
			if err != nil {
				t.Fatalf("FormatFactor() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatFactor(%s) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNumber_JSON(t *testing.T) {
	tests := []struct {
		value Number
		want  string
	}{
		{Number(0.5), "0.5"},
		{Number(1e-6), "1e-06"},
		{Number(math.Inf(1)), `"+Inf"`},
		{Number(math.Inf(-1)), `"-Inf"`},
		{Number(math.NaN()), `"NaN"`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			b, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("Marshal() = %s, want %s", b, tt.want)
			}

			var back Number
			if err := json.Unmarshal(b, &back); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if math.IsNaN(float64(tt.value)) {
				if !math.IsNaN(float64(back)) {
					t.Errorf("round trip = %v, want NaN", back)
				}
			} else if back != tt.value {
				t.Errorf("round trip = %v, want %v", back, tt.value)
			}
		})
	}

	var n Number
	if err := json.Unmarshal([]byte(`"lots"`), &n); err == nil {
		t.Error("expected error for a non-numeric string")
	}
}

func solvedPipe(t *testing.T, viscosity float64) (pipe.Input, *pipe.Result) {
	t.Helper()
	in := pipe.Input{
		Length: 100, Diameter: 0.3, Roughness: 0.00015, Viscosity: viscosity,
		MinorLoss: 2, Z1: 10, Z2: 0, Gravity: 9.81,
	}
	return in, pipe.Solve(in, pipe.DefaultOptions())
}

func TestEncode_PipeRecord(t *testing.T) {
	in, res := solvedPipe(t, 0)
	rec := NewRecord(KindPipe, NewPipeInput(in, pipe.DefaultOptions()), NewPipeOutput(res, true))

	if rec.ID == uuid.Nil {
		t.Error("record has no ID")
	}

	var buf bytes.Buffer
	if err := Encode(&buf, FormatJSON, rec); err != nil {
		t.Fatalf("Encode(json) error = %v", err)
	}

	var decoded struct {
		ID     string `json:"id"`
		Kind   string `json:"kind"`
		Input  map[string]any
		Output struct {
			Q         Number    `json:"q"`
			Converged bool      `json:"converged"`
			Re        Number    `json:"re"`
			Table     []PipeRow `json:"table"`
		} `json:"output"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if decoded.ID != rec.ID.String() || decoded.Kind != string(KindPipe) {
		t.Errorf("id/kind = %q/%q", decoded.ID, decoded.Kind)
	}
	if !math.IsInf(float64(decoded.Output.Re), 1) {
		t.Errorf("re = %v, want +Inf", decoded.Output.Re)
	}
	if float64(decoded.Output.Q) != res.Q {
		t.Errorf("q = %v, want %v", decoded.Output.Q, res.Q)
	}
	if len(decoded.Output.Table) != res.Iterations() {
		t.Errorf("table has %d rows, want %d", len(decoded.Output.Table), res.Iterations())
	}
	if decoded.Input["length"] != 100.0 || decoded.Input["tol_hf"] != 1e-6 {
		t.Errorf("input = %v", decoded.Input)
	}
	if !strings.Contains(buf.String(), `"regimen": "Turbulento"`) {
		t.Error("regime label missing from the table")
	}
}

func TestEncode_YAML(t *testing.T) {
	res, err := friction.Compute(friction.ColebrookWhite, 1e6, 1e-3)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	out, err := NewFrictionOutput(res)
	if err != nil {
		t.Fatalf("NewFrictionOutput() error = %v", err)
	}
	rec := NewRecord(KindFriction, NewFrictionInput(res, exact.DefaultConfig()), out)

	var buf bytes.Buffer
	if err := Encode(&buf, FormatYAML, rec); err != nil {
		t.Fatalf("Encode(yaml) error = %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	output, ok := decoded["output"].(map[string]any)
	if !ok {
		t.Fatalf("output = %T", decoded["output"])
	}
	if output["factor"] != "0.019943465840477" {
		t.Errorf("factor = %v", output["factor"])
	}
	if output["status"] != string(friction.StatusConverged) {
		t.Errorf("status = %v", output["status"])
	}
}

func TestEncode_TableIsNotARecordFormat(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, FormatTable, Record{}); err == nil {
		t.Error("expected error")
	}
}

func TestFrictionTable(t *testing.T) {
	res, err := friction.Compute(friction.SwameeJain, 1e6, 1e-1)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	var buf bytes.Buffer
	if err := FrictionTable(&buf, res, exact.DefaultConfig()); err != nil {
		t.Fatalf("FrictionTable() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Swamee", "FRICTION FACTOR f = ", "WARNINGS", "closed form", "half-even"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCompareTable(t *testing.T) {
	var rows []Comparison
	for _, eq := range friction.Equations() {
		res, err := friction.Compute(eq, 1e5, 0)
		rows = append(rows, Comparison{Equation: eq, Result: res, Err: err})
	}

	var buf bytes.Buffer
	if err := CompareTable(&buf, 1e5, 0, rows); err != nil {
		t.Fatalf("CompareTable() error = %v", err)
	}
	out := buf.String()

	// von Kármán is undefined for a smooth pipe
	if !strings.Contains(out, "von Kármán") || !strings.Contains(out, "  -  ") {
		t.Errorf("failed equation not reported:\n%s", out)
	}
	if !strings.Contains(out, "0.017989773084274") {
		t.Errorf("Colebrook-White value missing:\n%s", out)
	}

	exported, err := NewComparisonOutput(rows)
	if err != nil {
		t.Fatalf("NewComparisonOutput() error = %v", err)
	}
	last := exported[len(exported)-1]
	if last.Equation != friction.VonKarman || last.Error == "" || last.Factor != "" {
		t.Errorf("von Kármán row = %+v", last)
	}
}

func TestPipeSummary(t *testing.T) {
	in, res := solvedPipe(t, 1e-6)

	var buf bytes.Buffer
	PipeSummary(&buf, in, res)
	IterationTable(&buf, res)
	out := buf.String()

	for _, want := range []string{"DISCHARGE Q = 0.357311", "Converged after", "Turbulent", "ITERATIONS", "Turbulento"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "Turbulento"); n != res.Iterations() {
		t.Errorf("%d table rows, want %d", n, res.Iterations())
	}
}

func TestPipeSummary_NotConverged(t *testing.T) {
	in, _ := solvedPipe(t, 1e-6)
	opts := pipe.DefaultOptions()
	opts.MaxIter = 2
	res := pipe.Solve(in, opts)

	var buf bytes.Buffer
	PipeSummary(&buf, in, res)
	if !strings.Contains(buf.String(), "Did not converge within 2 iterations") {
		t.Errorf("missing non-convergence notice:\n%s", buf.String())
	}
}
