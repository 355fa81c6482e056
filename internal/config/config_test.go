package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gohyd/internal/exact"
	"github.com/alexiusacademia/gohyd/internal/friction"
	"github.com/alexiusacademia/gohyd/internal/pipe"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "gohyd.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// isolate keeps the developer's own settings file out of the test
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(EnvVar, "")
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	chdir(t, dir)
	return dir
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.General.Format != "table" {
		t.Errorf("General.Format = %v, want table", cfg.General.Format)
	}
	if cfg.Friction.Equation != string(friction.ColebrookWhite) {
		t.Errorf("Friction.Equation = %v, want %v", cfg.Friction.Equation, friction.ColebrookWhite)
	}
	if cfg.Friction.Precision != exact.DefaultPrecision {
		t.Errorf("Friction.Precision = %v, want %v", cfg.Friction.Precision, exact.DefaultPrecision)
	}
	if cfg.Friction.Rounding != string(exact.RoundHalfEven) {
		t.Errorf("Friction.Rounding = %v, want %v", cfg.Friction.Rounding, exact.RoundHalfEven)
	}
	if cfg.Pipe.Gravity != 9.81 {
		t.Errorf("Pipe.Gravity = %v, want 9.81", cfg.Pipe.Gravity)
	}
	if cfg.Pipe.Viscosity != 1e-6 {
		t.Errorf("Pipe.Viscosity = %v, want 1e-6", cfg.Pipe.Viscosity)
	}
	if got, want := cfg.PipeOptions(), pipe.DefaultOptions(); got != want {
		t.Errorf("PipeOptions() = %+v, want %+v", got, want)
	}
}

func TestConfig_applyDefaultsKeepsValues(t *testing.T) {
	cfg := &Config{
		Friction: FrictionConfig{Equation: "haaland", Precision: 30},
		Pipe: PipeConfig{
			MaxIter:    50,
			Relaxation: pipe.Relaxation{Min: 0.2},
		},
	}
	cfg.applyDefaults()

	if cfg.Friction.Equation != "haaland" || cfg.Friction.Precision != 30 {
		t.Errorf("friction section overwritten: %+v", cfg.Friction)
	}
	if cfg.Pipe.MaxIter != 50 {
		t.Errorf("Pipe.MaxIter = %d, want 50", cfg.Pipe.MaxIter)
	}
	if cfg.Pipe.Relaxation.Min != 0.2 || cfg.Pipe.Relaxation.Max != 1.0 {
		t.Errorf("Relaxation = %+v, want min 0.2 and default max", cfg.Pipe.Relaxation)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[general]
log_level = "debug"
format = "json"

[friction]
equation = "Swamee_Jain"
precision = 40
rounding = "half-up"

[pipe]
viscosity = 1.31e-6
max_iter = 120

[pipe.relaxation]
min = 0.25
patience = 3
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
	if cfg.General.LogLevel != "debug" || cfg.General.Format != "json" {
		t.Errorf("General = %+v", cfg.General)
	}

	eq, err := cfg.Equation()
	if err != nil || eq != friction.SwameeJain {
		t.Errorf("Equation() = %v, %v; want %v", eq, err, friction.SwameeJain)
	}

	ec, err := cfg.Exact()
	if err != nil {
		t.Fatalf("Exact() error = %v", err)
	}
	if ec.Precision != 40 || ec.Rounding != exact.RoundHalfUp {
		t.Errorf("Exact() = %+v, want precision 40 half-up", ec)
	}

	opts := cfg.PipeOptions()
	if opts.MaxIter != 120 || opts.Relaxation.Min != 0.25 || opts.Relaxation.Patience != 3 {
		t.Errorf("PipeOptions() = %+v", opts)
	}
	if opts.TolHf != 1e-6 || opts.Relaxation.Shrink != 0.5 {
		t.Errorf("PipeOptions() lost defaults: %+v", opts)
	}
	if cfg.Pipe.Viscosity != 1.31e-6 || cfg.Pipe.Gravity != 9.81 {
		t.Errorf("Pipe = %+v", cfg.Pipe)
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[general]\nlog_level = \"info\"\n")
	t.Setenv("GOHYD_TEST_DIR", dir)

	cfg, err := Load("$GOHYD_TEST_DIR/gohyd.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.LogLevel != "info" {
		t.Errorf("General.LogLevel = %v, want info", cfg.General.LogLevel)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"syntax", "[friction\nequation = 1", "failed to parse"},
		{"unknown key", "[pipe]\nroughness = 0.1\n", "pipe.roughness"},
		{"unknown equation", "[friction]\nequation = \"darcy\"\n", "friction.equation"},
		{"bad rounding", "[friction]\nrounding = \"sideways\"\n", "rounding"},
		{"precision too high", "[friction]\nprecision = 5000\n", "precision"},
		{"negative viscosity", "[pipe]\nviscosity = -1.0\n", "pipe.viscosity"},
		{"bad relaxation", "[pipe.relaxation]\nmin = 0.9\nmax = 0.5\n", "relaxation"},
		{"bad format", "[general]\nformat = \"xml\"\n", "general.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Load() error = %v, want not found", err)
	}
}

func TestResolve(t *testing.T) {
	t.Run("defaults when nothing exists", func(t *testing.T) {
		isolate(t)
		cfg, err := Resolve("")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if cfg.Path != "" {
			t.Errorf("Path = %q, want empty", cfg.Path)
		}
		if cfg.Friction.Precision != exact.DefaultPrecision {
			t.Errorf("Friction.Precision = %d", cfg.Friction.Precision)
		}
	})

	t.Run("working directory file", func(t *testing.T) {
		dir := isolate(t)
		writeConfig(t, dir, "[friction]\nequation = \"churchill\"\n")
		cfg, err := Resolve("")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if cfg.Friction.Equation != "churchill" {
			t.Errorf("Friction.Equation = %q, want churchill", cfg.Friction.Equation)
		}
	})

	t.Run("environment wins over working directory", func(t *testing.T) {
		dir := isolate(t)
		writeConfig(t, dir, "[friction]\nequation = \"churchill\"\n")
		other := writeConfig(t, t.TempDir(), "[friction]\nequation = \"serghides\"\n")
		t.Setenv(EnvVar, other)

		cfg, err := Resolve("")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if cfg.Path != other {
			t.Errorf("Path = %q, want %q", cfg.Path, other)
		}
	})

	t.Run("explicit path wins", func(t *testing.T) {
		isolate(t)
		t.Setenv(EnvVar, filepath.Join(t.TempDir(), "missing.toml"))
		explicit := writeConfig(t, t.TempDir(), "[friction]\nequation = \"blasius\"\n")

		cfg, err := Resolve(explicit)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if cfg.Friction.Equation != "blasius" {
			t.Errorf("Friction.Equation = %q, want blasius", cfg.Friction.Equation)
		}
	})

	t.Run("missing explicit path fails", func(t *testing.T) {
		isolate(t)
		if _, err := Resolve(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
			t.Error("expected error")
		}
	})
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24)
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
