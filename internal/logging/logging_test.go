package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetup(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger, err := Setup(Options{Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if slog.Default() != logger {
		t.Error("Setup() did not install the default logger")
	}

	slog.Info("pipe.solved", "iterations", 12)
	if buf.Len() != 0 {
		t.Errorf("info record written at warn level: %q", buf.String())
	}

	slog.Warn("pipe.solved", "converged", false)
	out := buf.String()
	if !strings.Contains(out, "pipe.solved") || !strings.Contains(out, "converged=false") {
		t.Errorf("unexpected output %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("color codes written to a non-terminal: %q", out)
	}
}

func TestSetup_BadLevel(t *testing.T) {
	if _, err := Setup(Options{Level: "loud"}); err == nil {
		t.Error("expected error")
	}
}
