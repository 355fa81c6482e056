// Package report renders calculation results for the terminal and wraps them
// in records for JSON or YAML export.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Format selects how a command prints its result
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat parses an output format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (use table, json or yaml)", s)
}

// Kind identifies the calculation a record holds
type Kind string

const (
	KindFriction        Kind = "friction"
	KindFrictionCompare Kind = "friction-compare"
	KindPipe            Kind = "pipe-design"
)

// Record is one calculation with its inputs and outputs, the unit a history
// store or spreadsheet export consumes.
type Record struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	Kind      Kind      `json:"kind" yaml:"kind"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Input     any       `json:"input" yaml:"input"`
	Output    any       `json:"output" yaml:"output"`
}

// NewRecord stamps a calculation with a fresh ID and the current time
func NewRecord(kind Kind, input, output any) Record {
	return Record{
		ID:        uuid.New(),
		Kind:      kind,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Input:     input,
		Output:    output,
	}
}

// Encode writes rec as indented JSON or YAML
func Encode(w io.Writer, format Format, rec Record) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("format %q is not a record format", format)
}
