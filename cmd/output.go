package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gohyd/internal/exact"
	"github.com/alexiusacademia/gohyd/internal/friction"
	"github.com/alexiusacademia/gohyd/internal/materials"
	"github.com/alexiusacademia/gohyd/internal/report"
	"github.com/spf13/cobra"
)

// outputFormat resolves --format against the settings file
func outputFormat(flag string) (report.Format, error) {
	if flag == "" {
		flag = appConfig.General.Format
	}
	return report.ParseFormat(flag)
}

// writeRecord prints a JSON or YAML record of one calculation
func writeRecord(cmd *cobra.Command, format report.Format, kind report.Kind, input, output any) error {
	return report.Encode(cmd.OutOrStdout(), format, report.NewRecord(kind, input, output))
}

// decimalConfig applies --precision and --rounding over the settings file
func decimalConfig(cmd *cobra.Command, precision uint32, rounding string) (exact.Config, error) {
	cfg, err := appConfig.Exact()
	if err != nil {
		return exact.Config{}, err
	}
	if cmd.Flags().Changed("precision") {
		cfg.Precision = precision
	}
	if cmd.Flags().Changed("rounding") {
		r, err := exact.ParseRounding(rounding)
		if err != nil {
			return exact.Config{}, err
		}
		cfg.Rounding = r
	}
	if err := cfg.Validate(); err != nil {
		return exact.Config{}, err
	}
	return cfg, nil
}

// equationFlag resolves --equation against the settings file
func equationFlag(name string) (friction.Equation, error) {
	if name == "" {
		return appConfig.Equation()
	}
	return friction.ParseEquation(name)
}

// roughnessInput fills the relative roughness of in from --rr, or from
// --ks (or --material) and --diameter when any of those is given.
func roughnessInput(cmd *cobra.Command, in *friction.Input, rr, ks, diameter float64, material string) error {
	flags := cmd.Flags()
	absolute := flags.Changed("ks") || flags.Changed("diameter") || material != ""
	if absolute && flags.Changed("rr") {
		return fmt.Errorf("give either --rr or --ks/--material with --diameter, not both")
	}
	if !absolute {
		in.RelativeRoughness = rr
		return nil
	}

	if material != "" {
		if flags.Changed("ks") {
			return fmt.Errorf("give either --ks or --material, not both")
		}
		m, err := materials.Lookup(material)
		if err != nil {
			return err
		}
		ks = m.Roughness
	}
	if !flags.Changed("diameter") {
		return fmt.Errorf("absolute roughness needs --diameter")
	}
	if !(diameter > 0) {
		return fmt.Errorf("--diameter must be positive, got %v", diameter)
	}
	in.Roughness = ks
	in.Diameter = diameter
	return nil
}
