package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gohyd/internal/materials"
	"github.com/spf13/cobra"
)

var (
	materialsSelect      string
	materialsTemperature float64
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List pipe roughness values and water viscosity",
	Long: `List the absolute roughness of common pipe materials and the
kinematic viscosity of water.

The material IDs are accepted by --material on the friction and
pipe design commands, and --temperature there looks up the viscosity
of water.

Examples:
  gohyd materials
  gohyd materials -m cast-iron -t 15`,
	Args: cobra.NoArgs,
	RunE: runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)

	materialsCmd.Flags().StringVarP(&materialsSelect, "material", "m", "", "Highlight one material")
	materialsCmd.Flags().Float64VarP(&materialsTemperature, "temperature", "t", 20, "Water temperature (°C)")
}

func runMaterials(cmd *cobra.Command, args []string) error {
	var selected materials.Material
	if materialsSelect != "" {
		m, err := materials.Lookup(materialsSelect)
		if err != nil {
			return err
		}
		selected = m
	}
	nu, err := materials.WaterViscosity(materialsTemperature)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          PIPE MATERIALS AND WATER PROPERTIES")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "ABSOLUTE ROUGHNESS (new pipe):")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID\tMaterial\tks (mm)\tRange\n")
	fmt.Fprintf(w, "  ──\t────────\t───────\t─────\n")
	for _, m := range materials.PipeMaterials {
		marker := ""
		if m.ID == selected.ID {
			marker = " ← SELECTED"
		}
		fmt.Fprintf(w, "  %s\t%s\t%g\t%s%s\n", m.ID, m.Description, m.Roughness*1000, m.Range, marker)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "WATER:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	fmt.Fprintf(out, "  Kinematic viscosity at %g °C: ν = %.4g m²/s\n", materialsTemperature, nu)
	fmt.Fprintln(out)
	return nil
}
