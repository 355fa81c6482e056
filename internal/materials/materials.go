// Package materials holds reference data for pipe materials and water.
package materials

import (
	"fmt"
	"strings"
)

// Material is a pipe material with its equivalent sand-grain roughness
type Material struct {
	ID          string
	Description string
	Roughness   float64 // ks (m)
	Range       string  // spread of published values
}

// PipeMaterials are the new-pipe roughness values of the Moody chart
var PipeMaterials = []Material{
	{
		ID:          "drawn-tubing",
		Description: "Drawn tubing (glass, brass, copper)",
		Roughness:   1.5e-6,
		Range:       "0.0015 mm",
	},
	{
		ID:          "pvc",
		Description: "PVC and plastic",
		Roughness:   1.5e-6,
		Range:       "0.0015 - 0.007 mm",
	},
	{
		ID:          "commercial-steel",
		Description: "Commercial steel",
		Roughness:   4.5e-5,
		Range:       "0.045 mm",
	},
	{
		ID:          "wrought-iron",
		Description: "Wrought iron",
		Roughness:   4.5e-5,
		Range:       "0.045 mm",
	},
	{
		ID:          "asphalted-cast-iron",
		Description: "Asphalted cast iron",
		Roughness:   1.2e-4,
		Range:       "0.12 mm",
	},
	{
		ID:          "galvanized-iron",
		Description: "Galvanized iron",
		Roughness:   1.5e-4,
		Range:       "0.15 mm",
	},
	{
		ID:          "cast-iron",
		Description: "Cast iron",
		Roughness:   2.6e-4,
		Range:       "0.26 mm",
	},
	{
		ID:          "wood-stave",
		Description: "Wood stave",
		Roughness:   5e-4,
		Range:       "0.18 - 0.9 mm",
	},
	{
		ID:          "concrete",
		Description: "Concrete",
		Roughness:   1.2e-3,
		Range:       "0.3 - 3 mm",
	},
	{
		ID:          "riveted-steel",
		Description: "Riveted steel",
		Roughness:   3e-3,
		Range:       "0.9 - 9 mm",
	},
}

// Lookup finds a pipe material by ID, ignoring case and accepting
// underscores or spaces for dashes
func Lookup(id string) (Material, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	for _, m := range PipeMaterials {
		if m.ID == key {
			return m, nil
		}
	}

	ids := make([]string, len(PipeMaterials))
	for i, m := range PipeMaterials {
		ids[i] = m.ID
	}
	return Material{}, fmt.Errorf("unknown pipe material %q (known: %s)", id, strings.Join(ids, ", "))
}
