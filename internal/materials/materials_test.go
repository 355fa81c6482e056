package materials

import (
	"math"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"commercial-steel", 4.5e-5, false},
		{"Cast_Iron", 2.6e-4, false},
		{" galvanized iron ", 1.5e-4, false},
		{"pvc", 1.5e-6, false},
		{"unobtainium", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := Lookup(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Lookup(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if m.Roughness != tt.want {
				t.Errorf("Lookup(%q).Roughness = %v, want %v", tt.input, m.Roughness, tt.want)
			}
		})
	}
}

func TestPipeMaterials(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range PipeMaterials {
		if seen[m.ID] {
			t.Errorf("duplicate material %q", m.ID)
		}
		seen[m.ID] = true
		if !(m.Roughness > 0) || m.Description == "" {
			t.Errorf("incomplete material %+v", m)
		}
	}
}

func TestWaterViscosity(t *testing.T) {
	tests := []struct {
		name    string
		temp    float64
		want    float64
		wantErr bool
	}{
		{"table point", 20, 1.004e-6, false},
		{"freezing", 0, 1.787e-6, false},
		{"boiling", 100, 0.294e-6, false},
		{"midpoint", 12.5, (1.307e-6 + 1.139e-6) / 2, false},
		{"wide step", 35, (0.801e-6 + 0.658e-6) / 2, false},
		{"too cold", -1, 0, true},
		{"too hot", 101, 0, true},
		{"nan", math.NaN(), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WaterViscosity(tt.temp)
			if (err != nil) != tt.wantErr {
				t.Fatalf("WaterViscosity(%v) error = %v, wantErr %v", tt.temp, err, tt.wantErr)
			}
			if math.Abs(got-tt.want) > 1e-15 {
				t.Errorf("WaterViscosity(%v) = %v, want %v", tt.temp, got, tt.want)
			}
		})
	}
}

func TestWaterViscosity_Decreasing(t *testing.T) {
	prev := math.Inf(1)
	for temp := 0.0; temp <= 100; temp += 2.5 {
		nu, err := WaterViscosity(temp)
		if err != nil {
			t.Fatalf("WaterViscosity(%v) error = %v", temp, err)
		}
		if nu >= prev {
			t.Errorf("viscosity rises at %v °C", temp)
		}
		prev = nu
	}
}
