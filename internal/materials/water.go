package materials

import (
	"fmt"
	"sort"
)

// WaterPoint is the kinematic viscosity of water at one temperature
type WaterPoint struct {
	Temperature float64 // °C
	Viscosity   float64 // ν (m²/s)
}

// WaterTable lists the kinematic viscosity of water at atmospheric pressure
var WaterTable = []WaterPoint{
	{0, 1.787e-6},
	{5, 1.519e-6},
	{10, 1.307e-6},
	{15, 1.139e-6},
	{20, 1.004e-6},
	{25, 0.893e-6},
	{30, 0.801e-6},
	{40, 0.658e-6},
	{50, 0.553e-6},
	{60, 0.474e-6},
	{70, 0.413e-6},
	{80, 0.365e-6},
	{90, 0.326e-6},
	{100, 0.294e-6},
}

// WaterViscosity interpolates WaterTable linearly. Temperatures outside
// 0-100 °C are rejected.
func WaterViscosity(tempC float64) (float64, error) {
	first, last := WaterTable[0], WaterTable[len(WaterTable)-1]
	if !(tempC >= first.Temperature && tempC <= last.Temperature) {
		return 0, fmt.Errorf("water temperature %v °C outside %v to %v °C", tempC, first.Temperature, last.Temperature)
	}

	i := sort.Search(len(WaterTable), func(i int) bool {
		return WaterTable[i].Temperature >= tempC
	})
	hi := WaterTable[i]
	if hi.Temperature == tempC {
		return hi.Viscosity, nil
	}
	lo := WaterTable[i-1]
	t := (tempC - lo.Temperature) / (hi.Temperature - lo.Temperature)
	return lo.Viscosity + t*(hi.Viscosity-lo.Viscosity), nil
}
