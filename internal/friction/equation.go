package friction

import (
	"fmt"
	"strings"
)

// Equation selects a Darcy friction-factor correlation
type Equation string

const (
	ColebrookWhite Equation = "colebrook-white" // implicit, solved by fixed-point iteration
	Haaland        Equation = "haaland"
	SwameeJain     Equation = "swamee-jain"
	Churchill      Equation = "churchill" // valid across laminar, transition and turbulent flow
	Serghides      Equation = "serghides"
	Blasius        Equation = "blasius"    // smooth pipe, Re only
	VonKarman      Equation = "von-karman" // fully rough asymptote, ε/D only
)

var equations = []Equation{
	ColebrookWhite,
	Haaland,
	SwameeJain,
	Churchill,
	Serghides,
	Blasius,
	VonKarman,
}

var titles = map[Equation]string{
	ColebrookWhite: "Colebrook-White",
	Haaland:        "Haaland",
	SwameeJain:     "Swamee-Jain",
	Churchill:      "Churchill",
	Serghides:      "Serghides",
	Blasius:        "Blasius",
	VonKarman:      "von Kármán",
}

// Equations returns every supported correlation
func Equations() []Equation {
	out := make([]Equation, len(equations))
	copy(out, equations)
	return out
}

// ParseEquation resolves an equation name such as "colebrook-white".
// Matching ignores case, and underscores or spaces may replace the hyphen.
func ParseEquation(s string) (Equation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("_", "-", " ", "-").Replace(name)
	for _, eq := range equations {
		if string(eq) == name {
			return eq, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownEquation, s, joinEquations())
}

// Title is the display name of the correlation
func (e Equation) Title() string {
	if t, ok := titles[e]; ok {
		return t
	}
	return string(e)
}

// NeedsReynolds reports whether the correlation depends on Re
func (e Equation) NeedsReynolds() bool {
	return e != VonKarman
}

// NeedsRoughness reports whether the correlation depends on ε/D
func (e Equation) NeedsRoughness() bool {
	return e != Blasius
}

// Iterative reports whether the correlation is solved by iteration
func (e Equation) Iterative() bool {
	return e == ColebrookWhite
}

func (e Equation) valid() bool {
	_, ok := titles[e]
	return ok
}

func joinEquations() string {
	names := make([]string, len(equations))
	for i, eq := range equations {
		names[i] = string(eq)
	}
	return strings.Join(names, ", ")
}
