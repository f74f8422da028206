package threshold

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// ErrNoModel is returned by Lookup for properties without a closed-form
// threshold.
var ErrNoModel = errors.New("no threshold model")

// Func maps a graph size n to the theoretical edge probability at which the
// property appears.
type Func func(n int) float64

// Model describes one graph property: its asymptotic threshold and how it is
// presented in charts.
type Model struct {
	Property string
	Func     Func

	// Title heads the property's own chart; PanelTitle is the shorter form
	// used in the combined figure.
	Title      string
	PanelTitle string

	// Label is the human form of Func, e.g. "p = 1/n".
	Label string

	// Filename is the PNG written for this property's chart.
	Filename string
}

// canonicalOrder is the order in which properties are reported and plotted.
var canonicalOrder = []string{"HasEdge", "HasK3", "IsConnected", "HasK4", "IsHamiltonian"}

// models is read-only after init; callers get copies through Lookup.
var models = map[string]Model{
	"HasEdge": {
		Property:   "HasEdge",
		Func:       func(n int) float64 { x := float64(n); return 2 / (x * (x - 1)) },
		Title:      "Probability of Having at Least One Edge in G(n,p)",
		PanelTitle: "Has at Least One Edge",
		Label:      "p ≈ 2/n²",
		Filename:   "plot_has_edge.png",
	},
	"HasK3": {
		Property:   "HasK3",
		Func:       func(n int) float64 { return 1 / float64(n) },
		Title:      "Probability of Containing a Triangle (K₃) in G(n,p)",
		PanelTitle: "Contains Triangle (K₃)",
		Label:      "p = 1/n",
		Filename:   "plot_has_k3.png",
	},
	"IsConnected": {
		Property:   "IsConnected",
		Func:       logOverN,
		Title:      "Probability of Being Connected in G(n,p)",
		PanelTitle: "Is Connected",
		Label:      "p = ln(n)/n",
		Filename:   "plot_connected.png",
	},
	"HasK4": {
		Property:   "HasK4",
		Func:       func(n int) float64 { return math.Pow(float64(n), -2.0/3.0) },
		Title:      "Probability of Containing K₄ in G(n,p)",
		PanelTitle: "Contains K₄",
		Label:      "p = n^(-2/3)",
		Filename:   "plot_has_k4.png",
	},
	"IsHamiltonian": {
		Property:   "IsHamiltonian",
		Func:       logOverN,
		Title:      "Probability of Having a Hamilton Cycle in G(n,p)",
		PanelTitle: "Has Hamilton Cycle",
		Label:      "p ≈ ln(n)/n",
		Filename:   "plot_hamiltonian.png",
	},
}

func logOverN(n int) float64 {
	x := float64(n)
	return math.Log(x) / x
}

// Properties returns the registered properties in the order they are
// reported and plotted. The slice is a fresh copy on every call.
func Properties() []string {
	out := make([]string, len(canonicalOrder))
	copy(out, canonicalOrder)

	return out
}

// Lookup returns the model registered for property. The error wraps
// ErrNoModel when there is none.
func Lookup(property string) (Model, error) {
	m, exists := models[property]
	if !exists {
		return Model{}, fmt.Errorf("%w for property %q (known: %s)", ErrNoModel, property, ModelNames())
	}

	return m, nil
}

// Theoretical evaluates the registered threshold for property at n. The
// result is invalid when the property has no model or the formula is not a
// finite number at n (e.g. HasEdge at n=1).
func Theoretical(property string, n int) null.Float {
	m, err := Lookup(property)
	if err != nil {
		return null.Float{}
	}

	v := m.Func(n)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return null.Float{}
	}

	return null.FloatFrom(v)
}

// ModelNames lists the registered properties, sorted.
func ModelNames() string {
	names := make([]string, 0, len(models))
	for m := range models {
		names = append(names, m)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}
