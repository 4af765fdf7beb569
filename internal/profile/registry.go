package profile

import (
	"sort"
)

// presets is the immutable table of built-in research profiles, assembled
// once at process start. Lookup returns deep copies so callers can never
// mutate the table.
var presets = map[string]Profile{
	"battery": {
		Name: "battery",
		Categories: []Category{
			{Name: "Battery Materials", Keywords: []string{"battery", "lithium", "cathode", "anode", "electrolyte", "energy storage", "solid-state"}},
			{Name: "Characterization", Keywords: []string{"XRD", "XPS", "TEM", "SEM", "spectroscopy", "in-situ", "operando"}},
			{Name: "Manufacturing", Keywords: []string{"coating", "roll-to-roll", "scale-up", "production", "synthesis"}},
		},
		Weights: map[string]float64{
			"Battery Materials": 2.0,
			"Characterization":  1.2,
			"Manufacturing":     1.0,
		},
	},
	"ml": {
		Name: "ml",
		Categories: []Category{
			{Name: "AI Methods", Keywords: []string{"machine learning", "deep learning", "neural network", "AI", "artificial intelligence", "computer vision", "natural language processing"}},
			{Name: "Data Science", Keywords: []string{"data mining", "feature engineering", "big data", "high-throughput", "database", "informatics", "prediction"}},
			{Name: "Applications", Keywords: []string{"materials discovery", "property prediction", "microstructure analysis", "generative design", "optimization"}},
		},
		Weights: map[string]float64{
			"AI Methods":   1.5,
			"Data Science": 1.3,
			"Applications": 2.0,
		},
	},
	"am": {
		Name: "am",
		Categories: []Category{
			{Name: "AM Processes", Keywords: []string{"additive manufacturing", "AM", "3D printing", "powder bed fusion", "LPBF", "directed energy deposition", "DED", "wire arc", "binder jetting"}},
			{Name: "Materials", Keywords: []string{"titanium", "aluminum", "superalloy", "stainless steel", "inconel", "powder", "feedstock", "porosity"}},
			{Name: "Characterization", Keywords: []string{"microstructure", "mechanical properties", "defect", "residual stress", "texture", "grain", "phase"}},
		},
		Weights: map[string]float64{
			"AM Processes":     2.0,
			"Materials":        1.5,
			"Characterization": 1.2,
		},
	},
	"quantum": {
		Name: "quantum",
		Categories: []Category{
			{Name: "Quantum Methods", Keywords: []string{"quantum", "DFT", "density functional theory", "ab initio", "first principles", "molecular dynamics", "monte carlo"}},
			{Name: "Materials", Keywords: []string{"electronic structure", "band structure", "phonon", "defect", "surface", "interface", "phase stability"}},
			{Name: "Applications", Keywords: []string{"catalysis", "energy materials", "magnetic materials", "superconductors", "topological materials"}},
		},
		Weights: map[string]float64{
			"Quantum Methods": 2.0,
			"Materials":       1.5,
			"Applications":    1.7,
		},
	},
	"corrosion": {
		Name: "corrosion",
		Categories: []Category{
			{Name: "Corrosion", Keywords: []string{"corrosion", "oxidation", "passivation", "galvanic", "pitting", "rust", "degradation"}},
			{Name: "Environments", Keywords: []string{"aqueous", "marine", "high temperature", "molten salt", "acid", "alkaline"}},
			{Name: "Materials", Keywords: []string{"steel", "stainless", "aluminum", "magnesium", "titanium", "coating", "inhibitor"}},
		},
		Weights: map[string]float64{
			"Corrosion":    2.0,
			"Environments": 1.3,
			"Materials":    1.5,
		},
	},
}

// Preset returns the named built-in profile. The returned value is a copy;
// mutating it does not affect the registry.
func Preset(name string) (Profile, error) {
	p, ok := presets[name]
	if !ok {
		return Profile{}, ErrUnknownProfile
	}
	return p.clone(), nil
}

// PresetNames returns the sorted names of all built-in profiles.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p Profile) clone() Profile {
	out := Profile{Name: p.Name}
	out.Categories = make([]Category, len(p.Categories))
	for i, c := range p.Categories {
		out.Categories[i] = Category{Name: c.Name, Keywords: append([]string(nil), c.Keywords...)}
	}
	if p.Weights != nil {
		out.Weights = make(map[string]float64, len(p.Weights))
		for k, v := range p.Weights {
			out.Weights[k] = v
		}
	}
	return out
}
