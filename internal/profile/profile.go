// Package profile defines interest profiles: ordered keyword categories
// with optional per-category weights, plus the preset registry and the
// JSON document loader.
package profile

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultWeight applies to categories without an explicit weight entry.
const DefaultWeight = 1.0

// Category is one named bucket of interest keywords. Keywords are matched
// case-insensitively as substrings; their order is preserved in match output.
type Category struct {
	Name     string   `json:"name" validate:"required"`
	Keywords []string `json:"keywords" validate:"required,min=1,dive,required"`
}

// Profile is a complete set of interest categories plus optional weights.
// Categories keep declaration order so scoring output is reproducible.
type Profile struct {
	Name       string             `json:"name"`
	Categories []Category         `json:"categories" validate:"required,min=1,dive"`
	Weights    map[string]float64 `json:"weights,omitempty" validate:"omitempty,dive,gt=0"`
}

// Weight returns the weight for a category, defaulting to 1.0. Weight
// entries for unknown categories are ignored, not an error.
func (p Profile) Weight(category string) float64 {
	if w, ok := p.Weights[category]; ok {
		return w
	}
	return DefaultWeight
}

// Keywords returns the keyword list for a named category, nil if absent.
func (p Profile) Keywords(category string) []string {
	for _, c := range p.Categories {
		if c.Name == category {
			return c.Keywords
		}
	}
	return nil
}

var validate = validator.New()

// Validate checks the structural invariants: at least one category, every
// category named with a non-empty keyword list, weights strictly positive.
func (p Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	names := make(map[string]struct{}, len(p.Categories))
	for _, c := range p.Categories {
		if _, dup := names[c.Name]; dup {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidProfile, c.Name)
		}
		names[c.Name] = struct{}{}
	}
	return nil
}
