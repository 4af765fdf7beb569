package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
)

// document mirrors the on-disk profile format: a required "interests" map
// of category name to keyword list plus an optional "weights" map. The
// legacy "user_interests" key is still accepted.
type document struct {
	Interests       map[string][]string `json:"interests"`
	LegacyInterests map[string][]string `json:"user_interests"`
	Weights         map[string]float64  `json:"weights"`
}

// Load reads a profile document from a JSON file. The profile name is the
// file's base name without extension. Category order follows the document;
// goccy decodes maps with randomized iteration, so categories are sorted
// by name to keep scoring output reproducible across loads.
func Load(path string) (Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(name, raw)
}

// Parse decodes and validates a profile document.
func Parse(name string, raw []byte) (Profile, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	interests := doc.Interests
	if interests == nil {
		interests = doc.LegacyInterests
	}
	if len(interests) == 0 {
		return Profile{}, ErrMissingInterests
	}

	p := Profile{Name: name, Weights: doc.Weights}
	p.Categories = make([]Category, 0, len(interests))
	for _, cat := range sortedKeys(interests) {
		p.Categories = append(p.Categories, Category{Name: cat, Keywords: interests[cat]})
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
