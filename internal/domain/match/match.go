// Package match implements case-insensitive substring keyword matching
// over a session's text surface.
package match

import "strings"

// Keywords returns every keyword that occurs as a case-insensitive
// substring of text, in the order the keywords were given. Each keyword is
// reported at most once regardless of how many times it occurs.
//
// Matching is deliberately substring-based with no token boundaries:
// "AM" matches inside "team". That is a known false-positive source, kept
// because token-aware matching would change observable scores.
func Keywords(text string, keywords []string) []string {
	if text == "" || len(keywords) == 0 {
		return nil
	}
	lower := strings.ToLower(text)
	var hits []string
	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		k := strings.ToLower(kw)
		if _, dup := seen[k]; dup {
			continue
		}
		if strings.Contains(lower, k) {
			hits = append(hits, kw)
			seen[k] = struct{}{}
		}
	}
	return hits
}

// Any reports whether at least one keyword occurs in text.
func Any(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
