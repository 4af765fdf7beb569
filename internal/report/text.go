package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/okian/confplan/internal/domain/model"
	"github.com/okian/confplan/internal/profile"
)

const (
	descriptionLimit = 150
	starSlots        = 5
)

// WriteSchedule renders a day-grouped personalized schedule as text: one
// block per session with its time, room, star match indicator, matched
// categories with weights, and a truncated description.
func WriteSchedule(w io.Writer, scored []model.ScoredSession, p profile.Profile) error {
	if len(scored) == 0 {
		_, err := fmt.Fprintln(w, "No sessions match your interests with the specified minimum score.")
		return err
	}

	maxPossible := maxPossibleScore(p)
	var day string
	for _, s := range scored {
		d := s.Session.Day().Format("Monday, January 2, 2006")
		if d != day {
			day = d
			fmt.Fprintf(w, "\n%s\n%s\n", strings.ToUpper(d), strings.Repeat("-", 50))
		}

		fmt.Fprintf(w, "\n%s - %s | Room %s | %s\n",
			s.Session.Start, s.Session.End, s.Session.Location, matchIndicator(s.Score, maxPossible))
		fmt.Fprintf(w, "Title: %s\n", s.Session.Title)

		if len(s.Matches) > 0 {
			fmt.Fprintln(w, "Matched your interests in:")
			for _, m := range s.Matches {
				weight := ""
				if wgt := p.Weight(m.Category); wgt != profile.DefaultWeight {
					weight = fmt.Sprintf(" (weight: %.1fx)", wgt)
				}
				fmt.Fprintf(w, "- %s%s: %s\n", m.Category, weight, strings.Join(m.Keywords, ", "))
			}
		}
		if desc := s.Session.Description; desc != "" {
			// Truncate on rune boundaries; byte slicing could split a
			// multi-byte character.
			if r := []rune(desc); len(r) > descriptionLimit {
				desc = string(r[:descriptionLimit]) + "..."
			}
			fmt.Fprintf(w, "Description: %s\n", desc)
		}
		fmt.Fprintln(w, strings.Repeat("-", 40))
	}
	return nil
}

// WriteConflicts renders detected conflicts with their recommendations.
func WriteConflicts(w io.Writer, conflicts []model.Conflict) error {
	if len(conflicts) == 0 {
		_, err := fmt.Fprintln(w, "No conflicts between high-priority sessions.")
		return err
	}
	for _, c := range conflicts {
		fmt.Fprintln(w, "\nConflict:")
		fmt.Fprintf(w, "1. %s - %s | Room %s | Score: %g\n   %s\n",
			c.First.Session.Start, c.First.Session.End, c.First.Session.Location, c.First.Score, c.First.Session.Title)
		fmt.Fprintf(w, "2. %s - %s | Room %s | Score: %g\n   %s\n",
			c.Second.Session.Start, c.Second.Session.End, c.Second.Session.Location, c.Second.Score, c.Second.Session.Title)
		fmt.Fprintf(w, "Recommendation: %s (based on relevance score)\n", recommendationLabel(c.Recommendation))
	}
	return nil
}

func recommendationLabel(r model.Recommendation) string {
	switch r {
	case model.PreferFirst:
		return "Option 1"
	case model.PreferSecond:
		return "Option 2"
	default:
		return "Either option"
	}
}

// matchIndicator renders the original's star gauge: percentage of the
// maximum possible score, 20% per star.
func matchIndicator(score, maxPossible float64) string {
	pct := 0
	if maxPossible > 0 {
		pct = int(score / maxPossible * 100)
		if pct > 100 {
			pct = 100
		}
	}
	full := pct / (100 / starSlots)
	return fmt.Sprintf("[%s%s] %d%% match",
		strings.Repeat("*", full), strings.Repeat(".", starSlots-full), pct)
}

// maxPossibleScore mirrors the original's estimate: total weight times the
// largest keyword list size.
func maxPossibleScore(p profile.Profile) float64 {
	var totalWeight float64
	maxKeywords := 0
	for _, c := range p.Categories {
		totalWeight += p.Weight(c.Name)
		if len(c.Keywords) > maxKeywords {
			maxKeywords = len(c.Keywords)
		}
	}
	return totalWeight * float64(maxKeywords)
}
