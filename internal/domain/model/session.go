// Package model contains domain models passed between layers.
package model

import (
	"strings"
	"time"
)

// Session is a single scheduled conference talk or event. Records are
// immutable snapshots handed over by the dataset loader; the planner never
// mutates them.
type Session struct {
	ID string // opaque identifier; row position when the source has no natural key

	Date  time.Time // calendar date; only the date component is meaningful
	Start string    // clock value on Date, e.g. "14:00"
	End   string    // clock value on Date; corrected downstream when it precedes Start

	Title              string
	Description        string
	Track              string
	Symposium          string
	SessionName        string
	Type               string
	Location           string // room
	Speaker            string
	SpeakerAffiliation string
	AllAuthors         string
}

// MatchText returns the keyword-match surface for the session: every
// textual field concatenated with single spaces in a fixed order (Title,
// Description, Track, Symposium, SessionName, Type, Location, Speaker,
// SpeakerAffiliation, AllAuthors). Empty fields contribute nothing. Clock
// and date values are excluded so the surface stays reproducible.
func (s Session) MatchText() string {
	fields := []string{
		s.Title,
		s.Description,
		s.Track,
		s.Symposium,
		s.SessionName,
		s.Type,
		s.Location,
		s.Speaker,
		s.SpeakerAffiliation,
		s.AllAuthors,
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}

// Day returns the session's date truncated to midnight UTC, used as the
// grouping key for per-day operations.
func (s Session) Day() time.Time {
	y, m, d := s.Date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CategoryMatch records which keywords of one interest category occur in a
// session. Keywords keep the category's declaration order.
type CategoryMatch struct {
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

// ScoredSession wraps a Session with its relevance score and the matched
// categories. Only categories with at least one matched keyword appear.
// Derived per scoring run, never persisted.
type ScoredSession struct {
	Session Session         `json:"session"`
	Score   float64         `json:"score"`
	Matches []CategoryMatch `json:"matches,omitempty"`
}

// MatchedCategories returns the names of the matched categories in order.
func (s ScoredSession) MatchedCategories() []string {
	names := make([]string, 0, len(s.Matches))
	for _, m := range s.Matches {
		names = append(names, m.Category)
	}
	return names
}

// Recommendation resolves which side of a conflict to prefer.
type Recommendation string

// Recommendation values. Either means the scores tie and the planner
// refuses to silently pick one.
const (
	PreferFirst  Recommendation = "first"
	PreferSecond Recommendation = "second"
	Either       Recommendation = "either"
)

// Conflict is an unordered pair of same-day high-priority sessions whose
// time intervals overlap, plus the score-based recommendation.
type Conflict struct {
	First          ScoredSession  `json:"first"`
	Second         ScoredSession  `json:"second"`
	Recommendation Recommendation `json:"recommendation"`
}
