// Package scoring computes relevance scores for sessions against an
// interest profile.
package scoring

import (
	"github.com/okian/confplan/internal/domain/match"
	"github.com/okian/confplan/internal/domain/model"
	"github.com/okian/confplan/internal/profile"
)

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithDefaultWeight overrides the weight used for categories that carry no
// explicit weight entry.
func WithDefaultWeight(w float64) Option {
	return func(s *Scorer) {
		if w > 0 {
			s.defaultWeight = w
		}
	}
}

// Scorer scores sessions against interest profiles. Scoring is a pure
// function of its inputs: no randomness, no state across calls, so the
// same (session, profile) pair always yields an identical result.
type Scorer struct {
	defaultWeight float64
}

// New creates a Scorer with configuration options.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		defaultWeight: profile.DefaultWeight,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score computes a session's relevance to the profile. For each category
// in declaration order it matches the category's keywords against the
// session's match text and adds weight x distinct-match-count to the
// total. A keyword counts once no matter how often it occurs. Categories
// with zero matches contribute nothing and are omitted from the match
// list entirely.
func (s *Scorer) Score(session model.Session, p profile.Profile) model.ScoredSession {
	text := session.MatchText()

	out := model.ScoredSession{Session: session}
	for _, cat := range p.Categories {
		hits := match.Keywords(text, cat.Keywords)
		if len(hits) == 0 {
			continue
		}
		out.Matches = append(out.Matches, model.CategoryMatch{
			Category: cat.Name,
			Keywords: hits,
		})
		out.Score += s.weight(p, cat.Name) * float64(len(hits))
	}
	return out
}

// ScoreAll scores every session in input order.
func (s *Scorer) ScoreAll(sessions []model.Session, p profile.Profile) []model.ScoredSession {
	scored := make([]model.ScoredSession, len(sessions))
	for i, sess := range sessions {
		scored[i] = s.Score(sess, p)
	}
	return scored
}

func (s *Scorer) weight(p profile.Profile, category string) float64 {
	if w, ok := p.Weights[category]; ok {
		return w
	}
	return s.defaultWeight
}
