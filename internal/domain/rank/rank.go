// Package rank filters scored sessions by threshold and orders them
// deterministically for schedule output.
package rank

import (
	"sort"

	"github.com/okian/confplan/internal/domain/clock"
	"github.com/okian/confplan/internal/domain/model"
	"github.com/okian/confplan/internal/domain/scoring"
	"github.com/okian/confplan/internal/profile"
)

// DefaultHighPriorityThreshold marks sessions worth conflict checking.
// Callers may override it per run.
const DefaultHighPriorityThreshold = 4.0

// Rank scores every session against the profile, keeps those at or above
// minScore, and orders them ascending by (date, start time) with score
// descending as the tie-break. The sort is stable: equal keys keep input
// order. An empty result means no matches, not an error.
func Rank(sessions []model.Session, p profile.Profile, minScore float64) []model.ScoredSession {
	scorer := scoring.New()
	return FilterSort(scorer.ScoreAll(sessions, p), minScore)
}

// FilterSort applies the threshold and deterministic ordering to already
// scored sessions. Splitting this from Rank lets callers parallelize the
// scoring map step; the reduce here fixes the output order regardless.
func FilterSort(scored []model.ScoredSession, minScore float64) []model.ScoredSession {
	kept := HighPriority(scored, minScore)
	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		ad, bd := a.Session.Day(), b.Session.Day()
		if !ad.Equal(bd) {
			return ad.Before(bd)
		}
		// Sort on the numeric clock, not the raw string: "9:00" must come
		// before "10:00".
		as, _ := clock.Parse(a.Session.Start)
		bs, _ := clock.Parse(b.Session.Start)
		if as != bs {
			return as < bs
		}
		return a.Score > b.Score
	})
	return kept
}

// HighPriority keeps sessions at or above the threshold, preserving
// order. The threshold is inclusive at the boundary.
func HighPriority(scored []model.ScoredSession, threshold float64) []model.ScoredSession {
	out := make([]model.ScoredSession, 0, len(scored))
	for _, s := range scored {
		if s.Score >= threshold {
			out = append(out, s)
		}
	}
	return out
}

// GroupByDay splits ranked sessions into per-day groups, preserving the
// ranked order within each day. Days come out in ascending date order.
func GroupByDay(scored []model.ScoredSession) [][]model.ScoredSession {
	var days [][]model.ScoredSession
	index := make(map[int64]int)
	for _, s := range scored {
		key := s.Session.Day().Unix()
		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			days = append(days, nil)
		}
		days[i] = append(days[i], s)
	}
	sort.SliceStable(days, func(i, j int) bool {
		return days[i][0].Session.Day().Before(days[j][0].Session.Day())
	})
	return days
}
