// Package conflict detects time overlaps among high-priority sessions on
// a single day and recommends which side of each overlap to attend.
package conflict

import (
	"github.com/okian/confplan/internal/domain/clock"
	"github.com/okian/confplan/internal/domain/model"
)

// Find reports every overlapping pair among the given sessions. The caller
// must group sessions by calendar date first; the scan is within one day.
//
// Each unordered pair is checked once, i before j in input order, and
// conflicts come out in that discovery order. The overlap test is
// boundary-inclusive: a session ending exactly when another starts counts
// as a conflict. That boundary rule is inherited behavior and is preserved
// exactly rather than tightened to a half-open interval.
func Find(daySessions []model.ScoredSession) []model.Conflict {
	if len(daySessions) < 2 {
		return nil
	}

	intervals := make([]clock.Interval, len(daySessions))
	for i, s := range daySessions {
		intervals[i] = clock.Normalize(s.Session.Start, s.Session.End)
	}

	var conflicts []model.Conflict
	for i := 0; i < len(daySessions); i++ {
		for j := i + 1; j < len(daySessions); j++ {
			if !overlaps(intervals[i], intervals[j]) {
				continue
			}
			conflicts = append(conflicts, model.Conflict{
				First:          daySessions[i],
				Second:         daySessions[j],
				Recommendation: recommend(daySessions[i], daySessions[j]),
			})
		}
	}
	return conflicts
}

func overlaps(a, b clock.Interval) bool {
	return a.Start <= b.End && a.End >= b.Start
}

// recommend prefers the strictly higher score; on a tie the answer is
// Either, never a silent pick.
func recommend(a, b model.ScoredSession) model.Recommendation {
	switch {
	case a.Score > b.Score:
		return model.PreferFirst
	case b.Score > a.Score:
		return model.PreferSecond
	default:
		return model.Either
	}
}
