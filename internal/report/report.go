// Package report builds the consumer-facing summaries of a scoring run:
// the per-symposium attendance report, CSV export, and the text schedule.
package report

import (
	"sort"

	"github.com/okian/confplan/internal/domain/model"
)

// CategoryCount pairs an interest category with how many sessions matched it.
type CategoryCount struct {
	Category string `json:"category"`
	Sessions int    `json:"sessions"`
}

// SymposiumSummary aggregates one symposium's relevant sessions.
type SymposiumSummary struct {
	Symposium     string          `json:"symposium"`
	TotalSessions int             `json:"total_sessions"`
	AvgScore      float64         `json:"avg_score"`
	MaxScore      float64         `json:"max_score"`
	SessionsByDay map[string]int  `json:"sessions_by_day"`
	Rooms         []string        `json:"rooms"`
	Matches       []CategoryCount `json:"matches,omitempty"`
}

// Symposiums groups already-filtered scored sessions by symposium and
// summarizes each: session count, average and best score, per-day counts,
// rooms, and how many sessions matched each interest category. Symposiums
// come out sorted by average score descending, name ascending on ties.
func Symposiums(scored []model.ScoredSession) []SymposiumSummary {
	bySym := make(map[string][]model.ScoredSession)
	var order []string
	for _, s := range scored {
		sym := s.Session.Symposium
		if _, ok := bySym[sym]; !ok {
			order = append(order, sym)
		}
		bySym[sym] = append(bySym[sym], s)
	}

	out := make([]SymposiumSummary, 0, len(order))
	for _, sym := range order {
		group := bySym[sym]
		sum := SymposiumSummary{
			Symposium:     sym,
			TotalSessions: len(group),
			SessionsByDay: make(map[string]int),
		}
		roomSeen := make(map[string]struct{})
		catSeen := make(map[string]int)
		var catOrder []string
		var total float64
		for _, s := range group {
			total += s.Score
			if s.Score > sum.MaxScore {
				sum.MaxScore = s.Score
			}
			sum.SessionsByDay[s.Session.Day().Format("2006-01-02")]++
			if room := s.Session.Location; room != "" {
				if _, ok := roomSeen[room]; !ok {
					roomSeen[room] = struct{}{}
					sum.Rooms = append(sum.Rooms, room)
				}
			}
			for _, m := range s.Matches {
				if _, ok := catSeen[m.Category]; !ok {
					catOrder = append(catOrder, m.Category)
				}
				catSeen[m.Category]++
			}
		}
		sum.AvgScore = total / float64(len(group))
		sort.Strings(sum.Rooms)
		for _, cat := range catOrder {
			sum.Matches = append(sum.Matches, CategoryCount{Category: cat, Sessions: catSeen[cat]})
		}
		out = append(out, sum)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AvgScore != out[j].AvgScore {
			return out[i].AvgScore > out[j].AvgScore
		}
		return out[i].Symposium < out[j].Symposium
	})
	return out
}
