// Package calendar builds the rooms-by-time grid model that the visual
// renderers consume: one grid per day, entries keyed by room with
// normalized clock spans. Styling, colors, and tooltips are out of scope.
package calendar

import (
	"sort"

	"github.com/okian/confplan/internal/domain/clock"
	"github.com/okian/confplan/internal/domain/model"
)

// Display bounds in fractional hours, matching the conference day.
const (
	DayStart = 7.0  // 07:00
	DayEnd   = 19.0 // 19:00
)

// Entry is one session placed on the grid.
type Entry struct {
	SessionID  string   `json:"session_id"`
	Title      string   `json:"title"`
	Start      float64  `json:"start"`
	End        float64  `json:"end"`
	StartLabel string   `json:"start_label"`
	EndLabel   string   `json:"end_label"`
	Score      float64  `json:"score"`
	Categories []string `json:"categories,omitempty"`
	Repaired   bool     `json:"repaired,omitempty"` // interval was corrected or substituted
}

// Room is one column of the grid.
type Room struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Day is one day's grid, rooms sorted by name.
type Day struct {
	Date  string `json:"date"` // 2006-01-02
	Rooms []Room `json:"rooms"`
}

// Build lays ranked sessions out as per-day room grids. Input order within
// a room is preserved; rooms and days sort ascending for stable output.
func Build(scored []model.ScoredSession) []Day {
	byDay := make(map[string]map[string][]Entry)
	for _, s := range scored {
		iv := clock.Normalize(s.Session.Start, s.Session.End)
		date := s.Session.Day().Format("2006-01-02")
		room := s.Session.Location
		if byDay[date] == nil {
			byDay[date] = make(map[string][]Entry)
		}
		byDay[date][room] = append(byDay[date][room], Entry{
			SessionID:  s.Session.ID,
			Title:      s.Session.Title,
			Start:      iv.Start,
			End:        iv.End,
			StartLabel: clock.Format(iv.Start),
			EndLabel:   clock.Format(iv.End),
			Score:      s.Score,
			Categories: s.MatchedCategories(),
			Repaired:   iv.Corrected || iv.Malformed || iv.InvalidDuration,
		})
	}

	days := make([]Day, 0, len(byDay))
	for date, rooms := range byDay {
		d := Day{Date: date}
		names := make([]string, 0, len(rooms))
		for name := range rooms {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			d.Rooms = append(d.Rooms, Room{Name: name, Entries: rooms[name]})
		}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}
