package rank_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/confplan/internal/domain/model"
	"github.com/okian/confplan/internal/domain/rank"
	"github.com/okian/confplan/internal/profile"
)

func scoredAt(id string, day time.Time, start string, score float64) model.ScoredSession {
	return model.ScoredSession{
		Session: model.Session{ID: id, Date: day, Start: start, End: "23:59"},
		Score:   score,
	}
}

func TestFilterSort(t *testing.T) {
	day1 := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	Convey("Given scored sessions across two days", t, func() {
		scored := []model.ScoredSession{
			scoredAt("d2-early", day2, "08:00", 9),
			scoredAt("d1-late", day1, "16:00", 3),
			scoredAt("d1-early", day1, "09:00", 7),
			scoredAt("below", day1, "10:00", 1.5),
		}

		Convey("When filtering at threshold 3", func() {
			out := rank.FilterSort(scored, 3)

			Convey("Then the threshold is inclusive and order is (date, start)", func() {
				So(out, ShouldHaveLength, 3)
				So(out[0].Session.ID, ShouldEqual, "d1-early")
				So(out[1].Session.ID, ShouldEqual, "d1-late")
				So(out[2].Session.ID, ShouldEqual, "d2-early")
			})
		})

		Convey("When a session sits exactly on the threshold", func() {
			out := rank.FilterSort(scored, 1.5)

			Convey("Then it is kept", func() {
				So(out, ShouldHaveLength, 4)
			})
		})

		Convey("When raising the threshold", func() {
			loose := rank.FilterSort(scored, 2)
			strict := rank.FilterSort(scored, 8)

			Convey("Then the strict result is a subset of the loose one", func() {
				So(len(strict), ShouldBeLessThanOrEqualTo, len(loose))
				for _, s := range strict {
					found := false
					for _, l := range loose {
						if l.Session.ID == s.Session.ID {
							found = true
						}
					}
					So(found, ShouldBeTrue)
				}
			})
		})
	})

	Convey("Given same-day sessions with equal start times", t, func() {
		scored := []model.ScoredSession{
			scoredAt("low", day1, "09:00", 4),
			scoredAt("high", day1, "09:00", 8),
		}

		out := rank.FilterSort(scored, 0)

		Convey("Then the higher score comes first", func() {
			So(out[0].Session.ID, ShouldEqual, "high")
			So(out[1].Session.ID, ShouldEqual, "low")
		})
	})

	Convey("Given sessions with fully identical date, start, and score", t, func() {
		scored := []model.ScoredSession{
			scoredAt("first-in", day1, "09:00", 5),
			scoredAt("second-in", day1, "09:00", 5),
			scoredAt("third-in", day1, "09:00", 5),
		}

		out := rank.FilterSort(scored, 0)

		Convey("Then the sort is stable: input order is preserved", func() {
			So(out, ShouldHaveLength, 3)
			So(out[0].Session.ID, ShouldEqual, "first-in")
			So(out[1].Session.ID, ShouldEqual, "second-in")
			So(out[2].Session.ID, ShouldEqual, "third-in")
		})
	})

	Convey("Given single-digit and double-digit start hours", t, func() {
		scored := []model.ScoredSession{
			scoredAt("ten", day1, "10:00", 5),
			scoredAt("nine", day1, "9:00", 5),
		}

		out := rank.FilterSort(scored, 0)

		Convey("Then ordering is numeric, not lexicographic", func() {
			So(out[0].Session.ID, ShouldEqual, "nine")
		})
	})

	Convey("Given an empty input", t, func() {
		So(rank.FilterSort(nil, 5), ShouldBeEmpty)
	})
}

func TestRank(t *testing.T) {
	Convey("Given raw sessions and the battery preset", t, func() {
		prof, err := profile.Preset("battery")
		So(err, ShouldBeNil)

		day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		sessions := []model.Session{
			{ID: "hit", Date: day, Start: "09:00", End: "10:00", Title: "Lithium cathode design"},
			{ID: "miss", Date: day, Start: "11:00", End: "12:00", Title: "Welcome coffee"},
		}

		out := rank.Rank(sessions, prof, 4)

		Convey("Then only sessions at or above the threshold survive", func() {
			So(out, ShouldHaveLength, 1)
			So(out[0].Session.ID, ShouldEqual, "hit")
			So(out[0].Score, ShouldEqual, 4.0)
		})
	})
}

func TestHighPriority(t *testing.T) {
	Convey("Given scored sessions", t, func() {
		day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		scored := []model.ScoredSession{
			scoredAt("a", day, "09:00", 5),
			scoredAt("b", day, "10:00", 2),
			scoredAt("c", day, "11:00", 4),
		}

		out := rank.HighPriority(scored, rank.DefaultHighPriorityThreshold)

		Convey("Then only sessions at or above the cutoff remain, order preserved", func() {
			So(out, ShouldHaveLength, 2)
			So(out[0].Session.ID, ShouldEqual, "a")
			So(out[1].Session.ID, ShouldEqual, "c")
		})
	})
}

func TestGroupByDay(t *testing.T) {
	day1 := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	Convey("Given ranked sessions spanning days", t, func() {
		ranked := []model.ScoredSession{
			scoredAt("b1", day2, "09:00", 5),
			scoredAt("a1", day1, "09:00", 5),
			scoredAt("a2", day1, "10:00", 5),
		}

		groups := rank.GroupByDay(ranked)

		Convey("Then groups come out in ascending date order", func() {
			So(groups, ShouldHaveLength, 2)
			So(groups[0][0].Session.ID, ShouldEqual, "a1")
			So(groups[0], ShouldHaveLength, 2)
			So(groups[1][0].Session.ID, ShouldEqual, "b1")
		})
	})
}
