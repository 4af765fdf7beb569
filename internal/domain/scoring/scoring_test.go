package scoring_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/confplan/internal/domain/model"
	"github.com/okian/confplan/internal/domain/scoring"
	"github.com/okian/confplan/internal/profile"
)

func TestScorer_Score(t *testing.T) {
	Convey("Given a scorer and the battery preset", t, func() {
		scorer := scoring.New()
		prof, err := profile.Preset("battery")
		So(err, ShouldBeNil)

		Convey("When a session matches two keywords of one weighted category", func() {
			session := model.Session{
				ID:    "1",
				Date:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
				Title: "Lithium cathode interfaces",
			}

			result := scorer.Score(session, prof)

			Convey("Then the score is weight times distinct match count", func() {
				// Battery Materials carries weight 2.0; "lithium" and
				// "cathode" both hit.
				So(result.Score, ShouldEqual, 4.0)
				So(result.Matches, ShouldHaveLength, 1)
				So(result.Matches[0].Category, ShouldEqual, "Battery Materials")
				So(result.Matches[0].Keywords, ShouldResemble, []string{"lithium", "cathode"})
			})
		})

		Convey("When a keyword repeats in the session text", func() {
			session := model.Session{
				Title:       "Battery day",
				Description: "battery battery battery",
			}

			result := scorer.Score(session, prof)

			Convey("Then it counts once", func() {
				So(result.Score, ShouldEqual, 2.0)
			})
		})

		Convey("When several categories match", func() {
			session := model.Session{
				Title:       "Operando XRD of lithium cathodes",
				Description: "roll-to-roll coating for scale-up",
			}

			result := scorer.Score(session, prof)

			Convey("Then category contributions add up", func() {
				// Battery Materials: lithium, cathode -> 2 x 2.0 = 4.0
				// Characterization: XRD, operando -> 2 x 1.2 = 2.4
				// Manufacturing: coating, roll-to-roll, scale-up -> 3 x 1.0 = 3.0
				So(result.Score, ShouldAlmostEqual, 9.4, 1e-9)
				So(result.MatchedCategories(), ShouldResemble,
					[]string{"Battery Materials", "Characterization", "Manufacturing"})
			})
		})

		Convey("When nothing matches", func() {
			result := scorer.Score(model.Session{Title: "Opening remarks"}, prof)

			Convey("Then score is zero and no categories are listed", func() {
				So(result.Score, ShouldEqual, 0)
				So(result.Matches, ShouldBeEmpty)
			})
		})

		Convey("When a category has no weight entry", func() {
			custom := profile.Profile{
				Name: "custom",
				Categories: []profile.Category{
					{Name: "Alloys", Keywords: []string{"steel"}},
				},
			}

			result := scorer.Score(model.Session{Title: "Stainless steel processing"}, custom)

			Convey("Then the default weight applies", func() {
				So(result.Score, ShouldEqual, profile.DefaultWeight)
			})
		})

		Convey("When scoring the same session twice", func() {
			session := model.Session{Title: "Solid-state electrolyte symposium"}

			first := scorer.Score(session, prof)
			second := scorer.Score(session, prof)

			Convey("Then the results are identical", func() {
				So(second.Score, ShouldEqual, first.Score)
				So(second.Matches, ShouldResemble, first.Matches)
			})
		})
	})

	Convey("Given the same profile with all weights scaled by a constant", t, func() {
		scorer := scoring.New()
		base := profile.Profile{
			Name: "base",
			Categories: []profile.Category{
				{Name: "Batteries", Keywords: []string{"lithium", "cathode"}},
				{Name: "Methods", Keywords: []string{"XRD", "operando"}},
			},
			Weights: map[string]float64{"Batteries": 2.0, "Methods": 1.2},
		}
		const k = 3.0
		scaled := profile.Profile{
			Name:       base.Name,
			Categories: base.Categories,
			Weights:    map[string]float64{"Batteries": 2.0 * k, "Methods": 1.2 * k},
		}

		sessions := []model.Session{
			{ID: "0", Title: "Lithium cathode design"},
			{ID: "1", Title: "Operando XRD study of lithium"},
			{ID: "2", Title: "Plenary address"},
		}

		baseScores := scorer.ScoreAll(sessions, base)
		scaledScores := scorer.ScoreAll(sessions, scaled)

		Convey("Then every score scales by exactly that constant", func() {
			for i := range baseScores {
				So(scaledScores[i].Score, ShouldAlmostEqual, baseScores[i].Score*k, 1e-9)
			}
		})

		Convey("And the relative order of sessions is unchanged", func() {
			for i := range baseScores {
				for j := range baseScores {
					if baseScores[i].Score > baseScores[j].Score {
						So(scaledScores[i].Score, ShouldBeGreaterThan, scaledScores[j].Score)
					}
				}
			}
		})
	})

	Convey("Given a scorer with an overridden default weight", t, func() {
		scorer := scoring.New(scoring.WithDefaultWeight(3.0))
		custom := profile.Profile{
			Name:       "custom",
			Categories: []profile.Category{{Name: "Alloys", Keywords: []string{"steel"}}},
		}

		result := scorer.Score(model.Session{Title: "steel"}, custom)
		So(result.Score, ShouldEqual, 3.0)
	})
}

func TestScorer_ScoreAll(t *testing.T) {
	Convey("Given a batch of sessions", t, func() {
		scorer := scoring.New()
		prof, err := profile.Preset("battery")
		So(err, ShouldBeNil)

		sessions := []model.Session{
			{ID: "1", Title: "Lithium anodes"},
			{ID: "2", Title: "Poster reception"},
			{ID: "3", Title: "Electrolyte additives"},
		}

		scored := scorer.ScoreAll(sessions, prof)

		Convey("Then results keep input order with one entry per session", func() {
			So(scored, ShouldHaveLength, 3)
			So(scored[0].Session.ID, ShouldEqual, "1")
			So(scored[1].Score, ShouldEqual, 0)
			So(scored[2].Session.ID, ShouldEqual, "3")
		})
	})
}
