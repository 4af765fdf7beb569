package pool_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/confplan/internal/adapters/pool"
	"github.com/okian/confplan/internal/domain/model"
	"github.com/okian/confplan/internal/domain/scoring"
	"github.com/okian/confplan/internal/profile"
)

func batterySessions(n int) []model.Session {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	out := make([]model.Session, n)
	for i := range out {
		title := "Poster session"
		if i%3 == 0 {
			title = "Lithium cathode scale-up"
		}
		out[i] = model.Session{
			ID:    strconv.Itoa(i),
			Date:  day,
			Start: "09:00",
			End:   "10:00",
			Title: title,
		}
	}
	return out
}

func TestPool_Map(t *testing.T) {
	Convey("Given a scoring pool and the battery preset", t, func() {
		prof, err := profile.Preset("battery")
		So(err, ShouldBeNil)

		Convey("When mapping a batch with several workers", func() {
			p := pool.New(pool.WithWorkers(4), pool.WithQueueSize(8))
			sessions := batterySessions(200)

			parallel := p.Map(context.Background(), sessions, prof)
			sequential := scoring.New().ScoreAll(sessions, prof)

			Convey("Then results equal the sequential scoring in input order", func() {
				So(parallel, ShouldHaveLength, len(sequential))
				for i := range parallel {
					So(parallel[i].Session.ID, ShouldEqual, sequential[i].Session.ID)
					So(parallel[i].Score, ShouldEqual, sequential[i].Score)
				}
			})
		})

		Convey("When the context is already cancelled", func() {
			p := pool.New(pool.WithWorkers(2), pool.WithQueueSize(1))
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			sessions := batterySessions(50)
			out := p.Map(ctx, sessions, prof)

			Convey("Then every slot still carries its session", func() {
				So(out, ShouldHaveLength, 50)
				for i := range out {
					So(out[i].Session.ID, ShouldEqual, strconv.Itoa(i))
				}
			})
		})

		Convey("When a custom scorer is injected", func() {
			p := pool.New(
				pool.WithWorkers(2),
				pool.WithScorer(scoring.New(scoring.WithDefaultWeight(5))),
			)
			unweighted := profile.Profile{
				Name:       "plain",
				Categories: []profile.Category{{Name: "Alloys", Keywords: []string{"steel"}}},
			}

			out := p.Map(context.Background(), []model.Session{{ID: "0", Title: "steel"}}, unweighted)

			Convey("Then its configuration drives the scores", func() {
				So(out[0].Score, ShouldEqual, 5.0)
			})
		})

		Convey("When the input is empty", func() {
			p := pool.New()
			So(p.Map(context.Background(), nil, prof), ShouldBeEmpty)
		})
	})
}
