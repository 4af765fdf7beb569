package repository_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/confplan/internal/adapters/repository"
	"github.com/okian/confplan/internal/domain/model"
)

func TestMemStore(t *testing.T) {
	day1 := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	sessions := []model.Session{
		{ID: "0", Date: day2, Title: "later day first in load order"},
		{ID: "1", Date: day1, Title: "morning"},
		{ID: "2", Date: day1, Title: "afternoon"},
	}

	Convey("Given a store seeded with sessions", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore(repository.WithSessions(sessions))

		Convey("Then All preserves load order", func() {
			all := store.All(ctx)
			So(all, ShouldHaveLength, 3)
			So(all[0].ID, ShouldEqual, "0")
		})

		Convey("Then Dates come back ascending regardless of load order", func() {
			dates := store.Dates(ctx)
			So(dates, ShouldHaveLength, 2)
			So(dates[0].Equal(day1), ShouldBeTrue)
			So(dates[1].Equal(day2), ShouldBeTrue)
		})

		Convey("Then ByDate returns that day's sessions in load order", func() {
			got, err := store.ByDate(ctx, day1)
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 2)
			So(got[0].ID, ShouldEqual, "1")
		})

		Convey("Then ByDate on an empty day reports ErrNoSessions", func() {
			_, err := store.ByDate(ctx, day1.AddDate(0, 0, 30))
			So(err, ShouldEqual, repository.ErrNoSessions)
		})

		Convey("Then Count matches the dataset size", func() {
			So(store.Count(ctx), ShouldEqual, 3)
		})

		Convey("When replacing the dataset", func() {
			store.Replace(ctx, sessions[:1])

			Convey("Then the old index is gone", func() {
				So(store.Count(ctx), ShouldEqual, 1)
				_, err := store.ByDate(ctx, day1)
				So(err, ShouldEqual, repository.ErrNoSessions)
			})
		})

		Convey("When mutating a returned slice", func() {
			all := store.All(ctx)
			all[0].Title = "clobbered"

			Convey("Then the store is unaffected", func() {
				So(store.All(ctx)[0].Title, ShouldEqual, "later day first in load order")
			})
		})
	})

	Convey("Given an empty store", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore()

		So(store.Count(ctx), ShouldEqual, 0)
		So(store.All(ctx), ShouldBeEmpty)
		So(store.Dates(ctx), ShouldBeEmpty)
	})
}
