package logger_test

import (
	"context"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/confplan/pkg/logger"
)

func TestLogger(t *testing.T) {
	convey.Convey("Given an initialized global logger", t, func() {
		convey.So(logger.Init(), convey.ShouldBeNil)
		ctx := context.Background()

		convey.Convey("Then logging at every level does not panic", func() {
			l := logger.Get()
			convey.So(func() {
				l.Debug(ctx, "debug", logger.String("k", "v"))
				l.Info(ctx, "info", logger.Int("n", 1))
				l.Warn(ctx, "warn", logger.Float64("f", 1.5))
				l.Error(ctx, "error", logger.Error(nil), logger.Any("x", struct{}{}))
			}, convey.ShouldNotPanic)
		})

		convey.Convey("Then Named returns a scoped logger", func() {
			convey.So(logger.Named("dataset"), convey.ShouldNotBeNil)
		})

		convey.Convey("Then level strings parse case-insensitively", func() {
			convey.So(logger.SetLevelString("DEBUG"), convey.ShouldBeNil)
			convey.So(logger.SetLevelString("warning"), convey.ShouldBeNil)
			convey.So(logger.SetLevelString(""), convey.ShouldBeNil)
			convey.So(logger.SetLevelString("loud"), convey.ShouldNotBeNil)
			convey.So(logger.SetLevelString("info"), convey.ShouldBeNil)
		})
	})
}
