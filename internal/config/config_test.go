package config_test

import (
	"runtime"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/confplan/internal/config"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.DataFile, convey.ShouldEqual, "data/sessions.csv")
			convey.So(cfg.DefaultProfile, convey.ShouldEqual, "battery")
			convey.So(cfg.MinScore, convey.ShouldEqual, 5)
			convey.So(cfg.HighPriorityThreshold, convey.ShouldEqual, 4)
			convey.So(cfg.WorkerCount, convey.ShouldEqual, runtime.NumCPU())
			convey.So(cfg.QueueSize, convey.ShouldEqual, 1024)
			convey.So(cfg.MaxResults, convey.ShouldEqual, 500)
		})
	})
}
