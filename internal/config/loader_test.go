package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/confplan/internal/config"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars(t)

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.MinScore, convey.ShouldEqual, 5)
				convey.So(cfg.HighPriorityThreshold, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When environment variables override defaults", func() {
			t.Setenv("CONFPLAN_ADDR", ":7070")
			t.Setenv("CONFPLAN_MIN_SCORE", "2.5")
			t.Setenv("CONFPLAN_DEFAULT_PROFILE", "quantum")

			cfg, err := config.Load(ctx)

			convey.Convey("Then the environment values win", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.MinScore, convey.ShouldEqual, 2.5)
				convey.So(cfg.DefaultProfile, convey.ShouldEqual, "quantum")
			})
		})

		convey.Convey("When a YAML file is provided", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			yaml := "addr: \":6060\"\nmin_score: 3\ndata_file: \"fixtures/sessions.json\"\n"
			convey.So(os.WriteFile(path, []byte(yaml), 0o600), convey.ShouldBeNil)
			t.Setenv("CONFPLAN_CONFIG", path)

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
				convey.So(cfg.MinScore, convey.ShouldEqual, 3)
				convey.So(cfg.DataFile, convey.ShouldEqual, "fixtures/sessions.json")
			})

			convey.Convey("And environment variables override the file", func() {
				t.Setenv("CONFPLAN_ADDR", ":5050")

				cfg, err := config.Load(ctx)

				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":5050")
				convey.So(cfg.MinScore, convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When the config file is missing", func() {
			t.Setenv("CONFPLAN_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When a threshold is negative", func() {
			t.Setenv("CONFPLAN_MIN_SCORE", "-1")

			_, err := config.Load(ctx)

			convey.Convey("Then validation rejects it", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

// clearConfigEnvVars unsets every CONFPLAN_ variable the loader reads so
// one test's environment cannot leak into another.
func clearConfigEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFPLAN_CONFIG",
		"CONFPLAN_ADDR",
		"CONFPLAN_LOG_LEVEL",
		"CONFPLAN_DATA_FILE",
		"CONFPLAN_DEFAULT_PROFILE",
		"CONFPLAN_MIN_SCORE",
		"CONFPLAN_HIGH_PRIORITY_THRESHOLD",
		"CONFPLAN_WORKER_COUNT",
		"CONFPLAN_QUEUE_SIZE",
		"CONFPLAN_MAX_RESULTS",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
