package settings_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/trexfeathers/WOPI/internal/domain"
	"github.com/trexfeathers/WOPI/internal/infra/settings"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestSettings_Defaults(t *testing.T) {
	convey.Convey("Given no settings file and no env vars", t, func() {
		cfg, err := settings.LoadFrom("")

		convey.Convey("Then defaults are returned", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg, convey.ShouldResemble, domain.DefaultSettings())
		})
	})
}

func TestSettings_File(t *testing.T) {
	path := writeSettings(t, `
log_dir: /tmp/radar-logs
default_width: 8
default_height: 6
dpi: 150
palette: ["red", "#00ff00"]
`)

	convey.Convey("Given a YAML settings file", t, func() {
		cfg, err := settings.LoadFrom(path)

		convey.Convey("Then file values override defaults", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Log.Dir, convey.ShouldEqual, "/tmp/radar-logs")
			convey.So(cfg.Log.File, convey.ShouldEqual, "radar_errors.log")
			convey.So(cfg.Chart.Size, convey.ShouldResemble, domain.ChartSize{Width: 8, Height: 6})
			convey.So(cfg.Chart.DPI, convey.ShouldEqual, 150)
			convey.So(cfg.Chart.Palette, convey.ShouldResemble, []string{"red", "#00ff00"})
		})
	})
}

func TestSettings_EnvOverridesFile(t *testing.T) {
	path := writeSettings(t, "log_file: from-file.log\ndpi: 150\n")
	t.Setenv("RADAR_LOG_FILE", "from-env.log")
	t.Setenv("RADAR_DPI", "200")

	convey.Convey("Given a settings file and RADAR_ env vars", t, func() {
		cfg, err := settings.LoadFrom(path)

		convey.Convey("Then env vars win", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Log.File, convey.ShouldEqual, "from-env.log")
			convey.So(cfg.Chart.DPI, convey.ShouldEqual, 200)
		})
	})
}

func TestSettings_LoadUsesEnvPath(t *testing.T) {
	path := writeSettings(t, "default_width: 9\n")
	t.Setenv(settings.EnvSettings, path)

	convey.Convey("Given RADAR_SETTINGS points at a file", t, func() {
		cfg, err := settings.Load()

		convey.Convey("Then it is loaded", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Chart.Size.Width, convey.ShouldEqual, 9)
		})
	})
}

func TestSettings_Errors(t *testing.T) {
	convey.Convey("Given invalid settings sources", t, func() {
		convey.Convey("When the file does not exist", func() {
			_, err := settings.LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
			convey.So(errors.Is(err, settings.ErrLoadSettings), convey.ShouldBeTrue)
		})

		convey.Convey("When a value is out of range", func() {
			path := writeSettings(t, "default_width: -3\n")
			_, err := settings.LoadFrom(path)
			convey.So(errors.Is(err, settings.ErrInvalidSettings), convey.ShouldBeTrue)
		})
	})
}
