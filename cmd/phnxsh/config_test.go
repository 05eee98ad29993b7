package main

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadConfig(t *testing.T) {
	Convey("with no file and no environment the defaults apply", t, func() {
		os.Unsetenv("PHNX_CAN_INTERFACE")
		os.Unsetenv("PHNX_DRY_RUN")

		cfg, err := loadConfig("")
		So(err, ShouldBeNil)
		So(cfg.Interface, ShouldEqual, "can0")
		So(cfg.DryRun, ShouldBeFalse)
	})

	Convey("a YAML file overrides the defaults", t, func() {
		os.Unsetenv("PHNX_CAN_INTERFACE")
		os.Unsetenv("PHNX_DRY_RUN")

		path := filepath.Join(t.TempDir(), "phnxsh.yaml")
		err := os.WriteFile(path, []byte("interface: vcan1\ndry_run: true\n"), 0644)
		So(err, ShouldBeNil)

		cfg, err := loadConfig(path)
		So(err, ShouldBeNil)
		So(cfg.Interface, ShouldEqual, "vcan1")
		So(cfg.DryRun, ShouldBeTrue)
	})

	Convey("environment variables win over the file", t, func() {
		path := filepath.Join(t.TempDir(), "phnxsh.yaml")
		err := os.WriteFile(path, []byte("interface: vcan1\n"), 0644)
		So(err, ShouldBeNil)

		os.Setenv("PHNX_CAN_INTERFACE", "can2")
		defer os.Unsetenv("PHNX_CAN_INTERFACE")

		cfg, err := loadConfig(path)
		So(err, ShouldBeNil)
		So(cfg.Interface, ShouldEqual, "can2")
	})

	Convey("a missing config file errors", t, func() {
		_, err := loadConfig("/nonexistent/phnxsh.yaml")
		So(err, ShouldNotBeNil)
	})
}
