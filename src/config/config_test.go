package config

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestFindLocation(t *testing.T) {
	config := NewDefaultConfig()

	loc, err := config.FindLocation("tokyo")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if loc.Name != "tokyo" {
		t.Fatalf("location name should be tokyo, not %s", loc.Name)
	}
	if loc.UploadRate <= 0 || loc.DownloadRate <= 0 {
		t.Fatalf("rates should be positive: %+v", loc)
	}
}

func TestValidateLocations(t *testing.T) {
	config := NewDefaultConfig()

	if err := config.ValidateLocations([]string{"ohio", "ireland"}); err != nil {
		t.Fatalf("err: %v", err)
	}

	err := config.ValidateLocations([]string{"ohio", "atlantis"})
	if err == nil {
		t.Fatalf("ValidateLocations should generate an error")
	}
	if !IsUnknownLocation(err) {
		t.Fatalf("expected UnknownLocationError, got %v", err)
	}
	if !strings.Contains(err.Error(), "atlantis") {
		t.Fatalf("error should name the invalid location: %v", err)
	}
	if !strings.Contains(err.Error(), "tokyo") {
		t.Fatalf("error should list the allowed locations: %v", err)
	}
}

func TestSetLogger(t *testing.T) {
	config := NewDefaultConfig()

	base := logrus.New()
	config.SetLogger(base)

	if config.Logger().Logger != base {
		t.Fatalf("Logger() should build on the injected logger")
	}
}

func TestSetDataDir(t *testing.T) {
	config := NewDefaultConfig()

	config.SetDataDir("/tmp/blocksim_test")

	if config.DataDir != "/tmp/blocksim_test" {
		t.Fatalf("datadir: %s", config.DataDir)
	}
	if config.DatabaseDir != "/tmp/blocksim_test/badger_db" {
		t.Fatalf("database dir should follow datadir: %s", config.DatabaseDir)
	}
}
