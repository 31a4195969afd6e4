package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestCurrentFallsBackToBuildSettings(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/matzehuels/tagcloud", Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}
	info := current(bi)
	if info.Version != "v0.3.1" || info.Commit != "abc123" || info.Date != "2026-01-02T03:04:05Z" {
		t.Errorf("current() = %+v", info)
	}
	if info.GoVersion == "" {
		t.Error("GoVersion not set")
	}
}

func TestCurrentPrefersStampedValues(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)
	Version, Commit = "v1.0.0", "deadbeef"

	bi := &debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	}
	info := current(bi)
	if info.Version != "v1.0.0" || info.Commit != "deadbeef" {
		t.Errorf("current() = %+v", info)
	}

	if got := current(nil); got.Version != "v1.0.0" {
		t.Errorf("current(nil) = %+v", got)
	}
}

func TestTemplate(t *testing.T) {
	if tmpl := Template(); !strings.HasPrefix(tmpl, "{{.Name}} version ") || !strings.Contains(tmpl, "commit: ") {
		t.Errorf("Template() = %q", tmpl)
	}
	if s := (Info{Version: "v1", Commit: "c", Date: "d"}).String(); s != "version: v1\ncommit: c\nbuilt: d" {
		t.Errorf("String() = %q", s)
	}
}
