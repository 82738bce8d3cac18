package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFillFrom(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "dev", "none", "unknown"
	fillFrom(&debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})

	if Version != "v0.3.1" || Commit != "abc123" || Date != "2026-01-02T03:04:05Z" {
		t.Errorf("got %s/%s/%s", Version, Commit, Date)
	}
}

func TestFillFromKeepsLdflags(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "v9.9.9", "deadbeef", "yesterday"
	fillFrom(&debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	})

	if Version != "v9.9.9" || Commit != "deadbeef" || Date != "yesterday" {
		t.Errorf("ldflags values overwritten: %s/%s/%s", Version, Commit, Date)
	}
}

func TestTemplate(t *testing.T) {
	if !strings.Contains(Template(), "{{.Name}} version "+Version) {
		t.Errorf("Template() = %q", Template())
	}
	if !strings.HasPrefix(String(), "version: ") {
		t.Errorf("String() = %q", String())
	}
}
