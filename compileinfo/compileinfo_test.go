package compileinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFromBuildInfo(t *testing.T) {
	info := &debug.BuildInfo{
		GoVersion: "go1.18",
		Path:      "github.com/carbocation/gnpthreshold/cmd/gnpthreshold",
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2022-06-01T00:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "GOOS", Value: "linux"},
		},
	}

	c := fromBuildInfo(info)
	if c.Commit != "abc123" || c.CommitTime != "2022-06-01T00:00:00Z" || !c.Modified || c.GoVersion != "go1.18" {
		t.Errorf("Mismatch: %+v", c)
	}

	if s := c.String(); !strings.Contains(s, "abc123") || !strings.Contains(s, "modified") {
		t.Error(s)
	}
}

func TestEmptyString(t *testing.T) {
	if s := (CompileInfo{}).String(); !strings.Contains(s, "not available") {
		t.Error(s)
	}
}
