package version

import (
	"strings"
	"testing"
)

func TestGetVersionInfo_Defaults(t *testing.T) {
	info := GetVersionInfo()
	if info == nil {
		t.Fatal("expected non-nil info")
	}
	if info.Version != Version {
		t.Errorf("expected version %q, got %q", Version, info.Version)
	}
	if info.Version == "dev" && info.IsRelease {
		t.Error("dev builds should not be releases")
	}
}

func TestGetShortVersion_StartsWithVersion(t *testing.T) {
	short := GetShortVersion()
	if !strings.HasPrefix(short, Version) {
		t.Errorf("expected short version to start with %q, got %q", Version, short)
	}
}
