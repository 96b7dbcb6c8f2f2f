// Package version provides build version information embedding.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
	GoVersion = ""
)

// Info represents version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	IsRelease bool   `json:"is_release"`
	IsDirty   bool   `json:"is_dirty"`
}

// GetVersionInfo returns version information, preferring ldflags values and
// falling back to the binary's embedded build info.
func GetVersionInfo() *Info {
	info := &Info{
		Version:   Version,
		GitCommit: GitCommit,
		GoVersion: GoVersion,
		IsRelease: Version != "dev" && !strings.Contains(Version, "dirty"),
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		if GoVersion == "" {
			info.GoVersion = buildInfo.GoVersion
		}
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				if GitCommit == "" {
					info.GitCommit = setting.Value
					if len(info.GitCommit) > 7 {
						info.GitCommit = info.GitCommit[:7]
					}
				}
			case "vcs.modified":
				info.IsDirty = setting.Value == "true"
			}
		}
	}

	return info
}

// GetShortVersion returns a short version string.
func GetShortVersion() string {
	info := GetVersionInfo()
	if info.GitCommit != "" {
		if info.IsDirty {
			return fmt.Sprintf("%s-%s-dirty", info.Version, info.GitCommit)
		}
		return fmt.Sprintf("%s-%s", info.Version, info.GitCommit)
	}
	return info.Version
}
