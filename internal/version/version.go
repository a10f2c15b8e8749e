// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package version provides build-time version information.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time with -ldflags "-X github.com/dacolabs/cd2js/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
}

// Get returns the build information, filling values not set through ldflags
// from the module build info ("go install module@version").
func Get() BuildInfo {
	bi := BuildInfo{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		bi.fill(info)
	}
	return bi
}

func (b *BuildInfo) fill(info *debug.BuildInfo) {
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "none" && len(s.Value) >= 7 {
				b.Commit = s.Value[:7]
			}
		case "vcs.time":
			if b.Date == "unknown" {
				b.Date = s.Value
			}
		}
	}
}

// String formats the build information on one line.
func (b BuildInfo) String() string {
	return fmt.Sprintf("cd2js version %s (commit: %s, built: %s, go: %s)",
		b.Version, b.Commit, b.Date, b.GoVersion)
}

// Info returns formatted version information.
func Info() string {
	return Get().String()
}

// Short returns just the version string.
func Short() string {
	return Get().Version
}
