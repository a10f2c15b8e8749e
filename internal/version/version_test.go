// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildInfo_Fill(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}

	bi := BuildInfo{Version: "dev", Commit: "none", Date: "unknown", GoVersion: "go1.24"}
	bi.fill(info)

	assert.Equal(t, "v1.2.3", bi.Version)
	assert.Equal(t, "0123456", bi.Commit)
	assert.Equal(t, "2026-01-02T03:04:05Z", bi.Date)
	assert.Equal(t, "cd2js version v1.2.3 (commit: 0123456, built: 2026-01-02T03:04:05Z, go: go1.24)", bi.String())
}

func TestBuildInfo_FillKeepsLinkerValues(t *testing.T) {
	info := &debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "fedcba9876"}},
	}

	bi := BuildInfo{Version: "0.3.0", Commit: "abc1234", Date: "unknown"}
	bi.fill(info)

	assert.Equal(t, "0.3.0", bi.Version)
	assert.Equal(t, "abc1234", bi.Commit)
	assert.Equal(t, "unknown", bi.Date)
}

func TestShort(t *testing.T) {
	assert.Equal(t, Get().Version, Short())
	assert.Contains(t, Info(), "cd2js version ")
}
