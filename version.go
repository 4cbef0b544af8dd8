// Package logi carries build metadata shared by the logi commands.
package logi

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version reports the release recorded in the VERSION file.
func Version() string { return strings.TrimSpace(version) }
