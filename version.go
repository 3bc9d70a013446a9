package htmlpp

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the release of the htmlpp module.
var Version = strings.TrimSpace(version)
