// Package version exposes the build version embedded at compile time.
package version

import (
	"strings"

	_ "embed"
)

//go:embed VERSION
var raw string

// Get returns the current version of the application
func Get() string {
	return strings.TrimSpace(raw)
}
