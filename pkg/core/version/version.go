// ============================================================================
// istring - String Utilities
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package version

// Version constants for istring components
const (
	// Module version
	Module = "0.1.0"

	// Component versions
	Stringx = "0.1.0"
	Catalog = "0.1.0"
	Config  = "0.1.0"
	CLI     = "0.1.0"
)

// Components lists the component names in display order
var Components = []string{"stringx", "catalog", "config", "cli"}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "stringx":
		return Stringx
	case "catalog":
		return Catalog
	case "config":
		return Config
	case "cli":
		return CLI
	default:
		return Module
	}
}
