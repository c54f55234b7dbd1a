package version

import (
	"regexp"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Module", Module},
		{"Stringx", Stringx},
		{"Catalog", Catalog},
		{"Config", Config},
		{"CLI", CLI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		component string
		expected  string
	}{
		{"stringx", Stringx},
		{"catalog", Catalog},
		{"config", Config},
		{"cli", CLI},
		{"unknown", Module},
		{"", Module},
	}

	for _, tt := range tests {
		t.Run(tt.component, func(t *testing.T) {
			if got := ComponentVersion(tt.component); got != tt.expected {
				t.Errorf("ComponentVersion(%q) = %q, want %q", tt.component, got, tt.expected)
			}
		})
	}
}

func TestComponentsKnown(t *testing.T) {
	for _, c := range Components {
		if c != "cli" && ComponentVersion(c) == "" {
			t.Errorf("component %q has no version", c)
		}
	}
}
