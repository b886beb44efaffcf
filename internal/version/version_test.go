package version

import (
	"strings"
	"testing"
)

func TestVersionDefault(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestColoredKeepsComponents(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	tests := []struct {
		name    string
		version string
	}{
		{"release", "1.2.3"},
		{"dev suffix", "0.1.0-dev"},
		{"not semver", "nightly"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.version
			got := Colored()
			// цветовые коды могут быть отключены окружением, поэтому
			// сравниваем только видимый текст
			stripped := stripANSI(got)
			if stripped != tt.version {
				t.Errorf("Colored() visible text = %q, want %q", stripped, tt.version)
			}
		})
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
