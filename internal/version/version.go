package version

import "github.com/fatih/color"

// Version information for the owl CLI.
// These variables can be overridden at build time via -ldflags.

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colored returns the version string with each semver component styled.
// Строка без трёх числовых компонентов возвращается как есть.
func Colored() string {
	major, rest, ok := cutDigits(Version)
	if !ok || rest == "" || rest[0] != '.' {
		return Version
	}
	var minor string
	minor, rest, ok = cutDigits(rest[1:])
	if !ok || rest == "" || rest[0] != '.' {
		return Version
	}
	patch, tail, ok := cutDigits(rest[1:])
	if !ok {
		return Version
	}
	return versionMajorColor.Sprint(major) + "." +
		versionMinorColor.Sprint(minor) + "." +
		versionPatchColor.Sprint(patch) + tail
}

func cutDigits(s string) (digits, rest string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return "", s, false
	}
	return s[:i], s[i:], true
}
