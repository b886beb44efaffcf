package diag

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"owl/internal/source"
)

type goldenDiagnostic struct {
	Severity    string
	Code        string
	Path        string
	Line        uint32
	Column      uint32
	Message     string
	Attachments []string
}

// FormatGoldenDiagnostics renders diagnostics into a stable, one-line-per-entry
// representation suitable for golden files and test assertions:
//
//	error E0301 main.ow:3:9 Type mismatch: expected Int, got String
//	  hint: change the value to match type 'Int'
//
// Entries are sorted deterministically; hints and notes (included when
// includeAttachments is true) stay attached to their parent line. Diagnostics
// without a span render with "-" in place of the location.
func FormatGoldenDiagnostics(diags []Diagnostic, fs *source.FileSet, includeAttachments bool) string {
	if len(diags) == 0 {
		return ""
	}

	rendered := make([]goldenDiagnostic, 0, len(diags))
	for i := range diags {
		rendered = appendGolden(rendered, &diags[i], fs, includeAttachments)
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	var b strings.Builder
	for i, d := range rendered {
		if i > 0 {
			b.WriteByte('\n')
		}
		if d.Path == "" {
			fmt.Fprintf(&b, "%s %s - %s", d.Severity, d.Code, d.Message)
		} else {
			fmt.Fprintf(&b, "%s %s %s:%d:%d %s", d.Severity, d.Code, d.Path, d.Line, d.Column, d.Message)
		}
		for _, a := range d.Attachments {
			b.WriteByte('\n')
			b.WriteString("  ")
			b.WriteString(a)
		}
	}
	return b.String()
}

func appendGolden(out []goldenDiagnostic, d *Diagnostic, fs *source.FileSet, includeAttachments bool) []goldenDiagnostic {
	g := goldenDiagnostic{
		Severity: d.Severity.Label(),
		Code:     d.Code.ID(),
		Message:  sanitizeMessage(d.Message),
	}
	if d.HasSpan() {
		loc, ok := resolveSpan(fs, d.Primary)
		if !ok {
			return out
		}
		g.Path = loc.Path
		g.Line = loc.Line
		g.Column = loc.Column
	}
	if includeAttachments {
		for _, hint := range d.Hints {
			g.Attachments = append(g.Attachments, "hint: "+sanitizeMessage(hint))
		}
		for _, note := range d.Notes {
			g.Attachments = append(g.Attachments, "note: "+sanitizeMessage(note))
		}
	}
	return append(out, g)
}

type resolvedSpan struct {
	Path   string
	Line   uint32
	Column uint32
}

func resolveSpan(fs *source.FileSet, span source.Span) (loc resolvedSpan, ok bool) {
	if fs == nil {
		return resolvedSpan{}, false
	}
	defer func() {
		if recover() != nil {
			loc = resolvedSpan{}
			ok = false
		}
	}()

	file := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	return resolvedSpan{
		Path:   normalizePath(file.FormatPath("relative", fs.BaseDir())),
		Line:   start.Line,
		Column: start.Col,
	}, true
}

func normalizePath(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
