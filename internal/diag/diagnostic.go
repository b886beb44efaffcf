package diag

import (
	"owl/internal/source"
)

// Diagnostic is a single finding with a stable code and a primary location.
// Hints suggest how to fix the problem, notes add surrounding context; both
// are optional and render in insertion order.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Hints    []string
	Notes    []string
}

// HasSpan reports whether the diagnostic points at a concrete source range.
// The zero Span counts as "no location": whole-file notices carry it and are
// exempt from span-based deduplication.
func (d *Diagnostic) HasSpan() bool {
	return d.Primary != (source.Span{})
}
