package sema

import (
	"fmt"

	"owl/internal/diag"
	"owl/internal/source"
	"owl/internal/symbols"
)

// errorAt and warnAt are the only two ways the checker constructs a
// diagnostic. Call sites chain WithHint/WithNote and finish with Emit;
// the dedup wrapper around the reporter drops exact repeats.

func (c *checker) errorAt(code diag.Code, span source.Span, format string, args ...any) *diag.ReportBuilder {
	return diag.ReportError(c.reporter, code, span, fmt.Sprintf(format, args...))
}

func (c *checker) warnAt(code diag.Code, span source.Span, format string, args ...any) *diag.ReportBuilder {
	return diag.ReportWarning(c.reporter, code, span, fmt.Sprintf(format, args...))
}

// reportConflict applies the declaration conflict policy: colliding with a
// callable (a function or a built-in) is illegal shadowing, colliding in the
// same scope otherwise is a redefinition, and plain lexical shadowing of an
// outer binding is only an advisory.
func (c *checker) reportConflict(name source.StringID, span source.Span, conflict symbols.Conflict) {
	text := c.lookupName(name)
	switch {
	case conflict.Prev.IsValid():
		prev := c.table.Symbols.Get(conflict.Prev)
		if prev != nil && prev.Kind.IsCallable() {
			c.errorAt(diag.SemaIllegalShadowing, span, "cannot shadow %s `%s`", callableLabel(prev.Kind), text).Emit()
			return
		}
		c.errorAt(diag.SemaRedefinition, span, "redefinition of `%s`", text).Emit()
	case conflict.Outer.IsValid():
		outer := c.table.Symbols.Get(conflict.Outer)
		if outer != nil && outer.Kind.IsCallable() {
			c.errorAt(diag.SemaIllegalShadowing, span, "cannot shadow %s `%s`", callableLabel(outer.Kind), text).Emit()
			return
		}
		if len(text) > 0 && text[0] == '_' {
			return
		}
		c.warnAt(diag.WarnVariableShadows, span, "`%s` shadows an outer binding", text).Emit()
	}
}

func callableLabel(kind symbols.SymbolKind) string {
	if kind == symbols.SymbolBuiltin {
		return "built-in"
	}
	return "function"
}

// plural renders "1 argument" / "2 arguments" style counts.
func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
