package sema

import (
	"fmt"

	"owl/internal/diag"
	"owl/internal/symbols"
)

// sweepScope runs the unused-binding advisories for one scope as it closes.
// Underscore-prefixed names opt out; a binding replaced by a redeclaration
// of the same name is skipped, only the visible one is judged.
func (c *checker) sweepScope(scopeID symbols.ScopeID, fnName string) {
	scope := c.table.Scopes.Get(scopeID)
	if scope == nil {
		return
	}
	for _, symID := range scope.Symbols {
		sym := c.table.Symbols.Get(symID)
		if sym == nil || sym.Flags&symbols.SymbolFlagUnderscore != 0 {
			continue
		}
		if c.table.LookupIn(scopeID, sym.Name) != symID {
			continue
		}
		name := c.lookupName(sym.Name)
		switch sym.Kind {
		case symbols.SymbolVar:
			switch {
			case sym.Flags&symbols.SymbolFlagUsed == 0:
				c.warnAt(diag.WarnUnusedVariable, sym.Span,
					"variable `%s` is never used", name).
					WithHint(fmt.Sprintf("prefix it with an underscore to silence: `_%s`", name)).Emit()
			case sym.Flags&symbols.SymbolFlagMutable != 0 && sym.Flags&symbols.SymbolFlagAssigned == 0:
				c.warnAt(diag.WarnNeverMutated, sym.Span,
					"`%s` is declared mutable but never reassigned", name).
					WithHint("remove `mut`").Emit()
			}
		case symbols.SymbolParam:
			if sym.Flags&symbols.SymbolFlagUsed == 0 {
				b := c.warnAt(diag.WarnUnusedParameter, sym.Span,
					"parameter `%s` of `%s` is never used", name, fnName)
				b.WithHint(fmt.Sprintf("prefix it with an underscore to silence: `_%s`", name))
				b.Emit()
			}
		}
	}
}

// sweepFunctions reports declared functions that were never called. main is
// the entry point and exempt; so is a function replaced by a redeclaration.
func (c *checker) sweepFunctions() {
	for _, info := range c.fns {
		sym := c.table.Symbols.Get(info.sym)
		if sym == nil || sym.Flags&(symbols.SymbolFlagUsed|symbols.SymbolFlagUnderscore) != 0 {
			continue
		}
		if c.table.LookupIn(c.result.FileScope, info.name) != info.sym {
			continue
		}
		name := c.lookupName(info.name)
		if name == "main" {
			continue
		}
		c.warnAt(diag.WarnUnusedFunction, info.nameSpan,
			"function `%s` is never called", name).Emit()
	}
}
