package symbols

import (
	"owl/internal/ast"
	"owl/internal/source"
	"owl/internal/types"
)

// SymbolKind classifies the semantic meaning of a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolVar
	SymbolParam
	SymbolFunc
	SymbolImport
	SymbolBuiltin
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVar:
		return "variable"
	case SymbolParam:
		return "parameter"
	case SymbolFunc:
		return "function"
	case SymbolImport:
		return "import"
	case SymbolBuiltin:
		return "builtin"
	default:
		return "invalid"
	}
}

// IsCallable reports whether the symbol names a function-like entity that
// carries a signature.
func (k SymbolKind) IsCallable() bool {
	return k == SymbolFunc || k == SymbolBuiltin
}

// SymbolFlags encode misc attributes for quick checks.
type SymbolFlags uint16

const (
	// SymbolFlagMutable marks `let mut` bindings.
	SymbolFlagMutable SymbolFlags = 1 << iota
	// SymbolFlagUsed is set on the first read of the binding.
	SymbolFlagUsed
	// SymbolFlagAssigned is set when the binding appears as an assignment target.
	SymbolFlagAssigned
	// SymbolFlagUnderscore marks `_`-prefixed names which opt out of
	// unused-binding advisories.
	SymbolFlagUnderscore
)

// Strings returns a slice of textual flag labels.
func (f SymbolFlags) Strings() []string {
	if f == 0 {
		return nil
	}
	labels := make([]string, 0, 4)
	if f&SymbolFlagMutable != 0 {
		labels = append(labels, "mutable")
	}
	if f&SymbolFlagUsed != 0 {
		labels = append(labels, "used")
	}
	if f&SymbolFlagAssigned != 0 {
		labels = append(labels, "assigned")
	}
	if f&SymbolFlagUnderscore != 0 {
		labels = append(labels, "underscore")
	}
	return labels
}

// SymbolDecl focuses on the AST origin for diagnostics. Exactly one field is
// set: functions and imports come from items, let/for bindings from
// statements, match-arm binders from the match expression.
type SymbolDecl struct {
	Item ast.ItemID
	Stmt ast.StmtID
	Expr ast.ExprID
}

// Symbol describes a named entity available in a scope.
type Symbol struct {
	Name      source.StringID
	Kind      SymbolKind
	Scope     ScopeID
	Span      source.Span
	Flags     SymbolFlags
	Decl      SymbolDecl
	Type      types.TypeID
	Signature *types.Signature // set for Func and Builtin symbols
}
