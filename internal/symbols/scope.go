package symbols

import (
	"owl/internal/ast"
	"owl/internal/source"
)

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid  ScopeKind = iota
	ScopeFile               // artificial root per checked file
	ScopeFunction           // function body scope
	ScopeBlock              // generic block scope
	ScopeMatchArm           // binder scope of a single match arm
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeFile:
		return "file"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	case ScopeMatchArm:
		return "match-arm"
	default:
		return "invalid"
	}
}

// ScopeOwnerKind distinguishes what AST element owns a scope.
type ScopeOwnerKind uint8

const (
	ScopeOwnerUnknown ScopeOwnerKind = iota
	ScopeOwnerFile
	ScopeOwnerItem
	ScopeOwnerStmt
	ScopeOwnerExpr
)

// ScopeOwner references an AST construct associated with the scope.
type ScopeOwner struct {
	Kind ScopeOwnerKind
	Item ast.ItemID
	Stmt ast.StmtID
	Expr ast.ExprID
}

// Scope models a lexical scope with a parent-child hierarchy.
//
// NameIndex keeps every declaration of a name in order; the newest entry is
// the visible binding. A redeclaration therefore replaces the old one for
// lookup purposes while the arena keeps the earlier symbol alive for
// previous-declaration notes.
type Scope struct {
	Kind      ScopeKind
	Parent    ScopeID
	Owner     ScopeOwner
	Span      source.Span
	NameIndex map[source.StringID][]SymbolID
	Symbols   []SymbolID
	Children  []ScopeID
}
