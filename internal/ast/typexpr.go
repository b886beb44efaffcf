package ast

import (
	"owl/internal/source"
)

// TypeExprKind enumerates the syntactic forms of type annotations.
type TypeExprKind uint8

const (
	// TypeExprName is a bare type name: `Int`, `String`, `MyType`.
	TypeExprName TypeExprKind = iota
	// TypeExprGeneric is a name with bracketed arguments: `Option[Int]`,
	// `Result[Int, String]`, `List[Float]`.
	TypeExprGeneric
	// TypeExprBad marks a malformed annotation produced by recovery.
	TypeExprBad
)

// TypeExpr is a type annotation as written in source. Разрешение имени
// в настоящий тип — забота sema; здесь только синтаксис.
type TypeExpr struct {
	Kind     TypeExprKind
	Span     source.Span
	Name     source.StringID
	NameSpan source.Span
	Args     []TypeID
}

// TypeExprs manages allocation of type annotations.
type TypeExprs struct {
	Arena *Arena[TypeExpr]
}

// NewTypeExprs creates type annotation storage with the given capacity hint.
// If capHint is 0, a default capacity of 1<<5 is used.
func NewTypeExprs(capHint uint) *TypeExprs {
	if capHint == 0 {
		capHint = 1 << 5
	}
	return &TypeExprs{
		Arena: NewArena[TypeExpr](capHint),
	}
}

// Get returns a type annotation by ID.
func (t *TypeExprs) Get(id TypeID) *TypeExpr {
	return t.Arena.Get(uint32(id))
}

// NewName creates a bare name annotation.
func (t *TypeExprs) NewName(span source.Span, name source.StringID) TypeID {
	id := t.Arena.Allocate(TypeExpr{
		Kind:     TypeExprName,
		Span:     span,
		Name:     name,
		NameSpan: span,
	})
	return TypeID(id)
}

// NewGeneric creates a name-with-arguments annotation. Аргументы копируются.
func (t *TypeExprs) NewGeneric(span source.Span, name source.StringID, nameSpan source.Span, args []TypeID) TypeID {
	node := TypeExpr{
		Kind:     TypeExprGeneric,
		Span:     span,
		Name:     name,
		NameSpan: nameSpan,
	}
	if len(args) > 0 {
		node.Args = append(node.Args, args...)
	}
	id := t.Arena.Allocate(node)
	return TypeID(id)
}

// NewBad creates a malformed annotation node.
func (t *TypeExprs) NewBad(span source.Span) TypeID {
	id := t.Arena.Allocate(TypeExpr{
		Kind: TypeExprBad,
		Span: span,
	})
	return TypeID(id)
}
