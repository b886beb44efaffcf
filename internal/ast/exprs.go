package ast

import (
	"owl/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena    *Arena[Expr]
	Idents   *Arena[ExprIdentData]
	Literals *Arena[ExprLiteralData]
	Unaries  *Arena[ExprUnaryData]
	Binaries *Arena[ExprBinaryData]
	Calls    *Arena[ExprCallData]
	Fields   *Arena[ExprFieldData]
	Lists    *Arena[ExprListData]
	Groups   *Arena[ExprGroupData]
	Ifs      *Arena[ExprIfData]
	Matches  *Arena[ExprMatchData]
	Tries    *Arena[ExprTryData]

	// Arms хранит плечи match-выражений; ExprMatchData ссылается на них
	// по ArmID.
	Arms *Arena[MatchArm]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using capHint
// as the initial capacity. If capHint is 0, a default capacity of 1<<8 is used.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Idents:   NewArena[ExprIdentData](capHint),
		Literals: NewArena[ExprLiteralData](capHint),
		Unaries:  NewArena[ExprUnaryData](capHint),
		Binaries: NewArena[ExprBinaryData](capHint),
		Calls:    NewArena[ExprCallData](capHint),
		Fields:   NewArena[ExprFieldData](capHint),
		Lists:    NewArena[ExprListData](capHint),
		Groups:   NewArena[ExprGroupData](capHint),
		Ifs:      NewArena[ExprIfData](capHint),
		Matches:  NewArena[ExprMatchData](capHint),
		Tries:    NewArena[ExprTryData](capHint),
		Arms:     NewArena[MatchArm](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	id := e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	})
	return ExprID(id)
}

// Get returns an expression node by ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewIdent creates an identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

// Ident returns identifier data if the expression is an identifier.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// NewLit creates a literal expression.
func (e *Exprs) NewLit(span source.Span, kind ExprLitKind, value source.StringID) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{Kind: kind, Value: value})
	return e.new(ExprLit, span, PayloadID(payload))
}

// Lit returns literal data if the expression is a literal.
func (e *Exprs) Lit(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// NewUnary creates a unary operation expression.
func (e *Exprs) NewUnary(span source.Span, op ExprUnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

// Unary returns unary data if the expression is a unary operation.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// NewBinary creates a binary operation expression.
func (e *Exprs) NewBinary(span source.Span, op ExprBinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns binary data if the expression is a binary operation.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// NewCall creates a function call expression. Аргументы копируются.
func (e *Exprs) NewCall(span source.Span, target ExprID, args []ExprID) ExprID {
	data := ExprCallData{Target: target}
	if len(args) > 0 {
		data.Args = append(data.Args, args...)
	}
	payload := e.Calls.Allocate(data)
	return e.new(ExprCall, span, PayloadID(payload))
}

// Call returns call data if the expression is a function call.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

// NewField creates a field access expression.
func (e *Exprs) NewField(span source.Span, target ExprID, field source.StringID, fieldSpan source.Span) ExprID {
	payload := e.Fields.Allocate(ExprFieldData{
		Target:    target,
		Field:     field,
		FieldSpan: fieldSpan,
	})
	return e.new(ExprField, span, PayloadID(payload))
}

// Field returns field data if the expression is a field access.
func (e *Exprs) Field(id ExprID) (*ExprFieldData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprField {
		return nil, false
	}
	return e.Fields.Get(uint32(expr.Payload)), true
}

// NewList creates a list literal expression. Элементы копируются.
func (e *Exprs) NewList(span source.Span, elements []ExprID, trailingComma bool) ExprID {
	data := ExprListData{HasTrailingComma: trailingComma}
	if len(elements) > 0 {
		data.Elements = append(data.Elements, elements...)
	}
	payload := e.Lists.Allocate(data)
	return e.new(ExprList, span, PayloadID(payload))
}

// List returns list data if the expression is a list literal.
func (e *Exprs) List(id ExprID) (*ExprListData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprList {
		return nil, false
	}
	return e.Lists.Get(uint32(expr.Payload)), true
}

// NewGroup creates a parenthesized group expression.
func (e *Exprs) NewGroup(span source.Span, inner ExprID) ExprID {
	payload := e.Groups.Allocate(ExprGroupData{Inner: inner})
	return e.new(ExprGroup, span, PayloadID(payload))
}

// Group returns group data if the expression is a parenthesized group.
func (e *Exprs) Group(id ExprID) (*ExprGroupData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprGroup {
		return nil, false
	}
	return e.Groups.Get(uint32(expr.Payload)), true
}

// NewIf creates an if expression wrapping the given if statement.
func (e *Exprs) NewIf(span source.Span, stmt StmtID) ExprID {
	payload := e.Ifs.Allocate(ExprIfData{If: stmt})
	return e.new(ExprIf, span, PayloadID(payload))
}

// If returns if data if the expression is an if in value position.
func (e *Exprs) If(id ExprID) (*ExprIfData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIf {
		return nil, false
	}
	return e.Ifs.Get(uint32(expr.Payload)), true
}

// NewMatch creates a match expression, allocating its arms.
func (e *Exprs) NewMatch(span source.Span, subject ExprID, arms []MatchArmSpec) ExprID {
	data := ExprMatchData{Subject: subject}
	if len(arms) > 0 {
		data.Arms = make([]ArmID, 0, len(arms))
		for _, spec := range arms {
			id := e.Arms.Allocate(MatchArm(spec))
			data.Arms = append(data.Arms, ArmID(id))
		}
	}
	payload := e.Matches.Allocate(data)
	return e.new(ExprMatch, span, PayloadID(payload))
}

// Match returns match data if the expression is a match.
func (e *Exprs) Match(id ExprID) (*ExprMatchData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMatch {
		return nil, false
	}
	return e.Matches.Get(uint32(expr.Payload)), true
}

// Arm returns a match arm by ID.
func (e *Exprs) Arm(id ArmID) *MatchArm {
	return e.Arms.Get(uint32(id))
}

// NewTry creates a postfix `?` expression.
func (e *Exprs) NewTry(span source.Span, operand ExprID) ExprID {
	payload := e.Tries.Allocate(ExprTryData{Operand: operand})
	return e.new(ExprTry, span, PayloadID(payload))
}

// Try returns try data if the expression is a postfix `?`.
func (e *Exprs) Try(id ExprID) (*ExprTryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprTry {
		return nil, false
	}
	return e.Tries.Get(uint32(expr.Payload)), true
}

// NewBad creates a malformed expression node.
func (e *Exprs) NewBad(span source.Span) ExprID {
	return e.new(ExprBad, span, NoPayloadID)
}
