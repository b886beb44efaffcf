package ast

import (
	"owl/internal/source"
)

// Stmts manages allocation of statements.
type Stmts struct {
	Arena   *Arena[Stmt]
	Blocks  *Arena[StmtBlockData]
	Lets    *Arena[StmtLetData]
	Assigns *Arena[StmtAssignData]
	Ifs     *Arena[StmtIfData]
	Whiles  *Arena[StmtWhileData]
	Fors    *Arena[StmtForData]
	Loops   *Arena[StmtLoopData]
	Returns *Arena[StmtReturnData]
	Exprs   *Arena[StmtExprData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Blocks:  NewArena[StmtBlockData](capHint),
		Lets:    NewArena[StmtLetData](capHint),
		Assigns: NewArena[StmtAssignData](capHint),
		Ifs:     NewArena[StmtIfData](capHint),
		Whiles:  NewArena[StmtWhileData](capHint),
		Fors:    NewArena[StmtForData](capHint),
		Loops:   NewArena[StmtLoopData](capHint),
		Returns: NewArena[StmtReturnData](capHint),
		Exprs:   NewArena[StmtExprData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewBlock creates a block statement.
func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	payload := s.Blocks.Allocate(StmtBlockData{
		Stmts: append([]StmtID(nil), stmts...),
	})
	return s.new(StmtBlock, span, PayloadID(payload))
}

// Block returns the block data for the given statement ID.
func (s *Stmts) Block(id StmtID) (*StmtBlockData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtBlock {
		return nil, false
	}
	return s.Blocks.Get(uint32(stmt.Payload)), true
}

// NewLet creates a let declaration statement.
func (s *Stmts) NewLet(span source.Span, name source.StringID, nameSpan source.Span, mut bool, mutSpan source.Span, typ TypeID, value ExprID) StmtID {
	payload := s.Lets.Allocate(StmtLetData{
		Name:     name,
		NameSpan: nameSpan,
		Mut:      mut,
		MutSpan:  mutSpan,
		Type:     typ,
		Value:    value,
	})
	return s.new(StmtLet, span, PayloadID(payload))
}

// Let returns the let data for the given statement ID.
func (s *Stmts) Let(id StmtID) (*StmtLetData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtLet {
		return nil, false
	}
	return s.Lets.Get(uint32(stmt.Payload)), true
}

// NewAssign creates an assignment statement.
func (s *Stmts) NewAssign(span source.Span, name source.StringID, nameSpan source.Span, value ExprID) StmtID {
	payload := s.Assigns.Allocate(StmtAssignData{
		Name:     name,
		NameSpan: nameSpan,
		Value:    value,
	})
	return s.new(StmtAssign, span, PayloadID(payload))
}

// Assign returns the assignment data for the given statement ID.
func (s *Stmts) Assign(id StmtID) (*StmtAssignData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtAssign {
		return nil, false
	}
	return s.Assigns.Get(uint32(stmt.Payload)), true
}

// NewIf creates an if statement.
func (s *Stmts) NewIf(span source.Span, cond ExprID, then, els StmtID) StmtID {
	payload := s.Ifs.Allocate(StmtIfData{Cond: cond, Then: then, Else: els})
	return s.new(StmtIf, span, PayloadID(payload))
}

// If returns the if data for the given statement ID.
func (s *Stmts) If(id StmtID) (*StmtIfData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtIf {
		return nil, false
	}
	return s.Ifs.Get(uint32(stmt.Payload)), true
}

// NewWhile creates a while loop statement.
func (s *Stmts) NewWhile(span source.Span, cond ExprID, body StmtID) StmtID {
	payload := s.Whiles.Allocate(StmtWhileData{Cond: cond, Body: body})
	return s.new(StmtWhile, span, PayloadID(payload))
}

// While returns the while data for the given statement ID.
func (s *Stmts) While(id StmtID) (*StmtWhileData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtWhile {
		return nil, false
	}
	return s.Whiles.Get(uint32(stmt.Payload)), true
}

// NewFor creates a for-in loop statement.
func (s *Stmts) NewFor(span source.Span, name source.StringID, nameSpan source.Span, iterable ExprID, body StmtID) StmtID {
	payload := s.Fors.Allocate(StmtForData{
		Var:      name,
		VarSpan:  nameSpan,
		Iterable: iterable,
		Body:     body,
	})
	return s.new(StmtFor, span, PayloadID(payload))
}

// For returns the for data for the given statement ID.
func (s *Stmts) For(id StmtID) (*StmtForData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtFor {
		return nil, false
	}
	return s.Fors.Get(uint32(stmt.Payload)), true
}

// NewLoop creates an unconditional loop statement.
func (s *Stmts) NewLoop(span source.Span, body StmtID) StmtID {
	payload := s.Loops.Allocate(StmtLoopData{Body: body})
	return s.new(StmtLoop, span, PayloadID(payload))
}

// Loop returns the loop data for the given statement ID.
func (s *Stmts) Loop(id StmtID) (*StmtLoopData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtLoop {
		return nil, false
	}
	return s.Loops.Get(uint32(stmt.Payload)), true
}

// NewBreak creates a break statement.
func (s *Stmts) NewBreak(span source.Span) StmtID {
	return s.new(StmtBreak, span, NoPayloadID)
}

// NewContinue creates a continue statement.
func (s *Stmts) NewContinue(span source.Span) StmtID {
	return s.new(StmtContinue, span, NoPayloadID)
}

// NewReturn creates a return statement; value is NoExprID for bare `return`.
func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	payload := s.Returns.Allocate(StmtReturnData{Value: value})
	return s.new(StmtReturn, span, PayloadID(payload))
}

// Return returns the return data for the given statement ID.
func (s *Stmts) Return(id StmtID) (*StmtReturnData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(stmt.Payload)), true
}

// NewExpr creates an expression statement.
func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	payload := s.Exprs.Allocate(StmtExprData{Expr: expr})
	return s.new(StmtExpr, span, PayloadID(payload))
}

// Expr returns the expression-statement data for the given statement ID.
func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}

// NewBad records a malformed statement region.
func (s *Stmts) NewBad(span source.Span) StmtID {
	return s.new(StmtBad, span, NoPayloadID)
}
