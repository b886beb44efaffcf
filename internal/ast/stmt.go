package ast

import (
	"owl/internal/source"
)

// StmtKind enumerates the different kinds of statements.
type StmtKind uint8

const (
	// StmtBlock is a `{ ... }` sequence of statements.
	StmtBlock StmtKind = iota
	// StmtLet is a `let [mut] name [: Type] = expr` declaration.
	StmtLet
	// StmtAssign is a `name = expr` assignment.
	StmtAssign
	// StmtIf is an `if cond { } [else ...]` statement.
	StmtIf
	// StmtWhile is a `while cond { }` loop.
	StmtWhile
	// StmtFor is a `for name in expr { }` loop.
	StmtFor
	// StmtLoop is an unconditional `loop { }`.
	StmtLoop
	StmtBreak
	StmtContinue
	// StmtReturn is a `return [expr]` statement.
	StmtReturn
	// StmtExpr is an expression in statement position.
	StmtExpr
	// StmtBad marks a malformed region produced by recovery; checking
	// продолжается на соседних операторах, сам регион пропускается.
	StmtBad
)

// Stmt represents a statement node in the AST.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// StmtBlockData holds the statements of a block.
type StmtBlockData struct {
	Stmts []StmtID
}

// StmtLetData holds a let declaration. Type is NoTypeID without an
// annotation; Mut отличает `let mut` от `let`.
type StmtLetData struct {
	Name     source.StringID
	NameSpan source.Span
	Mut      bool
	MutSpan  source.Span
	Type     TypeID
	Value    ExprID
}

// StmtAssignData holds an assignment to an existing binding.
type StmtAssignData struct {
	Name     source.StringID
	NameSpan source.Span
	Value    ExprID
}

// StmtIfData holds an if statement. Else is NoStmtID, a StmtBlock, or a
// nested StmtIf (else-if chain).
type StmtIfData struct {
	Cond ExprID
	Then StmtID
	Else StmtID
}

// StmtWhileData holds a while loop.
type StmtWhileData struct {
	Cond ExprID
	Body StmtID
}

// StmtForData holds a for-in loop; Var is the immutable iteration binding.
type StmtForData struct {
	Var      source.StringID
	VarSpan  source.Span
	Iterable ExprID
	Body     StmtID
}

// StmtLoopData holds an unconditional loop.
type StmtLoopData struct {
	Body StmtID
}

// StmtReturnData holds a return; Value is NoExprID for a bare `return`.
type StmtReturnData struct {
	Value ExprID
}

// StmtExprData holds an expression statement.
type StmtExprData struct {
	Expr ExprID
}
