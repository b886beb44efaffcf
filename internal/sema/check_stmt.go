package sema

import (
	"fmt"

	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/source"
	"owl/internal/symbols"
	"owl/internal/types"
)

// checkStmt dispatches one statement and reports whether control can never
// fall past it: return, break, continue, an if whose branches both
// terminate, and a loop without break all end the surrounding block.
func (c *checker) checkStmt(id ast.StmtID) bool {
	stmt := c.builder.Stmts.Get(id)
	if stmt == nil {
		return false
	}
	switch stmt.Kind {
	case ast.StmtBlock:
		return c.checkBlockStmt(id)
	case ast.StmtLet:
		c.checkLet(id)
	case ast.StmtAssign:
		c.checkAssign(id)
	case ast.StmtIf:
		return c.checkIf(id)
	case ast.StmtWhile:
		c.checkWhile(id)
	case ast.StmtFor:
		c.checkFor(id)
	case ast.StmtLoop:
		return c.checkLoop(id)
	case ast.StmtBreak:
		return c.checkLoopExit(stmt.Span, diag.FlowBreakOutsideLoop, "break")
	case ast.StmtContinue:
		return c.checkLoopExit(stmt.Span, diag.FlowContinueOutsideLoop, "continue")
	case ast.StmtReturn:
		c.checkReturn(id, stmt.Span)
		return true
	case ast.StmtExpr:
		c.checkExprStmt(id, stmt.Span)
	case ast.StmtBad:
		// парсер уже сообщил об этом регионе
	}
	return false
}

// checkStmtList walks statements in order. Everything after the first
// terminating statement is dead: one W0201 covers the whole tail, and the
// statements are still checked so their own mistakes surface.
func (c *checker) checkStmtList(stmts []ast.StmtID) bool {
	terminated := false
	warned := false
	for _, id := range stmts {
		if terminated && !warned {
			warned = true
			c.warnAt(diag.WarnUnreachableCode, c.stmtSpan(id), "unreachable code").
				WithNote("this code will never execute").Emit()
		}
		if c.checkStmt(id) {
			terminated = true
		}
	}
	return terminated
}

func (c *checker) checkBlockStmt(id ast.StmtID) bool {
	data, ok := c.builder.Stmts.Block(id)
	if !ok {
		return false
	}
	scope := c.resolver.Enter(symbols.ScopeBlock, stmtOwner(id), c.stmtSpan(id))
	terminated := c.checkStmtList(data.Stmts)
	c.sweepScope(scope, "")
	c.resolver.Leave(scope)
	return terminated
}

// checkLet infers the initializer, validates it against the annotation if
// one is written, and installs the binding. The binding takes the annotated
// type when present - так List[Int] из аннотации побеждает List[Any]
// пустого литерала.
func (c *checker) checkLet(id ast.StmtID) {
	data, ok := c.builder.Stmts.Let(id)
	if !ok {
		return
	}
	declared := c.typeExpr(data.Value)
	if data.Type.IsValid() {
		annotated := c.resolveAnnotation(data.Type)
		if !c.types.Compatible(annotated, declared) {
			c.errorAt(diag.SemaTypeMismatch, c.exprSpan(data.Value),
				"cannot assign %s to a variable of type %s",
				c.typeName(declared), c.typeName(annotated)).Emit()
		}
		declared = annotated
	}

	flags := c.underscoreFlag(data.Name)
	if data.Mut {
		flags |= symbols.SymbolFlagMutable
	}
	_, conflict := c.resolver.Declare(symbols.Symbol{
		Name:  data.Name,
		Kind:  symbols.SymbolVar,
		Span:  data.NameSpan,
		Flags: flags,
		Decl:  symbols.SymbolDecl{Stmt: id},
		Type:  declared,
	})
	c.reportConflict(data.Name, data.NameSpan, conflict)
}

func (c *checker) checkAssign(id ast.StmtID) {
	data, ok := c.builder.Stmts.Assign(id)
	if !ok {
		return
	}
	value := c.typeExpr(data.Value)
	name := c.lookupName(data.Name)

	symID, found := c.resolver.Lookup(data.Name)
	if !found {
		c.errorAt(diag.SemaUndefinedVariable, data.NameSpan, "undefined variable `%s`", name).Emit()
		return
	}
	sym := c.table.Symbols.Get(symID)
	if sym == nil {
		return
	}
	if sym.Kind.IsCallable() {
		c.errorAt(diag.SemaInvalidOperation, data.NameSpan,
			"cannot assign to %s `%s`", callableLabel(sym.Kind), name).Emit()
		return
	}
	if sym.Flags&symbols.SymbolFlagMutable == 0 {
		c.errorAt(diag.SemaAssignImmutable, data.NameSpan,
			"cannot assign twice to immutable %s `%s`", sym.Kind, name).
			WithHint(fmt.Sprintf("declare it as `let mut %s` to allow reassignment", name)).Emit()
	}
	sym.Flags |= symbols.SymbolFlagAssigned
	if !c.types.Compatible(sym.Type, value) {
		c.errorAt(diag.SemaTypeMismatch, c.exprSpan(data.Value),
			"cannot assign %s to `%s` of type %s",
			c.typeName(value), name, c.typeName(sym.Type)).Emit()
	}
}

// checkCondition requires a Bool (Any and Unknown pass silently) and flags
// literal true/false conditions as constant.
func (c *checker) checkCondition(cond ast.ExprID, keyword string) {
	t := c.typeExpr(cond)
	switch c.types.Kind(t) {
	case types.KindBool, types.KindAny, types.KindUnknown:
	default:
		c.errorAt(diag.SemaConditionNotBool, c.exprSpan(cond),
			"`%s` condition must be Bool, found %s", keyword, c.typeName(t)).Emit()
	}
	if lit, ok := c.builder.Exprs.Lit(cond); ok {
		switch lit.Kind {
		case ast.ExprLitTrue:
			c.warnAt(diag.WarnConstantCondition, c.exprSpan(cond),
				"`%s` condition is always true", keyword).Emit()
		case ast.ExprLitFalse:
			c.warnAt(diag.WarnConstantCondition, c.exprSpan(cond),
				"`%s` condition is always false", keyword).Emit()
		}
	}
}

func (c *checker) checkIf(id ast.StmtID) bool {
	data, ok := c.builder.Stmts.If(id)
	if !ok {
		return false
	}
	c.checkCondition(data.Cond, "if")
	thenTerm := c.checkStmt(data.Then)
	if !data.Else.IsValid() {
		return false
	}
	if thenTerm {
		c.warnAt(diag.WarnUnnecessaryElse, c.stmtSpan(data.Else),
			"unnecessary `else` after a branch that always returns").Emit()
	}
	elseTerm := c.checkStmt(data.Else)
	return thenTerm && elseTerm
}

func (c *checker) checkWhile(id ast.StmtID) {
	data, ok := c.builder.Stmts.While(id)
	if !ok {
		return
	}
	c.checkCondition(data.Cond, "while")
	c.loops = append(c.loops, loopFrame{kind: ast.StmtWhile})
	c.checkStmt(data.Body)
	c.loops = c.loops[:len(c.loops)-1]
}

// checkFor iterates a List(T), binding an immutable T for the body. Any
// iterates as Any; anything else is a type mismatch and the binding
// degrades to Unknown.
func (c *checker) checkFor(id ast.StmtID) {
	data, ok := c.builder.Stmts.For(id)
	if !ok {
		return
	}
	b := c.types.Builtins()
	iter := c.typeExpr(data.Iterable)
	elem := b.Unknown
	if tt, found := c.types.Lookup(iter); found {
		switch tt.Kind {
		case types.KindList:
			elem = tt.Elem
		case types.KindAny:
			elem = b.Any
		case types.KindUnknown:
		default:
			c.errorAt(diag.SemaTypeMismatch, c.exprSpan(data.Iterable),
				"`for` expects a List to iterate, found %s", c.typeName(iter)).Emit()
		}
	}

	scope := c.resolver.Enter(symbols.ScopeBlock, stmtOwner(id), c.stmtSpan(id))
	_, conflict := c.resolver.Declare(symbols.Symbol{
		Name:  data.Var,
		Kind:  symbols.SymbolVar,
		Span:  data.VarSpan,
		Flags: c.underscoreFlag(data.Var),
		Decl:  symbols.SymbolDecl{Stmt: id},
		Type:  elem,
	})
	c.reportConflict(data.Var, data.VarSpan, conflict)

	c.loops = append(c.loops, loopFrame{kind: ast.StmtFor})
	c.checkStmt(data.Body)
	c.loops = c.loops[:len(c.loops)-1]
	c.sweepScope(scope, "")
	c.resolver.Leave(scope)
}

// checkLoop checks an unconditional loop. Without a break the loop never
// falls through, which both terminates the block and earns the advisory.
func (c *checker) checkLoop(id ast.StmtID) bool {
	data, ok := c.builder.Stmts.Loop(id)
	if !ok {
		return false
	}
	c.loops = append(c.loops, loopFrame{kind: ast.StmtLoop})
	c.checkStmt(data.Body)
	frame := c.loops[len(c.loops)-1]
	c.loops = c.loops[:len(c.loops)-1]
	if frame.sawBreak {
		return false
	}
	c.warnAt(diag.WarnLoopNoExit, c.stmtSpan(id), "`loop` never breaks").
		WithHint("add a `break`, or use `while` with a condition").Emit()
	return true
}

func (c *checker) checkLoopExit(span source.Span, code diag.Code, keyword string) bool {
	if len(c.loops) == 0 {
		c.errorAt(code, span, "`%s` outside of a loop", keyword).Emit()
		return false
	}
	if keyword == "break" {
		c.loops[len(c.loops)-1].sawBreak = true
	}
	return true
}

func (c *checker) checkReturn(id ast.StmtID, span source.Span) {
	data, ok := c.builder.Stmts.Return(id)
	if !ok {
		return
	}
	if c.fn == nil {
		if data.Value.IsValid() {
			c.typeExpr(data.Value)
		}
		c.errorAt(diag.SemaInvalidOperation, span, "`return` outside of a function").Emit()
		return
	}

	declared := c.fn.result
	declaredKind := c.types.Kind(declared)
	if !data.Value.IsValid() {
		if declaredKind != types.KindVoid && declaredKind != types.KindUnknown && declaredKind != types.KindAny {
			c.errorAt(diag.SemaReturnTypeMismatch, span,
				"function `%s` must return %s", c.fn.name, c.typeName(declared)).Emit()
		}
		return
	}

	value := c.typeExpr(data.Value)
	valueKind := c.types.Kind(value)
	if declaredKind == types.KindVoid {
		if valueKind != types.KindVoid && valueKind != types.KindUnknown {
			c.errorAt(diag.SemaReturnTypeMismatch, c.exprSpan(data.Value),
				"function `%s` does not return a value", c.fn.name).Emit()
		}
		return
	}
	if !c.types.Compatible(declared, value) {
		c.errorAt(diag.SemaReturnTypeMismatch, c.exprSpan(data.Value),
			"cannot return %s from a function declared to return %s",
			c.typeName(value), c.typeName(declared)).Emit()
	}
}

// checkExprStmt types the expression and flags silently dropped Result and
// Option values. The implicit final return of a non-Void function is
// exempt: its value is consumed by the caller.
func (c *checker) checkExprStmt(id ast.StmtID, span source.Span) {
	data, ok := c.builder.Stmts.Expr(id)
	if !ok {
		return
	}
	t := c.typeExpr(data.Expr)
	if id == c.implicitReturn {
		return
	}
	tt, found := c.types.Lookup(t)
	if !found {
		return
	}
	switch tt.Kind {
	case types.KindResult:
		c.warnAt(diag.WarnResultIgnored, span, "Result value is ignored").
			WithHint("use `let _ = ...` to discard it explicitly, or match on it").Emit()
	case types.KindOption:
		c.warnAt(diag.WarnOptionIgnored, span, "Option value is ignored").
			WithHint("use `let _ = ...` to discard it explicitly, or match on it").Emit()
	}
}

func stmtOwner(id ast.StmtID) symbols.ScopeOwner {
	return symbols.ScopeOwner{Kind: symbols.ScopeOwnerStmt, Stmt: id}
}
