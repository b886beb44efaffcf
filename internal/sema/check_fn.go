package sema

import (
	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/source"
	"owl/internal/symbols"
	"owl/internal/types"
)

// checkFnBody checks one function body against its registered signature:
// parameters enter a fresh function scope, the loop stack starts empty, and
// the statement list is walked with flow tracking. Для не-Void функций
// последний expression-statement играет роль неявного return.
func (c *checker) checkFnBody(info *fnInfo) {
	fnName := c.lookupName(info.name)
	scope := c.resolver.Enter(symbols.ScopeFunction,
		symbols.ScopeOwner{Kind: symbols.ScopeOwnerItem, Item: info.item}, info.span)
	for _, p := range info.params {
		_, conflict := c.resolver.Declare(symbols.Symbol{
			Name:  p.name,
			Kind:  symbols.SymbolParam,
			Span:  p.nameSpan,
			Flags: c.underscoreFlag(p.name),
			Decl:  symbols.SymbolDecl{Item: info.item},
			Type:  p.typ,
		})
		c.reportConflict(p.name, p.nameSpan, conflict)
	}

	prevFn, prevLoops, prevImplicit := c.fn, c.loops, c.implicitReturn
	c.fn = &fnContext{name: fnName, result: info.sig.Result}
	c.loops = nil

	var stmts []ast.StmtID
	if body, ok := c.builder.Stmts.Block(info.body); ok {
		stmts = body.Stmts
	}

	c.implicitReturn = ast.NoStmtID
	if c.returnsValue(info.sig.Result) && len(stmts) > 0 {
		last := stmts[len(stmts)-1]
		if s := c.builder.Stmts.Get(last); s != nil && s.Kind == ast.StmtExpr {
			c.implicitReturn = last
		}
	}

	terminated := c.checkStmtList(stmts)
	c.checkFnExit(info, fnName, stmts, terminated)

	c.sweepScope(scope, fnName)
	c.resolver.Leave(scope)
	c.fn, c.loops, c.implicitReturn = prevFn, prevLoops, prevImplicit
}

// returnsValue reports whether the declared return type demands a value on
// every path. Unknown means the annotation itself was already reported.
func (c *checker) returnsValue(result types.TypeID) bool {
	kind := c.types.Kind(result)
	return kind != types.KindVoid && kind != types.KindUnknown
}

// checkFnExit validates how the body ends. A Void function may not end in a
// bare return (it is redundant); a non-Void function must either terminate
// on every path or end in an expression compatible with the return type.
func (c *checker) checkFnExit(info *fnInfo, fnName string, stmts []ast.StmtID, terminated bool) {
	if !c.returnsValue(info.sig.Result) {
		if len(stmts) == 0 {
			return
		}
		last := stmts[len(stmts)-1]
		if ret, ok := c.builder.Stmts.Return(last); ok && !ret.Value.IsValid() {
			c.warnAt(diag.WarnRedundantReturn, c.stmtSpan(last),
				"redundant `return` at the end of `%s`", fnName).Emit()
		}
		return
	}
	if terminated {
		return
	}

	result := c.typeName(info.sig.Result)
	if len(stmts) == 0 {
		c.errorAt(diag.FlowMissingReturn, info.span,
			"function `%s` must return %s, but its body is empty", fnName, result).Emit()
		return
	}

	last := stmts[len(stmts)-1]
	if last == c.implicitReturn {
		// тип уже выведен при обходе; проверяем совместимость с сигнатурой
		value := c.types.Builtins().Unknown
		if data, ok := c.builder.Stmts.Expr(last); ok {
			if t, found := c.result.ExprTypes[data.Expr]; found {
				value = t
			}
		}
		if !c.types.Compatible(info.sig.Result, value) {
			c.errorAt(diag.SemaReturnTypeMismatch, c.stmtSpan(last),
				"function `%s` returns %s, but its final expression is %s",
				fnName, result, c.typeName(value)).Emit()
		}
		return
	}

	if data, ok := c.builder.Stmts.If(last); ok && !data.Else.IsValid() {
		c.errorAt(diag.FlowMissingReturn, c.stmtSpan(last),
			"function `%s` must return %s on all paths: this `if` has no `else`",
			fnName, result).
			WithHint("add an `else` branch that returns, or a return after the `if`").Emit()
		return
	}
	c.errorAt(diag.FlowMissingReturn, info.span,
		"function `%s` must return %s on all paths", fnName, result).Emit()
}

func (c *checker) stmtSpan(id ast.StmtID) source.Span {
	if stmt := c.builder.Stmts.Get(id); stmt != nil {
		return stmt.Span
	}
	return source.Span{}
}
