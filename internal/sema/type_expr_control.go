package sema

import (
	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/source"
	"owl/internal/symbols"
	"owl/internal/types"
)

// typeIfExpr types an if in value position: the node wraps the already
// built statement form, both branches contribute their last expression.
func (c *checker) typeIfExpr(id ast.ExprID) types.TypeID {
	data, ok := c.builder.Exprs.If(id)
	if !ok {
		return c.types.Builtins().Unknown
	}
	return c.valueIf(data.If)
}

func (c *checker) valueIf(id ast.StmtID) types.TypeID {
	b := c.types.Builtins()
	data, ok := c.builder.Stmts.If(id)
	if !ok {
		return b.Unknown
	}
	c.checkCondition(data.Cond, "if")
	thenType := c.branchValue(data.Then)
	if !data.Else.IsValid() {
		// без else ветка может не исполниться, значения нет
		return b.Void
	}
	elseType := c.branchValue(data.Else)
	if unified, ok := c.unifyBranches(thenType, elseType); ok {
		return unified
	}
	c.errorAt(diag.SemaBranchTypeMismatch, c.stmtSpan(id),
		"if and else branches have incompatible types: %s and %s",
		c.typeName(thenType), c.typeName(elseType)).Emit()
	return b.Unknown
}

// branchValue computes the value a branch produces: a block yields its
// final expression (or Void), an else-if chain recurses.
func (c *checker) branchValue(id ast.StmtID) types.TypeID {
	b := c.types.Builtins()
	stmt := c.builder.Stmts.Get(id)
	if stmt == nil {
		return b.Unknown
	}
	switch stmt.Kind {
	case ast.StmtIf:
		return c.valueIf(id)
	case ast.StmtBlock:
		data, ok := c.builder.Stmts.Block(id)
		if !ok {
			return b.Unknown
		}
		scope := c.resolver.Enter(symbols.ScopeBlock, stmtOwner(id), stmt.Span)
		result := b.Void
		for i, sid := range data.Stmts {
			if i == len(data.Stmts)-1 {
				if exprData, ok := c.builder.Stmts.Expr(sid); ok {
					result = c.typeExpr(exprData.Expr)
					continue
				}
			}
			c.checkStmt(sid)
		}
		c.sweepScope(scope, "")
		c.resolver.Leave(scope)
		return result
	default:
		c.checkStmt(id)
		return b.Void
	}
}

// typeTry checks a postfix `?`: the operand must be a Result, the enclosing
// function must return a Result, and the error halves must line up. Any
// проходит насквозь - это python-значение без статической формы.
func (c *checker) typeTry(id ast.ExprID, span source.Span) types.TypeID {
	b := c.types.Builtins()
	data, ok := c.builder.Exprs.Try(id)
	if !ok {
		return b.Unknown
	}
	operand := c.typeExpr(data.Operand)
	tt, found := c.types.Lookup(operand)
	if !found {
		return b.Unknown
	}
	switch tt.Kind {
	case types.KindUnknown:
		return b.Unknown
	case types.KindAny:
		return b.Any
	case types.KindResult:
	default:
		c.errorAt(diag.SemaTryNotResult, span,
			"`?` needs a Result, found %s", c.typeName(operand)).Emit()
		return b.Unknown
	}

	if c.fn == nil {
		c.errorAt(diag.SemaTryOutsideResultFn, span,
			"`?` can only be used inside a function returning Result").Emit()
		return tt.Elem
	}
	ft, okFn := c.types.Lookup(c.fn.result)
	if !okFn || ft.Kind != types.KindResult {
		if okFn && (ft.Kind == types.KindUnknown || ft.Kind == types.KindAny) {
			return tt.Elem
		}
		c.errorAt(diag.SemaTryOutsideResultFn, span,
			"`?` requires `%s` to return Result, it returns %s",
			c.fn.name, c.typeName(c.fn.result)).Emit()
		return tt.Elem
	}
	if !c.types.Compatible(ft.Err, tt.Err) {
		c.errorAt(diag.SemaTryErrorMismatch, span,
			"`?` propagates an error of type %s, but `%s` returns errors of type %s",
			c.typeName(tt.Err), c.fn.name, c.typeName(ft.Err)).Emit()
	}
	return tt.Elem
}
