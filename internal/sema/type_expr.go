package sema

import (
	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/source"
	"owl/internal/symbols"
	"owl/internal/types"
)

// typeExpr infers the type of an expression, reporting at most one
// diagnostic per root cause. Failures yield Unknown, which is compatible
// with everything, so checking of the surrounding code continues without
// cascades. Results are memoized in Result.ExprTypes.
func (c *checker) typeExpr(id ast.ExprID) types.TypeID {
	b := c.types.Builtins()
	if !id.IsValid() {
		return b.Unknown
	}
	if ty, ok := c.result.ExprTypes[id]; ok {
		return ty
	}
	expr := c.builder.Exprs.Get(id)
	if expr == nil {
		return b.Unknown
	}

	var ty types.TypeID
	switch expr.Kind {
	case ast.ExprIdent:
		ty = c.typeIdent(id, expr.Span)
	case ast.ExprLit:
		ty = c.typeLit(id)
	case ast.ExprUnary:
		ty = c.typeUnary(id, expr.Span)
	case ast.ExprBinary:
		ty = c.typeBinary(id, expr.Span)
	case ast.ExprCall:
		ty = c.typeCall(id, expr.Span)
	case ast.ExprField:
		ty = c.typeField(id)
	case ast.ExprList:
		ty = c.typeList(id)
	case ast.ExprGroup:
		if data, ok := c.builder.Exprs.Group(id); ok {
			ty = c.typeExpr(data.Inner)
		}
	case ast.ExprIf:
		ty = c.typeIfExpr(id)
	case ast.ExprMatch:
		ty = c.typeMatch(id, expr.Span)
	case ast.ExprTry:
		ty = c.typeTry(id, expr.Span)
	case ast.ExprBad:
		// парсер уже сообщил об ошибке в этом месте
		ty = b.Unknown
	}
	if ty == types.NoTypeID {
		ty = b.Unknown
	}
	c.result.ExprTypes[id] = ty
	return ty
}

// typeIdent resolves a name in value position. Some/Ok/Err exist only as
// constructor calls; a bare None is the empty option.
func (c *checker) typeIdent(id ast.ExprID, span source.Span) types.TypeID {
	b := c.types.Builtins()
	data, ok := c.builder.Exprs.Ident(id)
	if !ok {
		return b.Unknown
	}
	name := c.lookupName(data.Name)

	if symID, found := c.resolver.Lookup(data.Name); found {
		sym := c.table.Symbols.Get(symID)
		if sym == nil {
			return b.Unknown
		}
		sym.Flags |= symbols.SymbolFlagUsed
		if sym.Kind.IsCallable() {
			c.errorAt(diag.SemaInvalidOperation, span, "%s `%s` cannot be used as a value", callableLabel(sym.Kind), name).Emit()
			return b.Unknown
		}
		return sym.Type
	}

	switch name {
	case "None":
		return c.types.Option(b.Any)
	case "Some", "Ok", "Err":
		c.errorAt(diag.SemaWrongArgCount, span, "`%s` takes exactly one argument", name).Emit()
		return b.Unknown
	default:
		c.errorAt(diag.SemaUndefinedVariable, span, "undefined variable `%s`", name).Emit()
		return b.Unknown
	}
}

func (c *checker) typeLit(id ast.ExprID) types.TypeID {
	b := c.types.Builtins()
	data, ok := c.builder.Exprs.Lit(id)
	if !ok {
		return b.Unknown
	}
	switch data.Kind {
	case ast.ExprLitInt:
		return b.Int
	case ast.ExprLitFloat:
		return b.Float
	case ast.ExprLitString:
		return b.String
	case ast.ExprLitTrue, ast.ExprLitFalse:
		return b.Bool
	default:
		return b.Unknown
	}
}

func (c *checker) typeUnary(id ast.ExprID, span source.Span) types.TypeID {
	b := c.types.Builtins()
	data, ok := c.builder.Exprs.Unary(id)
	if !ok {
		return b.Unknown
	}
	operand := c.typeExpr(data.Operand)
	kind := c.types.Kind(operand)
	if kind == types.KindUnknown {
		return b.Unknown
	}
	if kind == types.KindAny {
		if data.Op == ast.ExprUnaryNot {
			return b.Bool
		}
		return b.Any
	}

	spec, ok := types.UnarySpecFor(data.Op)
	if ok && spec.Operand.Accepts(types.FamilyOf(kind)) {
		if spec.Result == types.UnaryResultBool {
			return b.Bool
		}
		return operand
	}
	if data.Op == ast.ExprUnaryNeg {
		c.errorAt(diag.SemaCannotNegate, span, "cannot negate %s", c.typeName(operand)).Emit()
	} else {
		c.errorAt(diag.SemaInvalidOperation, span, "invalid operation: `!` on %s", c.typeName(operand)).Emit()
	}
	return b.Unknown
}

// typeBinary applies the operator table. An Any operand makes the whole
// expression Any (python interop); Unknown stays silent because the cause
// was reported where it happened.
func (c *checker) typeBinary(id ast.ExprID, span source.Span) types.TypeID {
	b := c.types.Builtins()
	data, ok := c.builder.Exprs.Binary(id)
	if !ok {
		return b.Unknown
	}
	left := c.typeExpr(data.Left)
	right := c.typeExpr(data.Right)
	lk := c.types.Kind(left)
	rk := c.types.Kind(right)

	if lk == types.KindUnknown || rk == types.KindUnknown {
		return b.Unknown
	}
	if lk == types.KindAny || rk == types.KindAny {
		return b.Any
	}

	for _, spec := range types.BinarySpecs(data.Op) {
		if !spec.Left.Accepts(types.FamilyOf(lk)) || !spec.Right.Accepts(types.FamilyOf(rk)) {
			continue
		}
		if spec.Flags&types.BinaryFlagSameType != 0 && !c.types.EqualityComparable(left, right) {
			c.errorAt(diag.SemaIncompatibleTypes, span,
				"cannot compare %s with %s", c.typeName(left), c.typeName(right)).Emit()
			return b.Bool
		}
		switch spec.Result {
		case types.BinaryResultLeft:
			return left
		case types.BinaryResultBool:
			return b.Bool
		case types.BinaryResultNumeric:
			if lk == types.KindFloat || rk == types.KindFloat {
				return b.Float
			}
			return b.Int
		}
	}

	if data.Op.IsComparison() {
		c.errorAt(diag.SemaIncompatibleTypes, span,
			"cannot order %s and %s", c.typeName(left), c.typeName(right)).Emit()
		return b.Bool
	}
	c.errorAt(diag.SemaInvalidOperation, span,
		"invalid operation: %s %s %s", c.typeName(left), data.Op, c.typeName(right)).Emit()
	return b.Unknown
}

// typeField checks the object and yields Any: field access is the python
// interop surface, the checker has no знание о структуре объектов.
func (c *checker) typeField(id ast.ExprID) types.TypeID {
	b := c.types.Builtins()
	data, ok := c.builder.Exprs.Field(id)
	if !ok {
		return b.Unknown
	}
	c.typeExpr(data.Target)
	return b.Any
}

// typeList infers a list literal. Elements must agree with the first one;
// an empty literal is List[Any] and adapts to any annotation.
func (c *checker) typeList(id ast.ExprID) types.TypeID {
	b := c.types.Builtins()
	data, ok := c.builder.Exprs.List(id)
	if !ok {
		return b.Unknown
	}
	if len(data.Elements) == 0 {
		return c.types.List(b.Any)
	}
	elem := c.typeExpr(data.Elements[0])
	for _, el := range data.Elements[1:] {
		et := c.typeExpr(el)
		if c.types.Compatible(elem, et) {
			continue
		}
		span := source.Span{}
		if node := c.builder.Exprs.Get(el); node != nil {
			span = node.Span
		}
		c.errorAt(diag.SemaTypeMismatch, span,
			"list elements must share one type: expected %s, found %s",
			c.typeName(elem), c.typeName(et)).Emit()
	}
	return c.types.List(elem)
}

// unifyBranches picks the dominant type of two branch values, or reports
// failure. Int widens into Float; a first branch of Any defers to the more
// specific later branch.
func (c *checker) unifyBranches(first, second types.TypeID) (types.TypeID, bool) {
	if c.types.Kind(first) == types.KindAny && c.types.Kind(second) != types.KindAny {
		return second, true
	}
	if c.types.Compatible(first, second) {
		return first, true
	}
	if c.types.Compatible(second, first) {
		return second, true
	}
	return first, false
}

func (c *checker) typeName(id types.TypeID) string {
	return c.types.String(id)
}

func (c *checker) exprSpan(id ast.ExprID) source.Span {
	if expr := c.builder.Exprs.Get(id); expr != nil {
		return expr.Span
	}
	return source.Span{}
}
