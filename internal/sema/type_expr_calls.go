package sema

import (
	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/source"
	"owl/internal/symbols"
	"owl/internal/types"
)

// typeCall handles every call form: the Some/Ok/Err constructors, declared
// and built-in functions, values of type Any (python interop) and the
// failure paths. Arguments are always typed, even when the callee is
// broken, so their own errors surface exactly once.
func (c *checker) typeCall(id ast.ExprID, span source.Span) types.TypeID {
	b := c.types.Builtins()
	data, ok := c.builder.Exprs.Call(id)
	if !ok {
		return b.Unknown
	}

	ident, isIdent := c.builder.Exprs.Ident(data.Target)
	if !isIdent {
		// вызов результата выражения: поле, группа, другой вызов
		callee := c.typeExpr(data.Target)
		c.typeArgs(data.Args)
		switch c.types.Kind(callee) {
		case types.KindAny:
			return b.Any
		case types.KindUnknown:
			return b.Unknown
		default:
			c.errorAt(diag.SemaUndefinedFunction, span,
				"cannot call a value of type %s", c.typeName(callee)).Emit()
			return b.Unknown
		}
	}

	name := c.lookupName(ident.Name)
	symID, found := c.resolver.Lookup(ident.Name)
	if !found {
		switch name {
		case "Some", "Ok", "Err":
			return c.typeConstructor(name, span, data.Args)
		case "None":
			c.errorAt(diag.SemaWrongArgCount, span, "`None` takes no arguments").Emit()
			c.typeArgs(data.Args)
			return c.types.Option(b.Any)
		default:
			c.errorAt(diag.SemaUndefinedFunction, span, "undefined function `%s`", name).Emit()
			c.typeArgs(data.Args)
			return b.Unknown
		}
	}

	sym := c.table.Symbols.Get(symID)
	if sym == nil {
		return b.Unknown
	}
	sym.Flags |= symbols.SymbolFlagUsed

	if sym.Kind.IsCallable() {
		return c.typeInvocation(name, sym.Signature, span, data.Args)
	}
	// переменная или импорт в позиции вызова
	switch c.types.Kind(sym.Type) {
	case types.KindAny:
		c.typeArgs(data.Args)
		return b.Any
	case types.KindUnknown:
		c.typeArgs(data.Args)
		return b.Unknown
	default:
		c.errorAt(diag.SemaUndefinedFunction, span, "`%s` is not a function", name).Emit()
		c.typeArgs(data.Args)
		return b.Unknown
	}
}

// typeConstructor types Some/Ok/Err. Each takes exactly one argument; the
// missing половина Result-а остаётся Any и уточняется контекстом.
func (c *checker) typeConstructor(name string, span source.Span, args []ast.ExprID) types.TypeID {
	b := c.types.Builtins()
	arg := b.Unknown
	if len(args) != 1 {
		c.errorAt(diag.SemaWrongArgCount, span, "`%s` takes exactly one argument", name).Emit()
		c.typeArgs(args)
	} else {
		arg = c.typeExpr(args[0])
	}
	switch name {
	case "Some":
		return c.types.Option(arg)
	case "Ok":
		return c.types.Result(arg, b.Any)
	default:
		return c.types.Result(b.Any, arg)
	}
}

// typeInvocation checks a call against a declared signature: arity first,
// then each argument. Вариадик (print) пропускает проверку количества.
func (c *checker) typeInvocation(name string, sig *types.Signature, span source.Span, args []ast.ExprID) types.TypeID {
	b := c.types.Builtins()
	if sig == nil {
		c.typeArgs(args)
		return b.Unknown
	}
	if !sig.Variadic && len(args) != len(sig.Params) {
		c.errorAt(diag.SemaWrongArgCount, span,
			"`%s` expects %s, found %d", name, plural(len(sig.Params), "argument"), len(args)).Emit()
	}
	for i, arg := range args {
		at := c.typeExpr(arg)
		expected, ok := paramAt(sig, i)
		if !ok || c.types.Compatible(expected, at) {
			continue
		}
		c.errorAt(diag.SemaTypeMismatch, c.exprSpan(arg),
			"argument %d to `%s` must be %s, found %s",
			i+1, name, c.typeName(expected), c.typeName(at)).Emit()
	}
	return sig.Result
}

// paramAt returns the declared type for argument i. A variadic signature
// checks every argument against its single declared parameter.
func paramAt(sig *types.Signature, i int) (types.TypeID, bool) {
	if sig.Variadic {
		if len(sig.Params) == 0 {
			return types.NoTypeID, false
		}
		if i >= len(sig.Params) {
			return sig.Params[len(sig.Params)-1], true
		}
		return sig.Params[i], true
	}
	if i < len(sig.Params) {
		return sig.Params[i], true
	}
	return types.NoTypeID, false
}

func (c *checker) typeArgs(args []ast.ExprID) {
	for _, arg := range args {
		c.typeExpr(arg)
	}
}
