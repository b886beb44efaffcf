package sema

import (
	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/types"
)

// resolveAnnotation maps a written type annotation to a TypeID. Every
// failure is reported here and yields Unknown, so the binding stays usable
// and the mistake is not re-reported at each use site. Any разрешён только
// внутри компилятора: пользовательская аннотация с ним отклоняется.
func (c *checker) resolveAnnotation(id ast.TypeID) types.TypeID {
	b := c.types.Builtins()
	node := c.builder.Types.Get(id)
	if node == nil || node.Kind == ast.TypeExprBad {
		// парсер уже пожаловался на синтаксис
		return b.Unknown
	}
	name := c.lookupName(node.Name)
	if name == "Any" {
		c.errorAt(diag.SemaAnyAnnotation, node.NameSpan, "`Any` cannot be written in type annotations").Emit()
		return b.Unknown
	}

	switch node.Kind {
	case ast.TypeExprName:
		if typ, ok := c.types.PrimitiveByName(name); ok {
			return typ
		}
		if arity, ok := types.GenericArity(name); ok {
			c.errorAt(diag.SemaWrongTypeArity, node.Span,
				"%s expects %s, found 0", name, plural(arity, "type parameter")).Emit()
			return b.Unknown
		}
		c.errorAt(diag.SemaUnknownType, node.Span, "unknown type `%s`", name).Emit()
		return b.Unknown

	case ast.TypeExprGeneric:
		if _, ok := c.types.PrimitiveByName(name); ok {
			c.errorAt(diag.SemaWrongTypeArity, node.Span, "%s takes no type parameters", name).Emit()
			return b.Unknown
		}
		arity, ok := types.GenericArity(name)
		if !ok {
			c.errorAt(diag.SemaUnknownType, node.Span, "unknown type `%s`", name).Emit()
			return b.Unknown
		}
		args := make([]types.TypeID, 0, len(node.Args))
		for _, arg := range node.Args {
			args = append(args, c.resolveAnnotation(arg))
		}
		if len(args) != arity {
			c.errorAt(diag.SemaWrongTypeArity, node.Span,
				"%s expects %s, found %d", name, plural(arity, "type parameter"), len(args)).Emit()
			return b.Unknown
		}
		if typ, ok := c.types.InstantiateGeneric(name, args); ok {
			return typ
		}
		return b.Unknown

	default:
		return b.Unknown
	}
}
