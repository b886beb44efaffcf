package sema

import (
	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/source"
	"owl/internal/symbols"
	"owl/internal/types"
)

// matchShape describes what a subject type allows in arm position: the
// accepted pattern set and the binder type each constructor introduces.
type matchShape struct {
	valid   bool
	somePat types.TypeID // binder type of Some/Ok
	errPat  types.TypeID // binder type of Err
	option  bool
}

// typeMatch checks a match expression: subject shape, arm patterns,
// per-arm binder scopes, exhaustiveness, and the agreement of arm results.
// The match type is the first arm's type; an Any first arm defers to a
// later, more specific one.
func (c *checker) typeMatch(id ast.ExprID, span source.Span) types.TypeID {
	b := c.types.Builtins()
	data, ok := c.builder.Exprs.Match(id)
	if !ok {
		return b.Unknown
	}

	subject := c.typeExpr(data.Subject)
	shape, silent := c.matchShapeOf(subject)
	if !shape.valid && !silent {
		c.errorAt(diag.SemaInvalidOperation, c.exprSpan(data.Subject),
			"cannot match on %s", c.typeName(subject)).Emit()
	}

	seen := make(map[ast.PatternKind]bool, 2)
	result := types.NoTypeID
	for i, armID := range data.Arms {
		arm := c.builder.Exprs.Arm(armID)
		if arm == nil {
			continue
		}
		binderType := c.armBinderType(arm, subject, shape)
		bodyType := c.checkArm(id, arm, binderType)
		if shape.valid {
			switch {
			case shape.option && (arm.Pattern == ast.PatternSome || arm.Pattern == ast.PatternNone):
				seen[arm.Pattern] = true
			case !shape.option && (arm.Pattern == ast.PatternOk || arm.Pattern == ast.PatternErr):
				seen[arm.Pattern] = true
			}
		}

		if i == 0 {
			result = bodyType
			continue
		}
		if unified, ok := c.unifyBranches(result, bodyType); ok {
			result = unified
			continue
		}
		c.errorAt(diag.SemaBranchTypeMismatch, c.exprSpan(arm.Body),
			"match arms have incompatible types: %s and %s",
			c.typeName(result), c.typeName(bodyType)).Emit()
	}

	if shape.valid {
		c.checkExhaustive(span, shape, seen)
	} else {
		return b.Unknown
	}
	if result == types.NoTypeID {
		return b.Unknown
	}
	return result
}

// matchShapeOf classifies the subject. Unknown stays silent: причина уже
// доложена там, где тип сломался.
func (c *checker) matchShapeOf(subject types.TypeID) (matchShape, bool) {
	tt, ok := c.types.Lookup(subject)
	if !ok {
		return matchShape{}, true
	}
	switch tt.Kind {
	case types.KindOption:
		return matchShape{valid: true, option: true, somePat: tt.Elem}, false
	case types.KindResult:
		return matchShape{valid: true, somePat: tt.Elem, errPat: tt.Err}, false
	case types.KindUnknown:
		return matchShape{}, true
	default:
		return matchShape{}, false
	}
}

// armBinderType validates the pattern against the subject and returns the
// type its binder receives. A pattern outside the subject's set is an
// error; its binder falls back to Unknown so the body still checks.
func (c *checker) armBinderType(arm *ast.MatchArm, subject types.TypeID, shape matchShape) types.TypeID {
	b := c.types.Builtins()
	if !shape.valid {
		return b.Unknown
	}
	if shape.option {
		switch arm.Pattern {
		case ast.PatternSome:
			return shape.somePat
		case ast.PatternNone:
			return b.Unknown
		}
	} else {
		switch arm.Pattern {
		case ast.PatternOk:
			return shape.somePat
		case ast.PatternErr:
			return shape.errPat
		}
	}
	c.errorAt(diag.SemaInvalidPattern, arm.PatternSpan,
		"pattern `%s` cannot match %s", c.patternName(arm), c.typeName(subject)).Emit()
	return b.Unknown
}

// checkArm types one arm body inside its own scope. Binders are immutable
// and live only until the arm ends.
func (c *checker) checkArm(matchID ast.ExprID, arm *ast.MatchArm, binderType types.TypeID) types.TypeID {
	owner := symbols.ScopeOwner{Kind: symbols.ScopeOwnerExpr, Expr: matchID}
	scope := c.resolver.Enter(symbols.ScopeMatchArm, owner, arm.Span)
	if arm.Binder != source.NoStringID {
		_, conflict := c.resolver.Declare(symbols.Symbol{
			Name:  arm.Binder,
			Kind:  symbols.SymbolVar,
			Span:  arm.BinderSpan,
			Flags: c.underscoreFlag(arm.Binder),
			Decl:  symbols.SymbolDecl{Expr: matchID},
			Type:  binderType,
		})
		c.reportConflict(arm.Binder, arm.BinderSpan, conflict)
	}
	bodyType := c.typeExpr(arm.Body)
	c.sweepScope(scope, "")
	c.resolver.Leave(scope)
	return bodyType
}

// checkExhaustive emits a single diagnostic naming every missing pattern.
func (c *checker) checkExhaustive(span source.Span, shape matchShape, seen map[ast.PatternKind]bool) {
	required := []ast.PatternKind{ast.PatternSome, ast.PatternNone}
	if !shape.option {
		required = []ast.PatternKind{ast.PatternOk, ast.PatternErr}
	}
	missing := make([]string, 0, 2)
	for _, pat := range required {
		if !seen[pat] {
			missing = append(missing, pat.String())
		}
	}
	if len(missing) == 0 {
		return
	}
	msg := "non-exhaustive match: missing `" + missing[0] + "`"
	if len(missing) == 2 {
		msg = "non-exhaustive match: missing `" + missing[0] + "`, `" + missing[1] + "`"
	}
	b := c.errorAt(diag.FlowNonExhaustiveMatch, span, "%s", msg)
	if len(missing) == 1 {
		b.WithHint("add the missing `" + missing[0] + "` arm")
	}
	b.Emit()
}

func (c *checker) patternName(arm *ast.MatchArm) string {
	if arm.Name != source.NoStringID {
		return c.lookupName(arm.Name)
	}
	return arm.Pattern.String()
}
