package parser

import (
	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/source"
	"owl/internal/token"
)

// parseMatchExpr — match-выражение:
//
//	match subject {
//	    Some(x) => x + 1,
//	    None => 0
//	}
//
// Запятые между ветками опциональны, хвостовая тоже. Неизвестное имя
// конструктора — не ошибка разбора: ветка получает PatternUnknown, а
// sema сообщит о ней в терминах типа subject'а. Пустой match тоже
// проходит парсер — его поймает проверка полноты.
func (p *Parser) parseMatchExpr() (ast.ExprID, bool) {
	matchTok := p.advance() // match

	subject, ok := p.parseExprChecked("Expected expression after 'match'")
	if !ok {
		return ast.NoExprID, false
	}

	if _, braceOK := p.expect(token.LBrace, diag.SynMissingBrace, "Expected '{' after match expression"); !braceOK {
		return ast.NoExprID, false
	}

	var arms []ast.MatchArmSpec
	for !p.at(token.EOF) && !p.at(token.RBrace) {
		startTok := p.lx.Peek()
		arm, armOK := p.parseMatchArm()
		if armOK {
			arms = append(arms, arm)
		} else {
			p.resyncMatchArm(startTok.Span)
		}

		if p.at(token.Comma) {
			p.advance()
		}
	}

	closeTok, closeOK := p.expect(token.RBrace, diag.SynMissingBrace, "Expected '}' after match arms")
	if !closeOK {
		return ast.NoExprID, false
	}

	span := matchTok.Span.Cover(closeTok.Span)
	return p.arenas.Exprs.NewMatch(span, subject, arms), true
}

// resyncMatchArm — после сломанной ветки прокручиваем до запятой или '}',
// не давая одной ветке утянуть за собой весь match.
func (p *Parser) resyncMatchArm(from source.Span) {
	p.resyncUntil(token.Comma, token.RBrace)
	if !p.at(token.EOF) && !p.at(token.RBrace) && p.lx.Peek().Span == from {
		p.advance()
	}
}

func (p *Parser) parseMatchArm() (ast.MatchArmSpec, bool) {
	arm, ok := p.parseMatchPattern()
	if !ok {
		return ast.MatchArmSpec{}, false
	}

	if _, arrowOK := p.expect(token.FatArrow, diag.SynMalformedMatch, "Expected '=>' after pattern"); !arrowOK {
		return ast.MatchArmSpec{}, false
	}

	body, bodyOK := p.parseExprChecked("Expected expression after '=>'")
	if !bodyOK {
		return ast.MatchArmSpec{}, false
	}

	arm.Body = body
	arm.Span = arm.PatternSpan.Cover(p.exprSpan(body))
	return arm, true
}

// parseMatchPattern — образец ветки. Some/Ok/Err требуют скобок со
// связкой, None — всегда голый. Прочие имена сохраняем как
// PatternUnknown вместе с опциональной связкой.
func (p *Parser) parseMatchPattern() (ast.MatchArmSpec, bool) {
	nameTok, ok := p.expect(token.Ident, diag.SynMalformedMatch, "Expected pattern (Some, None, Ok, or Err)")
	if !ok {
		return ast.MatchArmSpec{}, false
	}

	arm := ast.MatchArmSpec{
		Name:        p.arenas.Intern(nameTok.Text),
		Binder:      source.NoStringID,
		PatternSpan: nameTok.Span,
	}

	switch nameTok.Text {
	case "Some":
		arm.Pattern = ast.PatternSome
	case "None":
		arm.Pattern = ast.PatternNone
		return arm, true
	case "Ok":
		arm.Pattern = ast.PatternOk
	case "Err":
		arm.Pattern = ast.PatternErr
	default:
		arm.Pattern = ast.PatternUnknown
		if !p.at(token.LParen) {
			return arm, true
		}
	}

	if _, parenOK := p.expect(token.LParen, diag.SynMalformedMatch, "Expected '(' after "+nameTok.Text); !parenOK {
		return ast.MatchArmSpec{}, false
	}
	binderTok, binderOK := p.expect(token.Ident, diag.SynMalformedMatch, "Expected binding name")
	if !binderOK {
		return ast.MatchArmSpec{}, false
	}
	closeTok, closeOK := p.expect(token.RParen, diag.SynMalformedMatch, "Expected ')' after binding")
	if !closeOK {
		return ast.MatchArmSpec{}, false
	}

	arm.Binder = p.arenas.Intern(binderTok.Text)
	arm.BinderSpan = binderTok.Span
	arm.PatternSpan = nameTok.Span.Cover(closeTok.Span)
	return arm, true
}
