package parser

import (
	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/token"
)

// parsePrimaryExpr — атомы выражений. На неожиданном токене возвращает
// false БЕЗ диагностики: подходящий текст ошибки знает только вызывающий
// контекст.
func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	switch p.lx.Peek().Kind {
	case token.IntLit:
		tok := p.advance()
		return p.arenas.Exprs.NewLit(tok.Span, ast.ExprLitInt, p.arenas.Intern(tok.Text)), true

	case token.FloatLit:
		tok := p.advance()
		return p.arenas.Exprs.NewLit(tok.Span, ast.ExprLitFloat, p.arenas.Intern(tok.Text)), true

	case token.StringLit:
		tok := p.advance()
		return p.arenas.Exprs.NewLit(tok.Span, ast.ExprLitString, p.arenas.Intern(tok.Text)), true

	case token.KwTrue:
		tok := p.advance()
		return p.arenas.Exprs.NewLit(tok.Span, ast.ExprLitTrue, p.arenas.Intern(tok.Text)), true

	case token.KwFalse:
		tok := p.advance()
		return p.arenas.Exprs.NewLit(tok.Span, ast.ExprLitFalse, p.arenas.Intern(tok.Text)), true

	case token.Ident:
		tok := p.advance()
		return p.arenas.Exprs.NewIdent(tok.Span, p.arenas.Intern(tok.Text)), true

	case token.LParen:
		return p.parseGroupExpr()

	case token.LBracket:
		return p.parseListLiteral()

	case token.KwIf:
		return p.parseIfExpr()

	case token.KwMatch:
		return p.parseMatchExpr()

	case token.Invalid:
		// Лексер уже отрапортовал этот участок; съедаем его и продолжаем
		// с Bad-узлом, чтобы не дублировать диагностику.
		tok := p.advance()
		return p.arenas.Exprs.NewBad(tok.Span), true

	default:
		return ast.NoExprID, false
	}
}

// parseGroupExpr — выражение в скобках.
func (p *Parser) parseGroupExpr() (ast.ExprID, bool) {
	openTok := p.advance() // (

	inner, ok := p.parseExprChecked("Expected expression after '('")
	if !ok {
		return ast.NoExprID, false
	}

	closeTok, ok := p.expect(token.RParen, diag.SynMissingParen, "Expected ')' after expression")
	if !ok {
		return ast.NoExprID, false
	}

	span := openTok.Span.Cover(closeTok.Span)
	return p.arenas.Exprs.NewGroup(span, inner), true
}

// parseListLiteral — [a, b, c]; висячая запятая допустима.
func (p *Parser) parseListLiteral() (ast.ExprID, bool) {
	openTok := p.advance() // [

	var elements []ast.ExprID
	trailingComma := false
	for !p.at(token.RBracket) {
		elem, elemOK := p.parseExprChecked("Expected expression in list literal")
		if !elemOK {
			return ast.NoExprID, false
		}
		elements = append(elements, elem)
		trailingComma = false

		if !p.at(token.Comma) {
			break
		}
		p.advance()
		trailingComma = true
	}

	closeTok, ok := p.expect(token.RBracket, diag.SynMissingToken, "Expected ']' after list elements")
	if !ok {
		return ast.NoExprID, false
	}

	span := openTok.Span.Cover(closeTok.Span)
	return p.arenas.Exprs.NewList(span, elements, trailingComma), true
}

// parseIfExpr — if в позиции значения: парсим обычный if-statement и
// оборачиваем в ExprIf. Есть ли обе ветки и несут ли они значение,
// проверяет sema, а не парсер.
func (p *Parser) parseIfExpr() (ast.ExprID, bool) {
	stmtID, ok := p.parseIfStmt()
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewIf(p.stmtSpan(stmtID), stmtID), true
}
